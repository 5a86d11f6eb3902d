package domain

import "time"

// User representa a entidade do usuário no catálogo.
type User struct {
	ID        string    `json:"id" example:"0b7e4a4c-2f36-4c57-9a2d-3e1b9f0f5c11"`
	Name      string    `json:"name" example:"John Doe"`
	Email     string    `json:"email" example:"john.doe@example.com"`
	Age       int       `json:"age" example:"30"`
	Role      UserRole  `json:"role" example:"user"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserRole é um tipo string para representar o papel do usuário no sistema.
type UserRole string

// Papéis aceitos pelo catálogo.
const (
	RoleUser      UserRole = "user"
	RoleAdmin     UserRole = "admin"
	RoleModerator UserRole = "moderator"
)

// UserRoles lista os papéis válidos, na ordem usada nas mensagens de erro.
var UserRoles = []UserRole{RoleUser, RoleAdmin, RoleModerator}

// Valid informa se o papel pertence ao conjunto aceito.
func (r UserRole) Valid() bool {
	for _, role := range UserRoles {
		if r == role {
			return true
		}
	}
	return false
}

// UserInput é o payload normalizado produzido pela validação.
// Campos nil estão ausentes: na criação todos chegam preenchidos,
// na atualização apenas os enviados pelo cliente.
type UserInput struct {
	Name  *string
	Email *string
	Age   *int
	Role  *UserRole
}

// Apply mescla os campos presentes sobre o usuário informado.
func (in UserInput) Apply(u *User) {
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Age != nil {
		u.Age = *in.Age
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
}

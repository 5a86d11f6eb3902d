package validation

import (
	"strings"

	"gocatalog/internal/domain"
	apperror "gocatalog/internal/errors"
)

var userFields = []string{"name", "email", "age", "role"}

// ValidateUser valida o payload de criação de usuário.
// Todos os campos, exceto role, são obrigatórios; role ausente vira "user".
func ValidateUser(p Payload) (domain.UserInput, []apperror.FieldError) {
	return validateUser(p, true)
}

// ValidateUserUpdate valida uma atualização parcial: ao menos um campo e nenhum inválido.
func ValidateUserUpdate(p Payload) (domain.UserInput, []apperror.FieldError) {
	return validateUser(p, false)
}

func validateUser(p Payload, create bool) (domain.UserInput, []apperror.FieldError) {
	c := newChecker(p, userFields...)
	if !create {
		c.requireAny()
	}

	in := domain.UserInput{
		Name:  c.str("name", "nome", 2, 50, create),
		Email: checkEmail(c, create),
		Age:   c.integer("age", "idade", 18, 120, create, "O campo idade deve ser no mínimo 18", "O campo idade não pode exceder 120"),
		Role:  checkRole(c),
	}
	c.rejectUnknown()

	if errs := c.result(); errs != nil {
		return domain.UserInput{}, errs
	}
	if create && in.Role == nil {
		role := domain.RoleUser
		in.Role = &role
	}
	return in, nil
}

func checkEmail(c *checker, required bool) *string {
	raw, ok := c.lookup("email", "email", required)
	if !ok {
		return nil
	}
	s, isString := raw.(string)
	if !isString {
		c.add("email", "O campo email deve ser um texto")
		return nil
	}
	if s == "" {
		c.add("email", "O campo email não pode ser vazio")
		return nil
	}
	if !isEmail(s) {
		c.add("email", "Informe um endereço de email válido")
		return nil
	}
	return &s
}

func checkRole(c *checker) *domain.UserRole {
	raw, ok := c.lookup("role", "papel", false)
	if !ok {
		return nil
	}
	s, isString := raw.(string)
	role := domain.UserRole(s)
	if !isString || !role.Valid() {
		names := make([]string, len(domain.UserRoles))
		for i, r := range domain.UserRoles {
			names[i] = string(r)
		}
		c.add("role", "O campo papel deve ser um de: %s", strings.Join(names, ", "))
		return nil
	}
	return &role
}

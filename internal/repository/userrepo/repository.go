package userrepo

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"gocatalog/internal/domain"
	"gocatalog/internal/repository/memstore"
)

// UserRepository mantém os usuários em memória, na ordem de criação.
// Não registra logs nem conhece regras de negócio: a unicidade de email é
// responsabilidade da camada de Serviço.
type UserRepository struct {
	store *memstore.Store[domain.User]
	now   func() time.Time
}

// userFields mapeia os campos consultáveis por FindByField.
var userFields = map[string]func(domain.User) string{
	"id":    func(u domain.User) string { return u.ID },
	"name":  func(u domain.User) string { return u.Name },
	"email": func(u domain.User) string { return u.Email },
	"role":  func(u domain.User) string { return string(u.Role) },
}

// NewUserRepository cria um repositório vazio usando o relógio do sistema.
func NewUserRepository() *UserRepository {
	return NewUserRepositoryWithClock(func() time.Time { return time.Now().UTC() })
}

// NewUserRepositoryWithClock permite injetar o relógio (usado nos testes).
func NewUserRepositoryWithClock(now func() time.Time) *UserRepository {
	return &UserRepository{
		store: memstore.New(func(u domain.User) string { return u.ID }),
		now:   now,
	}
}

// FindAll devolve até limit usuários a partir de skip, em ordem de inserção.
func (r *UserRepository) FindAll(skip, limit int) []domain.User {
	return r.store.List(skip, limit, nil)
}

// Count devolve o total de usuários.
func (r *UserRepository) Count() int {
	return r.store.Count(nil)
}

// FindByID busca um usuário pelo ID.
func (r *UserRepository) FindByID(id string) (domain.User, bool) {
	return r.store.Get(id)
}

// FindByField busca o primeiro usuário cujo campo tem exatamente o valor informado.
// Campo desconhecido resulta em ausência.
func (r *UserRepository) FindByField(field, value string) (domain.User, bool) {
	get, ok := userFields[field]
	if !ok {
		return domain.User{}, false
	}
	return r.store.Find(func(u domain.User) bool { return get(u) == value })
}

// FindByEmail busca um usuário pelo email. A comparação diferencia maiúsculas de minúsculas.
func (r *UserRepository) FindByEmail(email string) (domain.User, bool) {
	return r.FindByField("email", email)
}

// Save cria um novo usuário com ID e timestamps gerados.
func (r *UserRepository) Save(input domain.UserInput) domain.User {
	now := r.now()
	user := domain.User{
		ID:        uuid.NewString(),
		Role:      domain.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
	input.Apply(&user)

	return r.store.Insert(user)
}

// Update mescla os campos presentes sobre o usuário existente.
// ID e CreatedAt nunca mudam; UpdatedAt sempre avança.
func (r *UserRepository) Update(id string, input domain.UserInput) (domain.User, bool) {
	return r.store.Update(id, func(u *domain.User) {
		input.Apply(u)
		u.UpdatedAt = memstore.NextTimestamp(r.now(), u.UpdatedAt)
	})
}

// Delete remove o usuário e informa se ele existia.
func (r *UserRepository) Delete(id string) bool {
	return r.store.Delete(id)
}

// Search devolve os usuários cujo nome, email ou papel contém a consulta (sem diferenciar caixa).
func (r *UserRepository) Search(query string) []domain.User {
	term := strings.ToLower(query)
	return r.store.All(func(u domain.User) bool {
		return strings.Contains(strings.ToLower(u.Name), term) ||
			strings.Contains(strings.ToLower(u.Email), term) ||
			strings.Contains(strings.ToLower(string(u.Role)), term)
	})
}

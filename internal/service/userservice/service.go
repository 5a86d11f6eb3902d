package userservice

import (
	"context"
	"fmt"
	"sync"

	"gocatalog/internal/domain"
	apperror "gocatalog/internal/errors"
	"gocatalog/internal/pkg/logger"
	"gocatalog/internal/validation"
)

// UserRepository define o contrato que este Serviço espera da camada de Persistência.
// Ausência é sinalizada pelo bool; o repositório nunca devolve erros de negócio.
type UserRepository interface {
	FindAll(skip, limit int) []domain.User
	Count() int
	FindByID(id string) (domain.User, bool)
	FindByEmail(email string) (domain.User, bool)
	Save(input domain.UserInput) domain.User
	Update(id string, input domain.UserInput) (domain.User, bool)
	Delete(id string) bool
	Search(query string) []domain.User
}

// Service concentra as regras de negócio de usuários: validação, unicidade de email
// e classificação das falhas na taxonomia de apperror.
type Service struct {
	repo   UserRepository
	logger logger.Logger

	// writeMu torna atômicos "verificar email + gravar".
	writeMu sync.Mutex
}

// NewService cria e retorna uma nova instância do Serviço de Usuário.
func NewService(repo UserRepository, log logger.Logger) *Service {
	return &Service{repo: repo, logger: log}
}

// ListUsers devolve a página solicitada e o total de usuários.
func (s *Service) ListUsers(ctx context.Context, q domain.PageQuery) ([]domain.User, int, error) {
	users := s.repo.FindAll(q.Skip(), q.Limit)
	return users, s.repo.Count(), nil
}

// GetUserByID busca um usuário pelo ID.
func (s *Service) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	user, ok := s.repo.FindByID(id)
	if !ok {
		return domain.User{}, apperror.NewNotFoundError(fmt.Sprintf("Usuário com ID %s não foi encontrado.", id))
	}
	return user, nil
}

// CreateUser valida o payload, garante que o email não está em uso e cria o usuário.
func (s *Service) CreateUser(ctx context.Context, payload validation.Payload) (domain.User, error) {
	// 1. Validação das regras de campo (todas as violações de uma vez)
	input, fieldErrs := validation.ValidateUser(payload)
	if fieldErrs != nil {
		s.logger.Debug("Payload de criação de usuário rejeitado.", map[string]interface{}{"errors": len(fieldErrs)})
		return domain.User{}, apperror.NewFieldValidationError(fieldErrs)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	// 2. Unicidade de email (comparação exata, sem normalizar caixa)
	if _, taken := s.repo.FindByEmail(*input.Email); taken {
		return domain.User{}, emailConflict(*input.Email)
	}

	// 3. Persistência
	return s.repo.Save(input), nil
}

// UpdateUser aplica uma atualização parcial. O próprio email atual pode ser reenviado.
func (s *Service) UpdateUser(ctx context.Context, id string, payload validation.Payload) (domain.User, error) {
	input, fieldErrs := validation.ValidateUserUpdate(payload)
	if fieldErrs != nil {
		s.logger.Debug("Payload de atualização de usuário rejeitado.", map[string]interface{}{"id": id, "errors": len(fieldErrs)})
		return domain.User{}, apperror.NewFieldValidationError(fieldErrs)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	existing, ok := s.repo.FindByID(id)
	if !ok {
		return domain.User{}, apperror.NewNotFoundError(fmt.Sprintf("Usuário com ID %s não foi encontrado.", id))
	}

	if input.Email != nil && *input.Email != existing.Email {
		if _, taken := s.repo.FindByEmail(*input.Email); taken {
			return domain.User{}, emailConflict(*input.Email)
		}
	}

	updated, ok := s.repo.Update(id, input)
	if !ok {
		return domain.User{}, apperror.NewNotFoundError(fmt.Sprintf("Usuário com ID %s não foi encontrado.", id))
	}
	return updated, nil
}

// DeleteUser remove um usuário existente.
func (s *Service) DeleteUser(ctx context.Context, id string) error {
	if !s.repo.Delete(id) {
		return apperror.NewNotFoundError(fmt.Sprintf("Usuário com ID %s não foi encontrado.", id))
	}
	return nil
}

// SearchUsers busca usuários por nome, email ou papel.
func (s *Service) SearchUsers(ctx context.Context, query string) ([]domain.User, error) {
	if query == "" {
		return nil, apperror.NewFieldValidationError([]apperror.FieldError{
			{Field: "q", Message: "O parâmetro de busca 'q' é obrigatório"},
		})
	}
	return s.repo.Search(query), nil
}

func emailConflict(email string) error {
	return apperror.NewConflictError(fmt.Sprintf("O email '%s' já está em uso.", email))
}

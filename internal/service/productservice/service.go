package productservice

import (
	"context"
	"fmt"

	"gocatalog/internal/domain"
	apperror "gocatalog/internal/errors"
	"gocatalog/internal/pkg/logger"
	"gocatalog/internal/validation"
)

// ProductRepository define o contrato (interface) que este Serviço espera
// da camada de Persistência.
type ProductRepository interface {
	FindAll(skip, limit int, filter domain.ProductFilter) []domain.Product
	Count(filter domain.ProductFilter) int
	FindByID(id string) (domain.Product, bool)
	Save(input domain.ProductInput) domain.Product
	Update(id string, input domain.ProductInput) (domain.Product, bool)
	Delete(id string) bool
	Categories() []domain.CategoryCount
}

// Service é a estrutura que implementa as regras de negócio de produtos.
type Service struct {
	repo   ProductRepository
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Produto.
func NewService(repo ProductRepository, log logger.Logger) *Service {
	return &Service{repo: repo, logger: log}
}

// --- Implementação: ListProducts ---

// ListProducts devolve a página filtrada e o total de itens que satisfazem o filtro.
func (s *Service) ListProducts(ctx context.Context, q domain.PageQuery, filter domain.ProductFilter) ([]domain.Product, int, error) {
	products := s.repo.FindAll(q.Skip(), q.Limit, filter)
	return products, s.repo.Count(filter), nil
}

// --- Implementação: GetProductByID ---

func (s *Service) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	product, ok := s.repo.FindByID(id)
	if !ok {
		return domain.Product{}, notFound(id)
	}
	return product, nil
}

// --- Implementação: CreateProduct ---

func (s *Service) CreateProduct(ctx context.Context, payload validation.Payload) (domain.Product, error) {
	input, fieldErrs := validation.ValidateProduct(payload)
	if fieldErrs != nil {
		s.logger.Debug("Payload de criação de produto rejeitado.", map[string]interface{}{"errors": len(fieldErrs)})
		return domain.Product{}, apperror.NewFieldValidationError(fieldErrs)
	}
	return s.repo.Save(input), nil
}

// --- Implementação: UpdateProduct ---

func (s *Service) UpdateProduct(ctx context.Context, id string, payload validation.Payload) (domain.Product, error) {
	input, fieldErrs := validation.ValidateProductUpdate(payload)
	if fieldErrs != nil {
		s.logger.Debug("Payload de atualização de produto rejeitado.", map[string]interface{}{"id": id, "errors": len(fieldErrs)})
		return domain.Product{}, apperror.NewFieldValidationError(fieldErrs)
	}

	updated, ok := s.repo.Update(id, input)
	if !ok {
		return domain.Product{}, notFound(id)
	}
	return updated, nil
}

// --- Implementação: DeleteProduct ---

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	if !s.repo.Delete(id) {
		return notFound(id)
	}
	return nil
}

// --- Implementação: ListCategories ---

func (s *Service) ListCategories(ctx context.Context) ([]domain.CategoryCount, error) {
	return s.repo.Categories(), nil
}

func notFound(id string) error {
	return apperror.NewNotFoundError(fmt.Sprintf("Produto com ID %s não foi encontrado.", id))
}

package productrepo

import (
	"time"

	"github.com/google/uuid"

	"gocatalog/internal/domain"
	"gocatalog/internal/repository/memstore"
)

// ProductRepository mantém os produtos em memória, na ordem de criação.
type ProductRepository struct {
	store *memstore.Store[domain.Product]
	now   func() time.Time
}

// NewProductRepository cria um repositório vazio usando o relógio do sistema.
func NewProductRepository() *ProductRepository {
	return NewProductRepositoryWithClock(func() time.Time { return time.Now().UTC() })
}

// NewProductRepositoryWithClock permite injetar o relógio (usado nos testes).
func NewProductRepositoryWithClock(now func() time.Time) *ProductRepository {
	return &ProductRepository{
		store: memstore.New(func(p domain.Product) string { return p.ID }),
		now:   now,
	}
}

// FindAll aplica o filtro e devolve até limit produtos a partir de skip.
func (r *ProductRepository) FindAll(skip, limit int, filter domain.ProductFilter) []domain.Product {
	return r.store.List(skip, limit, filter.Matches)
}

// Count devolve quantos produtos satisfazem o filtro, ignorando a paginação.
func (r *ProductRepository) Count(filter domain.ProductFilter) int {
	return r.store.Count(filter.Matches)
}

// FindByID busca um produto pelo ID.
func (r *ProductRepository) FindByID(id string) (domain.Product, bool) {
	return r.store.Get(id)
}

// Save cria um novo produto; InStock é derivado do estoque.
func (r *ProductRepository) Save(input domain.ProductInput) domain.Product {
	now := r.now()
	product := domain.Product{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	input.Apply(&product)

	return r.store.Insert(product)
}

// Update mescla os campos presentes, recalcula InStock e avança UpdatedAt.
func (r *ProductRepository) Update(id string, input domain.ProductInput) (domain.Product, bool) {
	return r.store.Update(id, func(p *domain.Product) {
		input.Apply(p)
		p.UpdatedAt = memstore.NextTimestamp(r.now(), p.UpdatedAt)
	})
}

// Delete remove o produto e informa se ele existia.
func (r *ProductRepository) Delete(id string) bool {
	return r.store.Delete(id)
}

// Categories devolve cada categoria distinta com a quantidade de produtos,
// na ordem em que a categoria aparece pela primeira vez.
func (r *ProductRepository) Categories() []domain.CategoryCount {
	out := []domain.CategoryCount{}
	index := make(map[string]int)
	for _, p := range r.store.All(nil) {
		if i, seen := index[p.Category]; seen {
			out[i].Count++
			continue
		}
		index[p.Category] = len(out)
		out = append(out, domain.CategoryCount{Name: p.Category, Count: 1})
	}
	return out
}

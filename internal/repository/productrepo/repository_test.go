package productrepo_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gocatalog/internal/domain"
	"gocatalog/internal/repository/productrepo"
)

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

func input(name, category string, price float64, stock int) domain.ProductInput {
	return domain.ProductInput{
		Name:        strPtr(name),
		Description: strPtr("Descrição suficientemente longa"),
		Price:       floatPtr(price),
		Category:    strPtr(category),
		Stock:       intPtr(stock),
	}
}

func seeded() *productrepo.ProductRepository {
	repo := productrepo.NewProductRepository()
	repo.Save(input("Laptop Pro", "Electronics", 1299.99, 50))
	repo.Save(input("Wireless Headphones", "Electronics", 199.99, 100))
	repo.Save(input("Coffee Mug", "Home & Kitchen", 12.99, 0))
	return repo
}

func TestSave_DerivesInStock(t *testing.T) {
	repo := productrepo.NewProductRepository()

	available := repo.Save(input("Lamp", "Home", 20, 3))
	soldOut := repo.Save(input("Chair", "Home", 80, 0))

	assert.True(t, available.InStock)
	assert.False(t, soldOut.InStock)
	assert.NotEqual(t, available.ID, soldOut.ID)
	assert.Equal(t, available.CreatedAt, available.UpdatedAt)
}

func TestUpdate_RecomputesInStock(t *testing.T) {
	clock := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	repo := productrepo.NewProductRepositoryWithClock(func() time.Time { return clock })
	p := repo.Save(input("Lamp", "Home", 20, 3))

	clock = clock.Add(time.Second)
	updated, ok := repo.Update(p.ID, domain.ProductInput{Stock: intPtr(0)})

	require.True(t, ok)
	assert.False(t, updated.InStock)
	assert.Equal(t, "Lamp", updated.Name)
	assert.Equal(t, 20.0, updated.Price)
	assert.Equal(t, p.CreatedAt, updated.CreatedAt)
	assert.Equal(t, clock, updated.UpdatedAt)

	// Atualizar outro campo mantém InStock coerente com o estoque atual.
	renamed, _ := repo.Update(p.ID, domain.ProductInput{Name: strPtr("Desk Lamp")})
	assert.False(t, renamed.InStock)
	assert.True(t, renamed.UpdatedAt.After(updated.UpdatedAt))

	_, ok = repo.Update("missing", domain.ProductInput{Stock: intPtr(1)})
	assert.False(t, ok)
}

func TestFindAll_Filters(t *testing.T) {
	repo := seeded()

	cases := []struct {
		name   string
		filter domain.ProductFilter
		names  []string
	}{
		{"no filter", domain.ProductFilter{}, []string{"Laptop Pro", "Wireless Headphones", "Coffee Mug"}},
		{"category case-insensitive", domain.ProductFilter{Category: "electronics"}, []string{"Laptop Pro", "Wireless Headphones"}},
		{"min price", domain.ProductFilter{MinPrice: floatPtr(199.99)}, []string{"Laptop Pro", "Wireless Headphones"}},
		{"max price", domain.ProductFilter{MaxPrice: floatPtr(199.99)}, []string{"Wireless Headphones", "Coffee Mug"}},
		{"in stock false", domain.ProductFilter{InStock: boolPtr(false)}, []string{"Coffee Mug"}},
		{"combined", domain.ProductFilter{Category: "Electronics", MaxPrice: floatPtr(500)}, []string{"Wireless Headphones"}},
		{"nothing", domain.ProductFilter{Category: "Toys"}, []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			products := repo.FindAll(0, 10, tc.filter)
			names := []string{}
			for _, p := range products {
				names = append(names, p.Name)
			}
			assert.Equal(t, tc.names, names)
			assert.Equal(t, len(tc.names), repo.Count(tc.filter))
		})
	}
}

func TestFindAll_PaginatesFilteredSet(t *testing.T) {
	repo := seeded()
	filter := domain.ProductFilter{Category: "Electronics"}

	page := repo.FindAll(1, 1, filter)

	require.Len(t, page, 1)
	assert.Equal(t, "Wireless Headphones", page[0].Name)
	assert.Empty(t, repo.FindAll(repo.Count(filter), 10, filter))
}

func TestCategories_FirstSeenOrder(t *testing.T) {
	repo := productrepo.NewProductRepository()
	repo.Save(input("A", "Electronics", 1, 1))
	repo.Save(input("B", "Electronics", 1, 1))
	repo.Save(input("C", "Home", 1, 1))

	assert.Equal(t, []domain.CategoryCount{
		{Name: "Electronics", Count: 2},
		{Name: "Home", Count: 1},
	}, repo.Categories())
}

func TestCategories_Empty(t *testing.T) {
	repo := productrepo.NewProductRepository()

	assert.Equal(t, []domain.CategoryCount{}, repo.Categories())
}

func TestDelete(t *testing.T) {
	repo := seeded()
	first := repo.FindAll(0, 1, domain.ProductFilter{})[0]

	assert.True(t, repo.Delete(first.ID))
	_, ok := repo.FindByID(first.ID)
	assert.False(t, ok)
	assert.False(t, repo.Delete(first.ID))
	assert.Equal(t, 2, repo.Count(domain.ProductFilter{}))
}

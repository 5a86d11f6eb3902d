package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"gocatalog/internal/domain"
)

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func TestNewPageQuery_Defaults(t *testing.T) {
	assert.Equal(t, domain.PageQuery{Page: 1, Limit: 10}, domain.NewPageQuery(0, 0))
	assert.Equal(t, domain.PageQuery{Page: 1, Limit: 10}, domain.NewPageQuery(-3, -1))
	assert.Equal(t, domain.PageQuery{Page: 2, Limit: 100}, domain.NewPageQuery(2, 150))
	assert.Equal(t, 20, domain.NewPageQuery(3, 10).Skip())
}

func TestPageQuery_SkipSaturatesOnHugePage(t *testing.T) {
	q := domain.NewPageQuery(math.MaxInt64, 10)

	assert.Equal(t, math.MaxInt, q.Skip())
	assert.Equal(t, math.MaxInt, domain.NewPageQuery(math.MaxInt/10+2, 10).Skip())
	assert.Equal(t, math.MaxInt/10*10, domain.NewPageQuery(math.MaxInt/10+1, 10).Skip())
}

func TestNewPagination(t *testing.T) {
	p := domain.NewPagination(domain.NewPageQuery(1, 10), 25)

	assert.Equal(t, 1, p.CurrentPage)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 25, p.TotalItems)
	assert.Equal(t, 10, p.ItemsPerPage)

	empty := domain.NewPagination(domain.NewPageQuery(1, 10), 0)
	assert.Equal(t, 0, empty.TotalPages)
}

func TestProductFilter_Matches(t *testing.T) {
	p := domain.Product{Category: "Electronics", Price: 199.99, Stock: 3, InStock: true}

	assert.True(t, domain.ProductFilter{}.Matches(p))
	assert.True(t, domain.ProductFilter{Category: "electronics"}.Matches(p))
	assert.False(t, domain.ProductFilter{Category: "Electro"}.Matches(p))
	assert.True(t, domain.ProductFilter{MinPrice: floatPtr(199.99), MaxPrice: floatPtr(199.99)}.Matches(p))
	assert.False(t, domain.ProductFilter{MinPrice: floatPtr(200)}.Matches(p))
	assert.False(t, domain.ProductFilter{MaxPrice: floatPtr(100)}.Matches(p))
	assert.False(t, domain.ProductFilter{InStock: boolPtr(false)}.Matches(p))
	assert.False(t, domain.ProductFilter{Category: "Electronics", InStock: boolPtr(false)}.Matches(p))
}

func TestProductInput_ApplyRecomputesInStock(t *testing.T) {
	p := domain.Product{Name: "Mug", Stock: 5, InStock: true}
	zero := 0

	domain.ProductInput{Stock: &zero}.Apply(&p)

	assert.Equal(t, "Mug", p.Name)
	assert.Equal(t, 0, p.Stock)
	assert.False(t, p.InStock)
}

func TestUserRole_Valid(t *testing.T) {
	assert.True(t, domain.RoleModerator.Valid())
	assert.False(t, domain.UserRole("guest").Valid())
	assert.False(t, domain.UserRole("Admin").Valid())
}

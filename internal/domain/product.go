package domain

import (
	"strings"
	"time"
)

// Product representa o item do catálogo (a Entidade).
// InStock é derivado de Stock e nunca é definido diretamente pelo cliente.
type Product struct {
	ID          string    `json:"id" example:"3c95b8c8-6f1d-4a8e-9d0b-7a3c2e1f4b5d"`
	Name        string    `json:"name" example:"Laptop Pro"`
	Description string    `json:"description" example:"High-performance laptop for professionals"`
	Price       float64   `json:"price" example:"1299.99"`
	Category    string    `json:"category" example:"Electronics"`
	Stock       int       `json:"stock" example:"50"`
	InStock     bool      `json:"inStock" example:"true"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProductInput é o payload normalizado de criação/atualização de produto.
type ProductInput struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	Stock       *int
}

// Apply mescla os campos presentes sobre o produto e recalcula InStock.
func (in ProductInput) Apply(p *Product) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	p.InStock = p.Stock > 0
}

// ProductFilter define os filtros de listagem. Todas as condições presentes são combinadas com AND.
type ProductFilter struct {
	Category string   `json:"category,omitempty" example:"Electronics"`
	MinPrice *float64 `json:"minPrice,omitempty" example:"10"`
	MaxPrice *float64 `json:"maxPrice,omitempty" example:"500"`
	InStock  *bool    `json:"inStock,omitempty" example:"true"`
}

// Matches informa se o produto satisfaz todas as condições do filtro.
func (f ProductFilter) Matches(p Product) bool {
	if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.InStock != nil && p.InStock != *f.InStock {
		return false
	}
	return true
}

// CategoryCount associa uma categoria ao número de produtos que a utilizam.
type CategoryCount struct {
	Name  string `json:"name" example:"Electronics"`
	Count int    `json:"count" example:"2"`
}

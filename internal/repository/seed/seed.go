// Package seed carrega os registros de exemplo usados em desenvolvimento.
package seed

import (
	"gocatalog/internal/domain"
	"gocatalog/internal/pkg/logger"
)

// UserSaver é o subconjunto do repositório de usuários usado pela carga inicial.
type UserSaver interface {
	Save(input domain.UserInput) domain.User
}

// ProductSaver é o subconjunto do repositório de produtos usado pela carga inicial.
type ProductSaver interface {
	Save(input domain.ProductInput) domain.Product
}

func ptr[T any](v T) *T { return &v }

// Users devolve os usuários de exemplo.
func Users() []domain.UserInput {
	return []domain.UserInput{
		{Name: ptr("John Doe"), Email: ptr("john.doe@example.com"), Age: ptr(30), Role: ptr(domain.RoleAdmin)},
		{Name: ptr("Jane Smith"), Email: ptr("jane.smith@example.com"), Age: ptr(25), Role: ptr(domain.RoleUser)},
	}
}

// Products devolve os produtos de exemplo. InStock é derivado do estoque no Save.
func Products() []domain.ProductInput {
	return []domain.ProductInput{
		{
			Name:        ptr("Laptop Pro"),
			Description: ptr("High-performance laptop for professionals"),
			Price:       ptr(1299.99),
			Category:    ptr("Electronics"),
			Stock:       ptr(50),
		},
		{
			Name:        ptr("Wireless Headphones"),
			Description: ptr("Premium noise-cancelling headphones"),
			Price:       ptr(199.99),
			Category:    ptr("Electronics"),
			Stock:       ptr(100),
		},
		{
			Name:        ptr("Coffee Mug"),
			Description: ptr("Ceramic coffee mug with company logo"),
			Price:       ptr(12.99),
			Category:    ptr("Home & Kitchen"),
			Stock:       ptr(0),
		},
	}
}

// Load grava os registros de exemplo pelos caminhos normais de Save.
func Load(users UserSaver, products ProductSaver, log logger.Logger) {
	for _, in := range Users() {
		users.Save(in)
	}
	for _, in := range Products() {
		products.Save(in)
	}
	log.Info("Dados de exemplo carregados.", map[string]interface{}{
		"users":    len(Users()),
		"products": len(Products()),
	})
}

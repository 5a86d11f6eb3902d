package validation

import (
	"gocatalog/internal/domain"
	apperror "gocatalog/internal/errors"
)

var productFields = []string{"name", "description", "price", "category", "stock"}

// ValidateProduct valida o payload de criação de produto (todos os campos obrigatórios).
func ValidateProduct(p Payload) (domain.ProductInput, []apperror.FieldError) {
	return validateProduct(p, true)
}

// ValidateProductUpdate valida uma atualização parcial de produto.
func ValidateProductUpdate(p Payload) (domain.ProductInput, []apperror.FieldError) {
	return validateProduct(p, false)
}

func validateProduct(p Payload, create bool) (domain.ProductInput, []apperror.FieldError) {
	c := newChecker(p, productFields...)
	if !create {
		c.requireAny()
	}

	in := domain.ProductInput{
		Name:        c.str("name", "nome do produto", 2, 100, create),
		Description: c.str("description", "descrição", 10, 500, create),
		Price:       checkPrice(c, create),
		Category:    c.str("category", "categoria", 2, 50, create),
		Stock:       c.integer("stock", "estoque", 0, -1, create, "O campo estoque não pode ser negativo", ""),
	}
	c.rejectUnknown()

	if errs := c.result(); errs != nil {
		return domain.ProductInput{}, errs
	}
	return in, nil
}

// checkPrice arredonda para 2 casas decimais e exige valor positivo após o arredondamento.
func checkPrice(c *checker, required bool) *float64 {
	d, ok := c.number("price", "preço", required)
	if !ok {
		return nil
	}
	rounded := d.Round(2)
	if !rounded.IsPositive() {
		c.add("price", "O campo preço deve ser um número positivo")
		return nil
	}
	v := rounded.InexactFloat64()
	return &v
}

package domain

import "math"

// Envelope é o formato uniforme de todas as respostas de sucesso da API.
type Envelope struct {
	Success    bool        `json:"success" example:"true"`
	Message    string      `json:"message,omitempty" example:"Usuário criado com sucesso"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Count      *int        `json:"count,omitempty"`
	Filters    interface{} `json:"filters,omitempty"`
}

// Limites de paginação.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageQuery define os parâmetros de paginação já normalizados (page >= 1, 1 <= limit <= MaxLimit).
type PageQuery struct {
	Page  int
	Limit int
}

// NewPageQuery normaliza page/limit: valores menores que 1 voltam ao padrão
// e limit é limitado a MaxLimit.
func NewPageQuery(page, limit int) PageQuery {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return PageQuery{Page: page, Limit: limit}
}

// Skip devolve o deslocamento correspondente à página.
// Páginas muito altas saturam em math.MaxInt em vez de transbordar.
func (q PageQuery) Skip() int {
	if q.Limit <= 0 || q.Page <= 1 {
		return 0
	}
	if q.Page-1 > math.MaxInt/q.Limit {
		return math.MaxInt
	}
	return (q.Page - 1) * q.Limit
}

// Pagination é o bloco de paginação devolvido nas listagens.
type Pagination struct {
	CurrentPage  int `json:"currentPage" example:"1"`
	TotalPages   int `json:"totalPages" example:"3"`
	TotalItems   int `json:"totalItems" example:"25"`
	ItemsPerPage int `json:"itemsPerPage" example:"10"`
}

// NewPagination monta o bloco de paginação para o total de itens filtrados.
func NewPagination(q PageQuery, total int) *Pagination {
	totalPages := 0
	if q.Limit > 0 {
		totalPages = (total + q.Limit - 1) / q.Limit
	}
	return &Pagination{
		CurrentPage:  q.Page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: q.Limit,
	}
}

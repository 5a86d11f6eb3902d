package product

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"gocatalog/internal/api/httputil"
	"gocatalog/internal/domain"
	apperror "gocatalog/internal/errors"
	"gocatalog/internal/pkg/logger"
	"gocatalog/internal/validation"
)

// ProductService define o contrato que o Handler espera da camada de Serviço.
type ProductService interface {
	ListProducts(ctx context.Context, q domain.PageQuery, filter domain.ProductFilter) ([]domain.Product, int, error)
	GetProductByID(ctx context.Context, id string) (domain.Product, error)
	CreateProduct(ctx context.Context, payload validation.Payload) (domain.Product, error)
	UpdateProduct(ctx context.Context, id string, payload validation.Payload) (domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	ListCategories(ctx context.Context) ([]domain.CategoryCount, error)
}

// Handler agrupa todos os métodos de Handler do produto.
type Handler struct {
	Service      ProductService
	Logger       logger.Logger
	MaxBodyBytes int64
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc ProductService, log logger.Logger, maxBodyBytes int64) *Handler {
	return &Handler{
		Service:      svc,
		Logger:       log,
		MaxBodyBytes: maxBodyBytes,
	}
}

// --- Funções Auxiliares ---

// parseFilter monta o filtro de listagem a partir da query string.
// inStock só é considerado quando vale exatamente "true" ou "false".
func parseFilter(q url.Values) (domain.ProductFilter, error) {
	filter := domain.ProductFilter{Category: strings.TrimSpace(q.Get("category"))}

	var fieldErrs []apperror.FieldError
	parsePrice := func(key string) *float64 {
		raw := strings.TrimSpace(q.Get(key))
		if raw == "" {
			return nil
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			fieldErrs = append(fieldErrs, apperror.FieldError{
				Field:   key,
				Message: fmt.Sprintf("O parâmetro '%s' deve ser um número", key),
			})
			return nil
		}
		return &v
	}
	filter.MinPrice = parsePrice("minPrice")
	filter.MaxPrice = parsePrice("maxPrice")

	switch q.Get("inStock") {
	case "true":
		v := true
		filter.InStock = &v
	case "false":
		v := false
		filter.InStock = &v
	}

	if fieldErrs != nil {
		return domain.ProductFilter{}, apperror.NewFieldValidationError(fieldErrs)
	}
	return filter, nil
}

// --- Handlers de Produto ---

// ListProductsHandler godoc
// @Summary      Lista produtos
// @Description  Lista paginada com filtros combinados (AND). O filtro aplicado é devolvido em "filters".
// @Tags         products
// @Produce      json
// @Param        page      query     int     false  "Página (padrão 1)"
// @Param        limit     query     int     false  "Itens por página (padrão 10, máximo 100)"
// @Param        category  query     string  false  "Categoria (sem diferenciar caixa)"
// @Param        minPrice  query     number  false  "Preço mínimo (inclusivo)"
// @Param        maxPrice  query     number  false  "Preço máximo (inclusivo)"
// @Param        inStock   query     bool    false  "Disponibilidade em estoque"
// @Success      200       {object}  domain.Envelope{data=[]domain.Product,filters=domain.ProductFilter}
// @Failure      400       {object}  domain.ErrorResponse
// @Router       /products [get]
func (h *Handler) ListProductsHandler(w http.ResponseWriter, r *http.Request) {
	// 1. Paginação e filtros
	q := httputil.PageQuery(r)
	filter, err := parseFilter(r.URL.Query())
	if err != nil {
		httputil.WriteError(w, r, h.Logger, err)
		return
	}

	// 2. Chamar o Serviço
	products, total, err := h.Service.ListProducts(r.Context(), q, filter)
	if err != nil {
		httputil.WriteError(w, r, h.Logger, err)
		return
	}

	// 3. Resposta com paginação sobre o total filtrado
	httputil.Success(w, h.Logger, http.StatusOK, domain.Envelope{
		Data:       products,
		Pagination: domain.NewPagination(q, total),
		Filters:    filter,
	})
}

// ListCategoriesHandler godoc
// @Summary      Lista categorias
// @Description  Categorias distintas na ordem em que aparecem, com a contagem de produtos.
// @Tags         products
// @Produce      json
// @Success      200  {object}  domain.Envelope{data=[]domain.CategoryCount}
// @Router       /products/categories [get]
func (h *Handler) ListCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Service.ListCategories(r.Context())
	if err != nil {
		httputil.WriteError(w, r, h.Logger, err)
		return
	}
	httputil.Success(w, h.Logger, http.StatusOK, domain.Envelope{Data: categories})
}

// GetProductByIDHandler godoc
// @Summary      Busca produto por ID
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "ID do produto"
// @Success      200  {object}  domain.Envelope{data=domain.Product}
// @Failure      404  {object}  domain.ErrorResponse
// @Router       /products/{id} [get]
func (h *Handler) GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	product, err := h.Service.GetProductByID(r.Context(), r.PathValue("id"))
	if err != nil {
		// NotFoundError (404) ou InternalError (500)
		httputil.WriteError(w, r, h.Logger, err)
		return
	}
	httputil.Success(w, h.Logger, http.StatusOK, domain.Envelope{Data: product})
}

// CreateProductHandler godoc
// @Summary      Cria produto
// @Description  Campos: name (2-100), description (10-500), price (> 0, 2 casas), category (2-50), stock (>= 0).
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        product  body      object  true  "Dados do produto"
// @Success      201      {object}  domain.Envelope{data=domain.Product}
// @Failure      400      {object}  domain.ErrorResponse
// @Router       /products [post]
func (h *Handler) CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	payload, err := httputil.DecodeJSONObject(r, h.MaxBodyBytes)
	if err != nil {
		httputil.WriteError(w, r, h.Logger, err)
		return
	}

	product, err := h.Service.CreateProduct(r.Context(), payload)
	if err != nil {
		httputil.WriteError(w, r, h.Logger, err)
		return
	}

	h.Logger.Info("Produto criado.", map[string]interface{}{"product_id": product.ID})
	httputil.Success(w, h.Logger, http.StatusCreated, domain.Envelope{Message: "Produto criado com sucesso", Data: product})
}

// UpdateProductHandler godoc
// @Summary      Atualiza produto
// @Description  Atualização parcial; inStock é recalculado a partir do estoque.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id       path      string  true  "ID do produto"
// @Param        product  body      object  true  "Campos a alterar"
// @Success      200      {object}  domain.Envelope{data=domain.Product}
// @Failure      400      {object}  domain.ErrorResponse
// @Failure      404      {object}  domain.ErrorResponse
// @Router       /products/{id} [put]
func (h *Handler) UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	payload, err := httputil.DecodeJSONObject(r, h.MaxBodyBytes)
	if err != nil {
		httputil.WriteError(w, r, h.Logger, err)
		return
	}

	product, err := h.Service.UpdateProduct(r.Context(), id, payload)
	if err != nil {
		httputil.WriteError(w, r, h.Logger, err)
		return
	}

	h.Logger.Info("Produto atualizado.", map[string]interface{}{"product_id": id})
	httputil.Success(w, h.Logger, http.StatusOK, domain.Envelope{Message: "Produto atualizado com sucesso", Data: product})
}

// DeleteProductHandler godoc
// @Summary      Remove produto
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "ID do produto"
// @Success      200  {object}  domain.Envelope
// @Failure      404  {object}  domain.ErrorResponse
// @Router       /products/{id} [delete]
func (h *Handler) DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.Service.DeleteProduct(r.Context(), id); err != nil {
		httputil.WriteError(w, r, h.Logger, err)
		return
	}

	h.Logger.Info("Produto removido.", map[string]interface{}{"product_id": id})
	httputil.Success(w, h.Logger, http.StatusOK, domain.Envelope{Message: "Produto removido com sucesso"})
}

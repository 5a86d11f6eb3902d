package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gocatalog/internal/api/product"
	"gocatalog/internal/api/user"
	"gocatalog/internal/domain"
	"gocatalog/internal/pkg/cache"
	"gocatalog/internal/pkg/logger"
	"gocatalog/internal/repository/productrepo"
	"gocatalog/internal/repository/seed"
	"gocatalog/internal/repository/userrepo"
	"gocatalog/internal/service/productservice"
	"gocatalog/internal/service/userservice"
)

func newTestRouter(limit int) http.Handler {
	log := logger.Nop()
	users := userrepo.NewUserRepository()
	products := productrepo.NewProductRepository()
	seed.Load(users, products, log)

	return NewRouter(
		user.NewHandler(userservice.NewService(users, log), log, 1<<20),
		product.NewHandler(productservice.NewService(products, log), log, 1<<20),
		cache.NewMemoryClient(),
		Options{RateLimitMaxRequests: limit, RateLimitPeriod: time.Minute},
		log,
	)
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func TestHealth(t *testing.T) {
	w := serve(newTestRouter(100), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var body HealthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "OK", body.Status)
	assert.GreaterOrEqual(t, body.Uptime, 0.0)
}

func TestRoutes_SeededCatalog(t *testing.T) {
	h := newTestRouter(100)

	w := serve(h, http.MethodGet, "/api/v1/users", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var env struct {
		Data       []domain.User      `json:"data"`
		Pagination *domain.Pagination `json:"pagination"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&env))
	assert.Len(t, env.Data, 2)
	assert.Equal(t, 2, env.Pagination.TotalItems)

	w = serve(h, http.MethodGet, "/api/v1/products/categories", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Home & Kitchen"`)

	w = serve(h, http.MethodGet, "/api/v1/users/search?q=jane", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":1`)
}

func TestRoutes_CreateThenFetch(t *testing.T) {
	h := newTestRouter(100)

	w := serve(h, http.MethodPost, "/api/v1/users", `{"name":"Alice","email":"alice@example.com","age":30}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		Data domain.User `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))

	w = serve(h, http.MethodGet, "/api/v1/users/"+created.Data.ID, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRoutes_UnknownRouteReturnsEnvelope(t *testing.T) {
	w := serve(newTestRouter(100), http.MethodGet, "/api/v2/nada", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body domain.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Equal(t, "NOT_FOUND", body.Category)
}

func TestRoutes_RateLimited(t *testing.T) {
	h := newTestRouter(2)

	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/health", "").Code)
	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/health", "").Code)

	w := serve(h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "RATE_LIMITED")
}

func TestRoutes_SwaggerDoc(t *testing.T) {
	w := serve(newTestRouter(100), http.MethodGet, "/swagger/doc.json", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"/products/categories"`)
}

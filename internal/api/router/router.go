package router

import (
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "gocatalog/docs" // registra o documento Swagger gerado
	"gocatalog/internal/api/httputil"
	"gocatalog/internal/api/product"
	"gocatalog/internal/api/user"
	apperror "gocatalog/internal/errors"
	"gocatalog/internal/pkg/cache"
	"gocatalog/internal/pkg/logger"
	"gocatalog/internal/pkg/middleware"
)

// Options reúne os parâmetros de infraestrutura aplicados pelos middlewares globais.
type Options struct {
	RateLimitMaxRequests int
	RateLimitPeriod      time.Duration
}

// HealthResponse é o corpo do health check.
type HealthResponse struct {
	Status    string    `json:"status" example:"OK"`
	Timestamp time.Time `json:"timestamp"`
	Uptime    float64   `json:"uptime" example:"12.5"`
}

// NewRouter configura e retorna o roteador HTTP principal.
// Recebe os Handlers já inicializados por injeção de dependências.
func NewRouter(userHandler *user.Handler, productHandler *product.Handler, cacheClient cache.Client, opts Options, log logger.Logger) http.Handler {
	mux := http.NewServeMux()
	started := time.Now()

	// --- 1. Health Check ---
	mux.HandleFunc("GET /health", healthHandler(started, log))

	// --- 2. Rotas de Usuários (v1) ---
	mux.HandleFunc("GET /api/v1/users", userHandler.ListUsersHandler)
	mux.HandleFunc("GET /api/v1/users/search", userHandler.SearchUsersHandler)
	mux.HandleFunc("GET /api/v1/users/{id}", userHandler.GetUserByIDHandler)
	mux.HandleFunc("POST /api/v1/users", userHandler.CreateUserHandler)
	mux.HandleFunc("PUT /api/v1/users/{id}", userHandler.UpdateUserHandler)
	mux.HandleFunc("DELETE /api/v1/users/{id}", userHandler.DeleteUserHandler)

	// --- 3. Rotas de Produtos (v1) ---
	mux.HandleFunc("GET /api/v1/products", productHandler.ListProductsHandler)
	mux.HandleFunc("GET /api/v1/products/categories", productHandler.ListCategoriesHandler)
	mux.HandleFunc("GET /api/v1/products/{id}", productHandler.GetProductByIDHandler)
	mux.HandleFunc("POST /api/v1/products", productHandler.CreateProductHandler)
	mux.HandleFunc("PUT /api/v1/products/{id}", productHandler.UpdateProductHandler)
	mux.HandleFunc("DELETE /api/v1/products/{id}", productHandler.DeleteProductHandler)

	// --- 4. Documentação ---
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Qualquer outra rota devolve o envelope 404.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteError(w, r, log, apperror.NewNotFoundError("Rota "+r.Method+" "+r.URL.Path+" não existe."))
	})

	// --- 5. Middlewares globais (o primeiro é o mais externo) ---
	return middleware.Chain(mux,
		middleware.RequestID,
		middleware.RequestLogger(log),
		middleware.Recoverer(log),
		middleware.RateLimiter(cacheClient, opts.RateLimitMaxRequests, opts.RateLimitPeriod, log),
	)
}

// healthHandler responde com o estado do processo e o tempo desde a subida do roteador.
func healthHandler(started time.Time, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := httputil.JSONResponse(w, http.StatusOK, HealthResponse{
			Status:    "OK",
			Timestamp: time.Now().UTC(),
			Uptime:    time.Since(started).Seconds(),
		})
		if err != nil {
			log.Error("Falha ao serializar o health check.", err)
		}
	}
}

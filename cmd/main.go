package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	// Nossos pacotes de infraestrutura e utilitários
	"gocatalog/config"
	"gocatalog/internal/pkg/cache"
	"gocatalog/internal/pkg/logger"

	// Camadas para Injeção de Dependências
	"gocatalog/internal/api/product" // Handlers
	"gocatalog/internal/api/router"  // Roteador central
	"gocatalog/internal/api/user"
	"gocatalog/internal/repository/productrepo" // Acesso a Dados
	"gocatalog/internal/repository/seed"
	"gocatalog/internal/repository/userrepo"
	"gocatalog/internal/service/productservice" // Lógica de Negócio
	"gocatalog/internal/service/userservice"
)

// @title        GoCatalog API
// @version      1.0
// @description  API REST de usuários e produtos com armazenamento em memória.
// @BasePath     /api/v1
func main() {
	if err := run(); err != nil {
		log.Printf("❌ Servidor encerrado com erro: %v", err)
		os.Exit(1)
	}
}

func run() error {
	// 0. CARREGAR VARIÁVEIS DE AMBIENTE (.env)
	if err := godotenv.Load(); err != nil {
		// Sem .env seguimos com o ambiente do sistema (ex: Docker).
		log.Println("⚠️ Aviso: Arquivo .env não encontrado. Carregando configs apenas do ambiente do sistema.")
	}

	// 1. Configuração e Logger
	cfg := config.LoadConfig()
	appLog := logger.NewLogger(cfg.LogLevel)
	appLog.Info("Configurações carregadas.", map[string]interface{}{"env": cfg.Environment, "port": cfg.Port})

	// 2. Cache do rate limiter: Redis quando configurado, senão em memória
	cacheClient := newCacheClient(cfg, appLog)
	defer cacheClient.Close()

	// 3. INJEÇÃO DE DEPENDÊNCIAS (Repository -> Service -> Handler)
	userRepo := userrepo.NewUserRepository()
	productRepo := productrepo.NewProductRepository()
	if cfg.SeedData {
		seed.Load(userRepo, productRepo, appLog)
	}

	userSvc := userservice.NewService(userRepo, appLog)
	productSvc := productservice.NewService(productRepo, appLog)

	userHandler := user.NewHandler(userSvc, appLog, cfg.MaxBodyBytes)
	productHandler := product.NewHandler(productSvc, appLog, cfg.MaxBodyBytes)
	appLog.Debug("Handlers inicializados.", nil)

	// 4. Roteador e Servidor
	handler := router.NewRouter(userHandler, productHandler, cacheClient, router.Options{
		RateLimitMaxRequests: cfg.RateLimitMaxRequests,
		RateLimitPeriod:      cfg.RateLimitPeriod,
	}, appLog)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 5. Execução e Graceful Shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		appLog.Info("Servidor GoCatalog ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		appLog.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	appLog.Info("Servidor encerrado com sucesso.", nil)
	return nil
}

// newCacheClient conecta ao Redis quando REDIS_ADDR está definido e cai para o cache
// em memória se a conexão falhar.
func newCacheClient(cfg *config.Config, appLog logger.Logger) cache.Client {
	if cfg.RedisAddr == "" {
		appLog.Info("REDIS_ADDR vazio; rate limiter usando cache em memória.", nil)
		return cache.NewMemoryClient()
	}

	client, err := cache.NewRedisClient(cfg.RedisAddr, cfg.CacheTimeout)
	if err != nil {
		appLog.Warn("Redis indisponível; rate limiter usando cache em memória.", map[string]interface{}{"error": err.Error()})
		return cache.NewMemoryClient()
	}
	appLog.Info("Conexão Redis estabelecida.", map[string]interface{}{"addr": cfg.RedisAddr})
	return client
}

package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config armazena todas as configurações do aplicativo GoCatalog.
type Config struct {
	// Geral
	Port        string
	Environment string
	LogLevel    string
	SeedData    bool

	// Cache (Redis) usado pelo rate limiter; vazio usa o cache em memória
	RedisAddr    string
	CacheTimeout time.Duration

	// Rate Limiting
	RateLimitMaxRequests int
	RateLimitPeriod      time.Duration

	// Robustez do servidor HTTP
	MaxBodyBytes    int64
	ShutdownTimeout time.Duration
}

// LoadConfig carrega as configurações a partir das variáveis de ambiente.
// O .env, quando existir, já foi carregado pelo main via godotenv.
func LoadConfig() *Config {
	cfg := &Config{
		// 1. Geral
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		SeedData:    getBoolEnv("SEED_DATA", true),

		// 2. Cache (Redis)
		RedisAddr:    getEnv("REDIS_ADDR", ""),
		CacheTimeout: getDurationEnv("CACHE_TIMEOUT_SEC", 5) * time.Second,

		// 3. Rate Limiting
		RateLimitMaxRequests: getIntEnv("RATE_LIMIT_MAX_REQUESTS", 100),
		RateLimitPeriod:      getDurationEnv("RATE_LIMIT_PERIOD_MIN", 1) * time.Minute,

		// 4. Servidor
		MaxBodyBytes:    int64(getIntEnv("MAX_BODY_BYTES", 1<<20)),
		ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT_SEC", 15) * time.Second,
	}

	return cfg
}

// Funções Helpers (Auxiliares)

// getEnv lê a variável de ambiente ou retorna um valor padrão.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getDurationEnv lê uma variável de ambiente numérica e retorna-a como time.Duration.
// Valores não positivos são tratados como inválidos.
func getDurationEnv(key string, defaultValue int) time.Duration {
	value := getIntEnv(key, defaultValue)
	if value <= 0 {
		log.Printf("⚠️ Aviso: Valor de %s (%d) deve ser positivo. Usando padrão (%d).", key, value, defaultValue)
		return time.Duration(defaultValue)
	}
	return time.Duration(value)
}

// getIntEnv lê uma variável de ambiente numérica e retorna-a como int.
func getIntEnv(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(strings.TrimSpace(valueStr))
	if err != nil {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é um número inteiro válido. Usando padrão (%d).", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// getBoolEnv lê uma variável de ambiente booleana (true/false, 1/0).
func getBoolEnv(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(strings.TrimSpace(valueStr))
	if err != nil {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é booleano. Usando padrão (%t).", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

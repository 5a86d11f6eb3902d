package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// Client define o contrato de interface para o serviço de cache usado pelo rate limiter.
// Isso segue o Princípio da Inversão de Dependência (DIP) da Clean Architecture.
type Client interface {
	// IncrWindow incrementa o contador da chave e devolve o novo valor.
	// Se a chave estiver sem expiração (nova, ou uma tentativa anterior de
	// expirar falhou), ela recebe a janela informada.
	IncrWindow(ctx context.Context, key string, window time.Duration) (int64, error)
	Close() error
}

// --- Implementação Redis ---

// RedisClient é a implementação concreta da interface Client, usando Redis.
type RedisClient struct {
	rdb *redis.Client
}

// NewRedisClient cria o cliente Redis e valida a conexão com PING dentro do timeout.
// O chamador decide o fallback quando o Redis não está disponível.
func NewRedisClient(addr string, timeout time.Duration) (*RedisClient, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        addr,
		DialTimeout: timeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("falha ao conectar ao Redis em %s: %w", addr, err)
	}
	return &RedisClient{rdb: rdb}, nil
}

// IncrWindow executa INCR e TTL na mesma transação; sem TTL, aplica EXPIRE.
func (c *RedisClient) IncrWindow(ctx context.Context, key string, window time.Duration) (int64, error) {
	var incr *redis.IntCmd
	var ttl *redis.DurationCmd
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		ttl = pipe.TTL(ctx, key)
		return nil
	})
	if err != nil {
		return 0, err
	}

	// TTL negativo: a chave não tem expiração.
	if ttl.Val() < 0 {
		if err := c.rdb.Expire(ctx, key, window).Err(); err != nil {
			return incr.Val(), err
		}
	}
	return incr.Val(), nil
}

// Close encerra o pool de conexões.
func (c *RedisClient) Close() error {
	return c.rdb.Close()
}

// --- Implementação em memória (fallback quando REDIS_ADDR está vazio) ---

type window struct {
	count     int64
	expiresAt time.Time
}

// MemoryClient implementa Client dentro do processo, com expiração preguiçosa.
type MemoryClient struct {
	mu      sync.Mutex
	windows map[string]window
	now     func() time.Time
}

// NewMemoryClient cria um cache em memória.
func NewMemoryClient() *MemoryClient {
	return NewMemoryClientWithClock(time.Now)
}

// NewMemoryClientWithClock cria um cache em memória com relógio injetável.
func NewMemoryClientWithClock(now func() time.Time) *MemoryClient {
	return &MemoryClient{windows: make(map[string]window), now: now}
}

func (c *MemoryClient) IncrWindow(ctx context.Context, key string, d time.Duration) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	w, ok := c.windows[key]
	if !ok || !now.Before(w.expiresAt) {
		w = window{expiresAt: now.Add(d)}
	}
	w.count++
	c.windows[key] = w
	return w.count, nil
}

func (c *MemoryClient) Close() error { return nil }

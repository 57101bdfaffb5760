// Package cache adaptador Redis para respuestas cacheables (el resumen del
// dashboard). Opcional: sin REDIS_ADDR la app corre igual, sin caché.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jhoicas/stock-ledger-api/internal/application/reports"
)

var _ reports.Cache = (*RedisCache)(nil)

// RedisCache caché de bytes con TTL sobre Redis. Errores de red se tratan
// como cache miss: el caso de uso recalcula y sigue.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache conecta al Redis indicado y verifica con Ping.
func NewRedisCache(addr, password string, db int) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("conectar a Redis: %w", err)
	}
	return &RedisCache{client: client}, nil
}

// Get devuelve el valor cacheado, o false si no existe o Redis falló.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	b, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		// redis.Nil o error de red: ambos cuentan como miss
		return nil, false
	}
	return b, true
}

// Set guarda el valor con TTL. Un fallo se ignora: el caché es best-effort.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	_ = c.client.Set(ctx, key, value, ttl).Err()
}

// Close cierra la conexión.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

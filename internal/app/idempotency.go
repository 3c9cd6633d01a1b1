package app

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/Zafar-Sheik/roadworks-service/config"
	"github.com/Zafar-Sheik/roadworks-service/internal/middleware"
)

const (
	redisPingTimeout      = 3 * time.Second
	memoryStoreSweepEvery = time.Minute
)

// IdempotencyComponents holds the idempotency key store and, when configured, its Redis client.
type IdempotencyComponents struct {
	Store  middleware.IdempotencyStore
	Redis  *redis.Client
	memory *middleware.MemoryIdempotencyStore
}

// InitializeIdempotency returns a Redis backed store when REDIS_ADDR is set and reachable,
// otherwise an in-process store. Keys then only dedupe requests hitting the same replica.
func InitializeIdempotency(cfg config.RedisConfig) *IdempotencyComponents {
	if cfg.Addr != "" {
		client, err := connectRedis(cfg)
		if err == nil {
			log.Info().Str("addr", cfg.Addr).Msg("Using Redis for idempotency keys")
			return &IdempotencyComponents{Store: middleware.NewRedisIdempotencyStore(client), Redis: client}
		}
		log.Warn().Err(err).Str("addr", cfg.Addr).Msg("Redis unavailable - keeping idempotency keys in memory")
	}

	memory := middleware.NewMemoryIdempotencyStore(memoryStoreSweepEvery)
	return &IdempotencyComponents{Store: memory, memory: memory}
}

func connectRedis(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// HealthCheck pings Redis. The in-memory store is always healthy.
func (c *IdempotencyComponents) HealthCheck(ctx context.Context) error {
	if c.Redis == nil {
		return nil
	}
	return c.Redis.Ping(ctx).Err()
}

// Close stops the sweeper or closes the Redis client.
func (c *IdempotencyComponents) Close(context.Context) error {
	if c == nil {
		return nil
	}
	if c.memory != nil {
		c.memory.Stop()
	}
	if c.Redis != nil {
		return c.Redis.Close()
	}
	return nil
}

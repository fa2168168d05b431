// Package cache provides the optional Redis read-through layer for house lookups.
package cache

import (
	"context"
	"log/slog"
	"time"

	"houses/config"
	"houses/internal/domain/lifecycle"
	"houses/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const defaultTTL = 10 * time.Minute

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewRedisClient returns nil when no Redis address is configured, which
// disables caching.
func NewRedisClient(params Params) *redis.Client {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis cache disabled")

		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			params.Logger.Info("Redis cache connected", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}

// TTL returns the configured entry lifetime.
func TTL(cfg *config.Config) time.Duration {
	if cfg.Redis == nil || cfg.Redis.TTL <= 0 {
		return defaultTTL
	}

	return cfg.Redis.TTL
}

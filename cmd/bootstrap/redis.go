package bootstrap

import (
	"context"
	"log/slog"

	"bookmarket/internal/infra/cache"
	"bookmarket/internal/pkg/config"
	"bookmarket/internal/usecase"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewAvailabilityCache,
	),
)

// NewAvailabilityCache provides the slot cache: Redis when enabled, a
// noop otherwise. An unreachable Redis is not fatal at startup; the
// cache degrades to misses and logs each failure.
func NewAvailabilityCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) usecase.AvailabilityCache {
	if !cfg.Redis.Enabled {
		logger.Info("availability cache disabled, using noop")
		return cache.NewNoopCache()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("redis unreachable at startup, cache will degrade", "addr", cfg.Redis.Addr, "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return cache.NewAvailabilityCache(client, cfg.Cache.AvailabilityTTL, logger)
}

package bootstrap

import (
	"context"
	"log/slog"

	"billboard-booking/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		func(client *redis.Client) redis.Cmdable { return client },
	),
)

// NewRedisClient does not ping on startup. An unreachable Redis shows up in
// the health check instead of blocking boot.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			slog.Info("redis client closed")
			return client.Close()
		},
	})

	return client
}

package geocache

import (
	"context"
	"log/slog"

	"foodcart/config"
	"foodcart/internal/domain/lifecycle"
	"foodcart/internal/errors"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
)

// RedisParams holds dependencies for the redis client, injected by Fx
type RedisParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewRedisClient creates a redis client that is pinged on start and closed on stop.
func NewRedisClient(params RedisParams) (*redis.Client, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		return nil, errors.New("redis address is required for the redis geo cache backend")
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
				return errors.Wrap(err, "failed to ping redis")
			}
			params.Logger.Info("Redis geo cache connected", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}

package geocache

import (
	"log/slog"

	"foodcart/config"
	"foodcart/internal/domain/constants"
	"foodcart/internal/domain/repository"
	"foodcart/internal/errors"
	"foodcart/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// StoreParams holds dependencies for the geo cache, injected by Fx
type StoreParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB `optional:"true"`
}

// NewStore creates the geo cache backend selected by configuration.
// Postgres is used when nothing is configured.
func NewStore(params StoreParams) (repository.GeoCacheRepository, error) {
	backend := constants.GeoCacheBackendPostgres
	keyPrefix := ""
	if cfg := params.Config.GeoCache; cfg != nil {
		if cfg.Backend != "" {
			backend = cfg.Backend
		}
		keyPrefix = cfg.KeyPrefix
	}

	switch backend {
	case constants.GeoCacheBackendPostgres:
		if params.DB == nil {
			return nil, errors.New("database is required for the postgres geo cache backend")
		}
		params.Logger.Info("Using postgres geo cache")

		return postgres.NewGeoCacheRepository(params.DB), nil

	case constants.GeoCacheBackendRedis:
		client, err := NewRedisClient(RedisParams{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}
		params.Logger.Info("Using redis geo cache", slog.String("key_prefix", keyPrefix))

		return NewRedisStore(client, keyPrefix), nil

	case constants.GeoCacheBackendMemory:
		params.Logger.Warn("Using in-memory geo cache, coordinates are lost on restart")

		return NewMemoryStore(), nil

	default:
		return nil, errors.Errorf("unknown geo cache backend: %s", backend)
	}
}

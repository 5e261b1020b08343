package geocache

import (
	"io"
	"log/slog"
	"testing"

	"foodcart/config"
	"foodcart/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newStoreParams(t *testing.T, cfg *config.Config) StoreParams {
	t.Helper()

	return StoreParams{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNewStore_Memory(t *testing.T) {
	cfg := &config.Config{GeoCache: &config.GeoCacheConfig{Backend: constants.GeoCacheBackendMemory}}

	store, err := NewStore(newStoreParams(t, cfg))

	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)
}

func TestNewStore_RedisWithPrefix(t *testing.T) {
	cfg := &config.Config{
		GeoCache: &config.GeoCacheConfig{Backend: constants.GeoCacheBackendRedis, KeyPrefix: "test:"},
		Redis:    &config.RedisConfig{Addr: "localhost:6379"},
	}

	store, err := NewStore(newStoreParams(t, cfg))

	require.NoError(t, err)
	redisStore, ok := store.(*RedisStore)
	require.True(t, ok)
	assert.Equal(t, "test:", redisStore.keyPrefix)
}

func TestNewStore_RedisWithoutAddress(t *testing.T) {
	cfg := &config.Config{GeoCache: &config.GeoCacheConfig{Backend: constants.GeoCacheBackendRedis}}

	_, err := NewStore(newStoreParams(t, cfg))

	assert.ErrorContains(t, err, "redis address is required")
}

func TestNewStore_DefaultsToPostgres(t *testing.T) {
	_, err := NewStore(newStoreParams(t, &config.Config{}))

	assert.ErrorContains(t, err, "database is required")
}

func TestNewStore_UnknownBackend(t *testing.T) {
	cfg := &config.Config{GeoCache: &config.GeoCacheConfig{Backend: "etcd"}}

	_, err := NewStore(newStoreParams(t, cfg))

	assert.ErrorContains(t, err, "unknown geo cache backend: etcd")
}

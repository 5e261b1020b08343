package geocache

import (
	"context"
	"testing"
	"time"

	"foodcart/internal/domain/entity"
	"foodcart/internal/errors"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHashClient stores hashes in a map. Only the commands used by RedisStore are implemented.
type fakeHashClient struct {
	redis.Cmdable

	hashes map[string]map[string]string
	err    error
}

func newFakeHashClient() *fakeHashClient {
	return &fakeHashClient{hashes: make(map[string]map[string]string)}
}

func (f *fakeHashClient) HGetAll(_ context.Context, key string) *redis.StringStringMapCmd {
	if f.err != nil {
		return redis.NewStringStringMapResult(nil, f.err)
	}

	out := make(map[string]string, len(f.hashes[key]))
	for field, value := range f.hashes[key] {
		out[field] = value
	}

	return redis.NewStringStringMapResult(out, nil)
}

func (f *fakeHashClient) HSet(_ context.Context, key string, values ...any) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}

	fields := values[0].(map[string]any)
	hash, ok := f.hashes[key]
	if !ok {
		hash = make(map[string]string)
		f.hashes[key] = hash
	}
	for field, value := range fields {
		hash[field] = value.(string)
	}

	return redis.NewIntResult(int64(len(fields)), nil)
}

func TestRedisStore_StoreThenLookup(t *testing.T) {
	client := newFakeHashClient()
	store := NewRedisStore(client, "")
	store.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	ctx := context.Background()
	address := entity.NewAddress("Невский проспект 28")

	require.NoError(t, store.Store(ctx, address, entity.Coordinate{Lon: 30.3247, Lat: 59.9357}))

	hash := client.hashes[DefaultKeyPrefix+address.String()]
	require.NotNil(t, hash)
	assert.Equal(t, "30.3247", hash[fieldLon])
	assert.Equal(t, "59.9357", hash[fieldLat])
	assert.Equal(t, "2024-05-01T12:00:00Z", hash[fieldUpdatedAt])

	coord, found, err := store.Lookup(ctx, address)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, entity.Coordinate{Lon: 30.3247, Lat: 59.9357}, coord)
}

func TestRedisStore_LookupMiss(t *testing.T) {
	store := NewRedisStore(newFakeHashClient(), "test:")

	_, found, err := store.Lookup(context.Background(), entity.NewAddress("nowhere"))

	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisStore_CorruptEntryIsAnError(t *testing.T) {
	client := newFakeHashClient()
	client.hashes["test:broken"] = map[string]string{fieldLon: "x", fieldLat: "1"}
	store := NewRedisStore(client, "test:")

	_, found, err := store.Lookup(context.Background(), entity.Address("broken"))

	assert.Error(t, err)
	assert.False(t, found)
}

func TestRedisStore_PropagatesClientErrors(t *testing.T) {
	client := newFakeHashClient()
	client.err = errors.New("connection reset")
	store := NewRedisStore(client, "")
	ctx := context.Background()

	_, _, err := store.Lookup(ctx, entity.Address("a"))
	assert.ErrorContains(t, err, "connection reset")

	err = store.Store(ctx, entity.Address("a"), entity.Coordinate{})
	assert.ErrorContains(t, err, "connection reset")
}

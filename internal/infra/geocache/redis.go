package geocache

import (
	"context"
	"strconv"
	"time"

	"foodcart/internal/domain/entity"
	"foodcart/internal/domain/repository"
	"foodcart/internal/errors"

	"github.com/go-redis/redis/v8"
)

// DefaultKeyPrefix namespaces geo cache hashes in redis.
const DefaultKeyPrefix = "geocache:"

const (
	fieldLon       = "lon"
	fieldLat       = "lat"
	fieldUpdatedAt = "updated_at"
)

// RedisStore keeps geo cache entries as redis hashes, one per address.
// A single HSET per store makes concurrent writes last-writer-wins.
type RedisStore struct {
	client    redis.Cmdable
	keyPrefix string
	now       func() time.Time
}

// NewRedisStore creates a redis-backed geo cache.
func NewRedisStore(client redis.Cmdable, keyPrefix string) *RedisStore {
	if keyPrefix == "" {
		keyPrefix = DefaultKeyPrefix
	}

	return &RedisStore{
		client:    client,
		keyPrefix: keyPrefix,
		now:       time.Now,
	}
}

var _ repository.GeoCacheRepository = (*RedisStore)(nil)

// Lookup returns the coordinate cached for address.
func (s *RedisStore) Lookup(ctx context.Context, address entity.Address) (entity.Coordinate, bool, error) {
	values, err := s.client.HGetAll(ctx, s.key(address)).Result()
	if err != nil {
		return entity.Coordinate{}, false, errors.Wrap(err, "redis hgetall")
	}

	if len(values) == 0 {
		return entity.Coordinate{}, false, nil
	}

	coord, err := decodeCoordinate(values)
	if err != nil {
		return entity.Coordinate{}, false, errors.Wrapf(err, "decode cached coordinate for %q", address)
	}

	return coord, true, nil
}

// Store upserts the entry for address.
func (s *RedisStore) Store(ctx context.Context, address entity.Address, coord entity.Coordinate) error {
	err := s.client.HSet(ctx, s.key(address), encodeEntry(coord, s.now())).Err()
	if err != nil {
		return errors.Wrap(err, "redis hset")
	}

	return nil
}

func (s *RedisStore) key(address entity.Address) string {
	return s.keyPrefix + address.String()
}

func encodeEntry(coord entity.Coordinate, updatedAt time.Time) map[string]any {
	return map[string]any{
		fieldLon:       strconv.FormatFloat(coord.Lon, 'f', -1, 64),
		fieldLat:       strconv.FormatFloat(coord.Lat, 'f', -1, 64),
		fieldUpdatedAt: updatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func decodeCoordinate(values map[string]string) (entity.Coordinate, error) {
	lon, err := strconv.ParseFloat(values[fieldLon], 64)
	if err != nil {
		return entity.Coordinate{}, errors.Wrap(err, "parse lon")
	}

	lat, err := strconv.ParseFloat(values[fieldLat], 64)
	if err != nil {
		return entity.Coordinate{}, errors.Wrap(err, "parse lat")
	}

	return entity.Coordinate{Lon: lon, Lat: lat}, nil
}

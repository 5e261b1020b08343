package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"foodcart/internal/domain/entity"
	"foodcart/internal/domain/repository"
	"foodcart/internal/domain/service"
	"foodcart/internal/errors"

	"golang.org/x/sync/singleflight"
)

// locateResult is the memoized outcome for one normalized address.
type locateResult struct {
	coord entity.Coordinate
	ok    bool
}

// coordinateLocator resolves addresses cache first, then through the geocoder,
// writing successful geocodes back to the cache. It lives for one batch:
// each normalized address is looked up at most once, and concurrent callers
// for the same address share a single in-flight lookup.
type coordinateLocator struct {
	cache    repository.GeoCacheRepository
	geocoder service.Geocoder
	recorder service.ResolutionRecorder
	logger   *slog.Logger

	group singleflight.Group

	mu        sync.Mutex
	memo      map[entity.Address]locateResult
	cacheErrs []error
}

func newCoordinateLocator(
	cache repository.GeoCacheRepository,
	geocoder service.Geocoder,
	recorder service.ResolutionRecorder,
	logger *slog.Logger,
) *coordinateLocator {
	return &coordinateLocator{
		cache:    cache,
		geocoder: geocoder,
		recorder: recorder,
		logger:   logger,
		memo:     make(map[entity.Address]locateResult),
	}
}

// Locate returns the coordinate of raw, or ok=false when it cannot be determined.
func (l *coordinateLocator) Locate(ctx context.Context, raw string) (entity.Coordinate, bool) {
	address := entity.NewAddress(raw)
	if address.IsZero() {
		l.recorder.ObserveLookup(service.LookupBlank)

		return entity.Coordinate{}, false
	}

	if res, ok := l.memoized(address); ok {
		return res.coord, res.ok
	}

	v, _, _ := l.group.Do(address.String(), func() (any, error) {
		// A caller that lost the race to Do may arrive after the winner stored its result.
		if res, ok := l.memoized(address); ok {
			return res, nil
		}

		res := l.locate(ctx, address, strings.TrimSpace(raw))

		l.mu.Lock()
		l.memo[address] = res
		l.mu.Unlock()

		return res, nil
	})

	res, _ := v.(locateResult)

	return res.coord, res.ok
}

// CacheErr joins every geo cache failure seen so far.
func (l *coordinateLocator) CacheErr() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return errors.Join(l.cacheErrs...)
}

func (l *coordinateLocator) memoized(address entity.Address) (locateResult, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	res, ok := l.memo[address]

	return res, ok
}

func (l *coordinateLocator) locate(ctx context.Context, address entity.Address, query string) locateResult {
	logger := l.logger.With(slog.String("address", query))

	coord, found, err := l.cache.Lookup(ctx, address)
	switch {
	case err != nil:
		// Degrade to a miss so the address can still be geocoded.
		l.cacheFailed(service.CacheOpLookup, errors.Wrapf(err, "geo cache lookup %q", address))
		logger.WarnContext(ctx, "Geo cache lookup failed", slog.Any("error", err))
	case found:
		l.recorder.ObserveLookup(service.LookupCacheHit)

		return locateResult{coord: coord, ok: true}
	}

	start := time.Now()
	coord, err = l.geocoder.Resolve(ctx, query)
	elapsed := time.Since(start)

	if err != nil {
		outcome := service.LookupTransportErr
		if errors.Is(err, service.ErrAddressNotFound) {
			outcome = service.LookupNotFound
			logger.DebugContext(ctx, "Address has no geocoder candidates")
		} else {
			logger.WarnContext(ctx, "Geocoder call failed", slog.Any("error", err))
		}
		l.recorder.ObserveGeocode(outcome, elapsed)
		l.recorder.ObserveLookup(outcome)

		return locateResult{}
	}

	l.recorder.ObserveGeocode(service.LookupGeocoded, elapsed)
	l.recorder.ObserveLookup(service.LookupGeocoded)

	if err := l.cache.Store(ctx, address, coord); err != nil {
		// The coordinate is still returned; only the write is lost.
		l.cacheFailed(service.CacheOpStore, errors.Wrapf(err, "geo cache store %q", address))
		logger.WarnContext(ctx, "Geo cache store failed", slog.Any("error", err))
	}

	return locateResult{coord: coord, ok: true}
}

func (l *coordinateLocator) cacheFailed(op string, err error) {
	l.recorder.ObserveCacheError(op)

	l.mu.Lock()
	l.cacheErrs = append(l.cacheErrs, err)
	l.mu.Unlock()
}

package service

import (
	"time"

	"foodcart/internal/domain/entity"
)

// Coordinate lookup outcomes reported to a ResolutionRecorder.
const (
	LookupCacheHit     = "cache_hit"
	LookupGeocoded     = "geocoded"
	LookupNotFound     = "not_found"
	LookupTransportErr = "transport_error"
	LookupBlank        = "blank"
)

// Geo cache operations reported to a ResolutionRecorder.
const (
	CacheOpLookup = "lookup"
	CacheOpStore  = "store"
)

// ResolutionRecorder receives resolver measurements. Implementations must be
// safe for concurrent use.
type ResolutionRecorder interface {
	ObserveLookup(outcome string)
	ObserveGeocode(outcome string, elapsed time.Duration)
	ObserveCacheError(op string)
	ObserveResolution(status entity.ResolutionStatus)
	ObserveBatch(orders int, elapsed time.Duration)
}

// NopRecorder discards all measurements.
type NopRecorder struct{}

func (NopRecorder) ObserveLookup(string)                      {}
func (NopRecorder) ObserveGeocode(string, time.Duration)      {}
func (NopRecorder) ObserveCacheError(string)                  {}
func (NopRecorder) ObserveResolution(entity.ResolutionStatus) {}
func (NopRecorder) ObserveBatch(int, time.Duration)           {}

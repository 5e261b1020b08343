// Package constants holds configuration values shared across layers.
package constants

// Geo cache backends selectable through geoCache.backend.
const (
	GeoCacheBackendPostgres = "postgres"
	GeoCacheBackendRedis    = "redis"
	GeoCacheBackendMemory   = "memory"
)

// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"foodcart/internal/domain/entity"
)

// GeoCacheRepository is the persistent address to coordinate cache.
// It is the only writer of geo cache entries.
type GeoCacheRepository interface {
	// Lookup returns the cached coordinate for an exact normalized address.
	// found is false on a miss; err is reserved for storage failures.
	Lookup(ctx context.Context, address entity.Address) (coord entity.Coordinate, found bool, err error)

	// Store inserts or overwrites the entry for address and refreshes its timestamp.
	// Concurrent stores for one address are last-writer-wins.
	Store(ctx context.Context, address entity.Address, coord entity.Coordinate) error
}

// Package geocache contains non-relational geo cache backends.
package geocache

import (
	"context"
	"sync"
	"time"

	"foodcart/internal/domain/entity"
	"foodcart/internal/domain/repository"
)

// MemoryStore keeps geo cache entries in process memory.
// Entries live as long as the process.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[entity.Address]entity.GeoCacheEntry
	now     func() time.Time
}

// NewMemoryStore creates an empty in-memory geo cache.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[entity.Address]entity.GeoCacheEntry),
		now:     time.Now,
	}
}

var _ repository.GeoCacheRepository = (*MemoryStore)(nil)

// Lookup returns the coordinate cached for address.
func (s *MemoryStore) Lookup(_ context.Context, address entity.Address) (entity.Coordinate, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[address]
	if !ok {
		return entity.Coordinate{}, false, nil
	}

	return entry.Coordinate, true, nil
}

// Store upserts the entry for address.
func (s *MemoryStore) Store(_ context.Context, address entity.Address, coord entity.Coordinate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[address] = entity.GeoCacheEntry{
		Address:    address,
		Coordinate: coord,
		UpdatedAt:  s.now(),
	}

	return nil
}

// Entry returns the full cache entry, including its timestamp.
func (s *MemoryStore) Entry(address entity.Address) (entity.GeoCacheEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[address]

	return entry, ok
}

// Len returns the number of cached addresses.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}

package store

import (
	"maps"
	"sync"

	"go.trai.ch/wrp/internal/core/domain"
	"go.trai.ch/wrp/internal/core/ports"
)

var _ ports.ColorCacheStore = (*MemoryStore)(nil)

// MemoryStore keeps the cache entry in process memory.
type MemoryStore struct {
	mu    sync.Mutex
	entry *domain.ColorCacheEntry
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns a copy of the stored entry, or nil when empty.
func (s *MemoryStore) Load() (*domain.ColorCacheEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.entry), nil
}

// Save replaces the stored entry with a copy of entry.
func (s *MemoryStore) Save(entry *domain.ColorCacheEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry = clone(entry)
	return nil
}

// Delete empties the store.
func (s *MemoryStore) Delete() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry = nil
	return nil
}

func clone(e *domain.ColorCacheEntry) *domain.ColorCacheEntry {
	if e == nil {
		return nil
	}
	c := *e
	c.Colors = maps.Clone(e.Colors)
	return &c
}

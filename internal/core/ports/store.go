package ports

import "go.trai.ch/wrp/internal/core/domain"

// ColorCacheStore persists the single color cache entry.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ColorCacheStore interface {
	// Load returns the stored entry.
	// Returns nil, nil if nothing is stored.
	Load() (*domain.ColorCacheEntry, error)

	// Save replaces the stored entry.
	Save(entry *domain.ColorCacheEntry) error

	// Delete removes the stored entry. Deleting an empty store is not an error.
	Delete() error
}

package ports

import "go.trai.ch/yango/internal/core/domain"

// HashCacheStore loads and persists the hash cache of one operation.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type HashCacheStore interface {
	// Load reads the store at path. A missing store yields an empty cache and a
	// nil error. An unreadable store yields an empty cache and a non-nil error,
	// which callers report as a warning.
	Load(path string) (*domain.HashCache, error)

	// Persist writes the cache to path, creating parent directories.
	Persist(cache *domain.HashCache, path string) error

	// Remove deletes the store at path and reports whether it existed.
	Remove(path string) (bool, error)
}

// Package cas persists the per-operation hash caches as properties files.
package cas

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/magiconair/properties"
	"go.trai.ch/yango/internal/core/domain"
	"go.trai.ch/yango/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.HashCacheStore = (*Store)(nil)

// Store implements ports.HashCacheStore using Java-style properties files,
// one key=value line per cached file.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads the cache at path, creating its directory when missing.
func (s *Store) Load(path string) (*domain.HashCache, error) {
	path = filepath.Clean(path)

	if err := ensureDir(filepath.Dir(path)); err != nil {
		return domain.NewHashCache(), err
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.NewHashCache(), nil
		}
		return domain.NewHashCache(), zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "path", path)
	}

	loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	props, err := loader.LoadBytes(data)
	if err != nil {
		return domain.NewHashCache(), zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "path", path)
	}

	entries := make(map[string]domain.Digest, props.Len())
	for _, key := range props.Keys() {
		if value, ok := props.Get(key); ok {
			entries[key] = domain.Digest(value)
		}
	}
	return domain.NewHashCacheFrom(entries), nil
}

// Persist writes the cache to path with keys in sorted order.
func (s *Store) Persist(cache *domain.HashCache, path string) error {
	path = filepath.Clean(path)

	props := properties.NewProperties()
	props.DisableExpansion = true
	props.WriteSeparator = "="

	snapshot := cache.Snapshot()
	for _, key := range cache.Keys() {
		if _, _, err := props.Set(key, snapshot[key].String()); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "key", key)
		}
	}

	var buf bytes.Buffer
	if _, err := props.Write(&buf, properties.UTF8); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", path)
	}

	if err := ensureDir(filepath.Dir(path)); err != nil {
		return err
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(path, buf.Bytes(), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", path)
	}
	return nil
}

// Remove deletes the cache at path. A missing store is not an error.
func (s *Store) Remove(path string) (bool, error) {
	err := os.Remove(filepath.Clean(path))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", path)
}

func ensureDir(dir string) error {
	info, err := os.Stat(dir)
	switch {
	case err == nil && !info.IsDir():
		return errors.Join(domain.ErrTargetNotDirectory, zerr.With(zerr.New("path exists"), "path", dir))
	case err == nil:
		return nil
	case !errors.Is(err, fs.ErrNotExist):
		return zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "path", dir)
	}

	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create target directory"), "path", dir)
	}
	return nil
}

package domain

import (
	"maps"
	"slices"
	"sync"
)

// Digest is the hex-encoded content hash of a source file. It is used for
// change detection only.
type Digest string

// String returns the hex form of the digest.
func (d Digest) String() string {
	return string(d)
}

// HashCache maps base-relative file paths to the digest recorded at the last
// successful run of one operation. It is safe for concurrent use.
type HashCache struct {
	mu      sync.RWMutex
	entries map[string]Digest
	dirty   bool
}

// NewHashCache creates an empty HashCache.
func NewHashCache() *HashCache {
	return &HashCache{entries: make(map[string]Digest)}
}

// NewHashCacheFrom creates a HashCache seeded with entries.
func NewHashCacheFrom(entries map[string]Digest) *HashCache {
	c := NewHashCache()
	maps.Copy(c.entries, entries)
	return c
}

// Lookup returns the recorded digest for relPath. The boolean is false when
// the path has no entry.
func (c *HashCache) Lookup(relPath string) (Digest, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	d, ok := c.entries[relPath]
	return d, ok
}

// Update records digest for relPath in memory.
func (c *HashCache) Update(relPath string, digest Digest) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if prev, ok := c.entries[relPath]; ok && prev == digest {
		return
	}
	c.entries[relPath] = digest
	c.dirty = true
}

// Len returns the number of entries.
func (c *HashCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Dirty reports whether Update changed the cache since it was created.
func (c *HashCache) Dirty() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dirty
}

// Keys returns the cached paths in sorted order.
func (c *HashCache) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Sorted(maps.Keys(c.entries))
}

// Snapshot returns a copy of the entries.
func (c *HashCache) Snapshot() map[string]Digest {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return maps.Clone(c.entries)
}

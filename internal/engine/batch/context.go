package batch

import (
	"sync"

	"go.trai.ch/yango/internal/core/domain"
	"go.trai.ch/zerr"
)

// Context holds the state of one batch run. It is created per run so that
// nothing leaks between operations.
type Context struct {
	Operation domain.Operation
	Cache     *domain.HashCache
	StorePath string

	mu      sync.Mutex
	summary domain.Summary
	states  map[string]domain.FileState
}

// NewContext creates the state for running op with cache stored at storePath.
func NewContext(op domain.Operation, cache *domain.HashCache, storePath string) *Context {
	return &Context{
		Operation: op,
		Cache:     cache,
		StorePath: storePath,
		summary:   domain.Summary{Operation: op},
		states:    make(map[string]domain.FileState),
	}
}

// claim registers the file keyed by rel as discovered. It reports false when
// the key was already claimed in this run, so a file reached through two
// spellings of its path is processed once.
func (c *Context) claim(rel string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.states[rel]; ok {
		return false
	}
	c.states[rel] = domain.FileDiscovered
	return true
}

// advance moves the file keyed by rel to next and counts terminal states.
func (c *Context) advance(rel string, next domain.FileState) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	current, ok := c.states[rel]
	if !ok {
		current = domain.FileDiscovered
	}
	if !current.CanTransition(next) {
		return zerr.With(zerr.With(zerr.New("illegal file state transition"), "from", string(current)), "to", string(next))
	}
	c.states[rel] = next
	c.summary.Record(next)
	return nil
}

// Summary returns a copy of the counters.
func (c *Context) Summary() domain.Summary {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.summary
}

// State returns the last state reached by the file keyed by rel.
func (c *Context) State(rel string) domain.FileState {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.states[rel]; ok {
		return s
	}
	return domain.FileDiscovered
}

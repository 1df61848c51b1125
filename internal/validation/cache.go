package validation

import (
	"github.com/goliatone/go-covjson/internal/schema"
	"github.com/puzpuzpuz/xsync/v3"
)

type cacheKey struct {
	mode Mode
	id   string
}

type cacheEntry struct {
	validator *Validator
	err       error
}

// Cache memoises compiled validators per (mode, schema id). Entries are
// populated on first use and never invalidated; a failed compile is cached as
// well. Safe for concurrent use.
type Cache struct {
	store   *schema.Store
	opts    []CompileOption
	entries *xsync.MapOf[cacheKey, cacheEntry]
}

// NewCache returns an empty cache compiling against store with opts.
func NewCache(store *schema.Store, opts ...CompileOption) *Cache {
	return &Cache{
		store:   store,
		opts:    opts,
		entries: xsync.NewMapOf[cacheKey, cacheEntry](),
	}
}

// Validator returns the validator for id in mode, compiling it at most once.
func (c *Cache) Validator(mode Mode, id string) (*Validator, error) {
	entry, _ := c.entries.LoadOrCompute(cacheKey{mode: mode, id: id}, func() cacheEntry {
		validator, err := Compile(c.store, id, mode, c.opts...)
		return cacheEntry{validator: validator, err: err}
	})
	return entry.validator, entry.err
}

// Store returns the store the cache compiles against.
func (c *Cache) Store() *schema.Store {
	return c.store
}

// Len returns the number of cached entries, including failed compiles.
func (c *Cache) Len() int {
	return c.entries.Size()
}

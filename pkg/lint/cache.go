package lint

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// LineCache memoises per-rule matches for a line under a rule-set fingerprint.
//
// Implementations must be safe for concurrent use; the runner shares one
// cache between its workers.
type LineCache interface {
	// Get returns the matches stored for key, one slice per resolved rule.
	Get(key string) ([][]Match, bool)

	// Set stores matches for key.
	Set(key string, matches [][]Match)
}

// Default line cache timings.
const (
	DefaultLineCacheTTL     = 10 * time.Minute
	DefaultLineCacheCleanup = 15 * time.Minute
)

// MemoryLineCache is a LineCache backed by an in-memory expiring map.
type MemoryLineCache struct {
	cache *gocache.Cache
}

// NewMemoryLineCache creates a cache whose entries expire after ttl.
func NewMemoryLineCache(ttl, cleanupInterval time.Duration) *MemoryLineCache {
	return &MemoryLineCache{
		cache: gocache.New(ttl, cleanupInterval),
	}
}

// Get retrieves the matches stored for key.
func (c *MemoryLineCache) Get(key string) ([][]Match, bool) {
	val, found := c.cache.Get(key)
	if !found {
		return nil, false
	}
	matches, ok := val.([][]Match)
	return matches, ok
}

// Set stores matches with the default expiration.
func (c *MemoryLineCache) Set(key string, matches [][]Match) {
	c.cache.SetDefault(key, matches)
}

// Len returns the number of cached lines, including expired ones not yet
// cleaned up.
func (c *MemoryLineCache) Len() int {
	return c.cache.ItemCount()
}

// Flush removes every cached line.
func (c *MemoryLineCache) Flush() {
	c.cache.Flush()
}

func lineCacheKey(fingerprint, content string) string {
	return fingerprint + "\x00" + content
}

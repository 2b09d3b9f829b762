package loader

import (
	"sync"
	"time"
)

// Cache is a time-bounded memoization of load results, keyed by source
// identifier. A reader never observes a half-updated entry: the mutex
// is held across the refresh, so concurrent callers either get the
// cached result or wait for the single in-flight refresh.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	now     func() time.Time // injectable for tests
}

type cacheEntry struct {
	result    Result
	refreshed time.Time
}

// NewCache creates an empty cache using the real clock.
func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// GetOrRefresh returns the cached result for key when it is younger
// than ttl, otherwise calls refresh, stores its result, and returns it.
func (c *Cache) GetOrRefresh(key string, ttl time.Duration, refresh func() Result) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[key]; ok && c.now().Sub(entry.refreshed) < ttl {
		return entry.result
	}

	result := refresh()
	c.entries[key] = cacheEntry{result: result, refreshed: c.now()}
	return result
}

// Invalidate drops the cached entry for key, forcing the next
// GetOrRefresh to re-fetch.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

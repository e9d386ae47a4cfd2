package catalog

import (
	"sync"
	"time"
)

type cacheEntry struct {
	res      Resolution
	storedAt time.Time
}

// Cache is an in-process TTL cache of resolutions, keyed by the raw barcode
// string. Entries are replaced whole, never mutated in place, so concurrent
// resolutions can only ever observe a complete entry. Eviction is lazy: a
// stale entry is dropped on the next access. There is no capacity bound and
// no manual invalidation.
type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]cacheEntry
	now     func() time.Time
}

func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// Get returns the cached resolution for barcode if one exists and is still
// fresh.
func (c *Cache) Get(barcode string) (Resolution, bool) {
	c.mu.RLock()
	entry, ok := c.entries[barcode]
	c.mu.RUnlock()
	if !ok {
		return Resolution{}, false
	}
	if c.now().Sub(entry.storedAt) >= c.ttl {
		c.mu.Lock()
		// Re-check under the write lock; a racing Set may have refreshed it.
		if e, ok := c.entries[barcode]; ok && c.now().Sub(e.storedAt) >= c.ttl {
			delete(c.entries, barcode)
		}
		c.mu.Unlock()
		return Resolution{}, false
	}
	return entry.res, true
}

// Set stores a resolution for barcode, replacing any previous entry.
func (c *Cache) Set(barcode string, res Resolution) {
	c.mu.Lock()
	c.entries[barcode] = cacheEntry{res: res, storedAt: c.now()}
	c.mu.Unlock()
}

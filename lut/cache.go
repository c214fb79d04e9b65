package lut

import "sync"

// DefaultCacheSize is the soft limit of the shared cube cache.
const DefaultCacheSize = 16

var shared = NewCache(DefaultCacheSize)

// Baked returns the cube for name at Dimension, baking transform only on
// the first request. The name must identify the transform: two calls with
// the same name share one cube. Returned cubes must not be modified.
func Baked(name string, transform Transform) *Cube {
	return shared.GetOrBake(name, Dimension, transform)
}

type cacheKey struct {
	name string
	dim  int
}

type cacheEntry struct {
	cube  *Cube
	atime int64
}

// Cache holds baked cubes keyed by name and dimension. When it grows past
// its soft limit, the least recently used quarter is evicted.
//
// Cache is safe for concurrent use.
type Cache struct {
	mu        sync.Mutex
	entries   map[cacheKey]*cacheEntry
	softLimit int
	tick      int64
}

// NewCache returns an empty cache. A softLimit of 0 means unlimited.
func NewCache(softLimit int) *Cache {
	return &Cache{entries: make(map[cacheKey]*cacheEntry), softLimit: softLimit}
}

// GetOrBake returns the cached cube or bakes and stores it. Baking runs
// under the lock so a cube is never baked twice.
func (c *Cache) GetOrBake(name string, dimension int, transform Transform) *Cube {
	key := cacheKey{name: name, dim: max(dimension, MinDimension)}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++
	if e, ok := c.entries[key]; ok {
		e.atime = c.tick
		return e.cube
	}

	cube := Bake(key.dim, transform)
	c.entries[key] = &cacheEntry{cube: cube, atime: c.tick}
	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evictOldest()
	}
	return cube
}

// Len returns the number of cached cubes.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear drops every cube.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[cacheKey]*cacheEntry)
	c.tick = 0
}

// evictOldest trims the cache to three quarters of the soft limit.
// Caller must hold c.mu.
func (c *Cache) evictOldest() {
	target := max(c.softLimit*3/4, 1)
	for len(c.entries) > target {
		var (
			oldest cacheKey
			atime  int64 = -1
		)
		for k, e := range c.entries {
			if atime < 0 || e.atime < atime {
				oldest, atime = k, e.atime
			}
		}
		delete(c.entries, oldest)
	}
}

package domain

import "slices"

// Resolution is the cached outcome of resolving one name.
type Resolution struct {
	// Path is the clean absolute path of the resolved file. Empty when not found.
	Path string
	// Found is false for a cached negative result.
	Found bool
}

// NotFound is the negative resolution.
var NotFound = Resolution{}

// Resolved returns a positive resolution for path.
func Resolved(path string) Resolution {
	return Resolution{Path: path, Found: true}
}

// ResolutionCache maps requested names, verbatim, to their resolution.
// Entries never expire. Once the cache holds capacity entries the next
// insertion starts from an empty cache.
// It is not safe for concurrent use.
type ResolutionCache struct {
	capacity int
	entries  map[string]Resolution
}

// NewResolutionCache creates a cache that is cleared when it reaches capacity.
func NewResolutionCache(capacity int) *ResolutionCache {
	if capacity <= 0 {
		capacity = DefaultCacheMaxSize
	}
	return &ResolutionCache{
		capacity: capacity,
		entries:  make(map[string]Resolution),
	}
}

// Get returns the cached resolution for name.
func (c *ResolutionCache) Get(name string) (Resolution, bool) {
	res, ok := c.entries[name]
	return res, ok
}

// Put stores res under name, clearing the whole cache first if it is full.
func (c *ResolutionCache) Put(name string, res Resolution) {
	if _, exists := c.entries[name]; !exists && len(c.entries) >= c.capacity {
		c.Clear()
	}
	c.entries[name] = res
}

// Len returns the number of cached entries.
func (c *ResolutionCache) Len() int {
	return len(c.entries)
}

// Capacity returns the configured capacity.
func (c *ResolutionCache) Capacity() int {
	return c.capacity
}

// Clear drops every entry.
func (c *ResolutionCache) Clear() {
	clear(c.entries)
}

// SearchCache maps search targets to the ordered paths found for them.
// It has no capacity bound; entries are replaced per key.
// It is not safe for concurrent use.
type SearchCache struct {
	entries map[string][]string
}

// NewSearchCache creates an empty SearchCache.
func NewSearchCache() *SearchCache {
	return &SearchCache{entries: make(map[string][]string)}
}

// Get returns a copy of the cached paths for target.
func (c *SearchCache) Get(target string) ([]string, bool) {
	paths, ok := c.entries[target]
	if !ok {
		return nil, false
	}
	return slices.Clone(paths), true
}

// Put replaces the cached paths for target.
func (c *SearchCache) Put(target string, paths []string) {
	if paths == nil {
		paths = []string{}
	}
	c.entries[target] = slices.Clone(paths)
}

// Len returns the number of cached targets.
func (c *SearchCache) Len() int {
	return len(c.entries)
}

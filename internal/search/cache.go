package search

import "sync"

// highlightCache is a bounded concurrent cache of highlighted strings.
// Eviction is deliberately simple: when over capacity, the oldest half of the
// entries (by insertion order) is dropped. The cache is an optimization, not
// a correctness requirement.
type highlightCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]string
	order    []string
}

func newHighlightCache(capacity int) *highlightCache {
	return &highlightCache{
		capacity: capacity,
		entries:  make(map[string]string, capacity),
	}
}

func (c *highlightCache) Get(key string) (string, bool) {
	if c.capacity <= 0 {
		return "", false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *highlightCache) Set(key, value string) {
	if c.capacity <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; !ok {
		c.order = append(c.order, key)
	}
	c.entries[key] = value

	if len(c.entries) > c.capacity {
		drop := c.order[:len(c.order)/2]
		for _, k := range drop {
			delete(c.entries, k)
		}
		c.order = append([]string(nil), c.order[len(c.order)/2:]...)
	}
}

// Len returns the number of cached entries.
func (c *highlightCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

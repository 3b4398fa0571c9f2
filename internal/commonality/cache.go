package commonality

import (
	"sort"
	"strings"
	"sync"
)

// memoCache is a mutex-guarded FIFO cache of extraction results. It exists
// purely as an optimization: dropping any or all entries changes latency,
// never outputs.
type memoCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]string
	order    []string
}

func newMemoCache(capacity int) *memoCache {
	return &memoCache{
		capacity: capacity,
		entries:  make(map[string]string, capacity),
	}
}

func (c *memoCache) get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *memoCache) put(key, value string) {
	if c.capacity <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[key]; !exists {
		c.order = append(c.order, key)
	}
	c.entries[key] = value
	for len(c.order) > c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
}

func (c *memoCache) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]string, c.capacity)
	c.order = nil
}

func (c *memoCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// cacheKey builds a key from the inputs sorted by length (ties broken
// lexicographically), so permutations of the same multiset hit the same
// entry.
func cacheKey(texts []string) string {
	sorted := make([]string, len(texts))
	copy(sorted, texts)
	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) < len(sorted[j])
		}
		return sorted[i] < sorted[j]
	})
	return strings.Join(sorted, "\x1f")
}

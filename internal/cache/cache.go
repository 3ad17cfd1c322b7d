// Package cache provides a small bounded map with insertion-order
// eviction: when the cache is full the oldest inserted entry is dropped,
// regardless of how recently it was read. This is deliberately not an LRU;
// the access pattern (repeated phrases inside one session) does not reward
// the extra bookkeeping.
package cache

import "sync"

// Cache is a fixed-capacity map with oldest-first eviction. The zero value
// is not usable; construct with New.
type Cache[K comparable, V any] struct {
	mu      sync.RWMutex
	cap     int
	entries map[K]V
	order   []K // ring buffer of insertion order
	head    int
	count   int
}

// New creates a cache that holds at most capacity entries. Capacities
// below 1 are treated as 1.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	return &Cache[K, V]{
		cap:     capacity,
		entries: make(map[K]V, capacity),
		order:   make([]K, capacity),
	}
}

// Get returns the cached value for key, if present.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

// Put inserts or updates an entry. Updating an existing key keeps its
// original place in the eviction order.
func (c *Cache[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		c.entries[key] = value
		return
	}

	if c.count == c.cap {
		oldest := c.order[c.head]
		delete(c.entries, oldest)
		c.order[c.head] = key
		c.head = (c.head + 1) % c.cap
	} else {
		c.order[(c.head+c.count)%c.cap] = key
		c.count++
	}
	c.entries[key] = value
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Clear drops every entry.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[K]V, c.cap)
	c.head = 0
	c.count = 0
}

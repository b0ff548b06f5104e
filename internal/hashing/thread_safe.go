package hashing

import (
	"sync"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// ThreadSafePerftCache wraps PerftCache with mutex protection for concurrent access.
type ThreadSafePerftCache struct {
	cache *PerftCache
	mu    sync.RWMutex
}

// NewThreadSafePerftCache creates a new thread-safe cache.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafePerftCache(maxCapacity int) *ThreadSafePerftCache {
	return &ThreadSafePerftCache{
		cache: NewPerftCache(maxCapacity),
	}
}

// Lookup returns the node count stored for b at depth.
func (c *ThreadSafePerftCache) Lookup(b *chess.Board, depth int) (uint64, bool) {
	// Lookup updates the hit counter, so it takes the write lock.
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Lookup(b, depth)
}

// Store records the node count for b at depth.
func (c *ThreadSafePerftCache) Store(b *chess.Board, depth int, nodes uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Store(b, depth, nodes)
}

// Len returns the number of stored entries.
func (c *ThreadSafePerftCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cache.Len()
}

// Hits returns the number of successful lookups.
func (c *ThreadSafePerftCache) Hits() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cache.Hits()
}

// IsFull returns true if the cache has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (c *ThreadSafePerftCache) IsFull() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cache.IsFull()
}

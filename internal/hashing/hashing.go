package hashing

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// PerftCache memoises perft node counts by position and depth.
// It is not safe for concurrent use; see ThreadSafePerftCache.
type PerftCache struct {
	// table maps the Zobrist key to the entries sharing it
	table map[uint64][]Entry
	// maxCapacity limits stored entries (0 = unlimited)
	maxCapacity int
	// size is the number of stored entries
	size int
	// hits counts successful lookups
	hits int
}

// Entry is one cached node count.
type Entry struct {
	// Key is the Zobrist key of the position
	Key uint64
	// Check is an independent hash that must also match on lookup
	Check uint64
	// Depth is the remaining search depth
	Depth int
	// Nodes is the perft count at that depth
	Nodes uint64
}

// NewPerftCache creates a cache. maxCapacity of 0 means unlimited capacity.
func NewPerftCache(maxCapacity int) *PerftCache {
	return &PerftCache{
		table:       make(map[uint64][]Entry),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the node count stored for b at depth.
func (c *PerftCache) Lookup(b *chess.Board, depth int) (uint64, bool) {
	key := Key(b)
	entries, ok := c.table[key]
	if !ok {
		return 0, false
	}
	check := checkKey(b)
	for _, e := range entries {
		if e.Check == check && e.Depth == depth {
			c.hits++
			return e.Nodes, true
		}
	}
	return 0, false
}

// Store records the node count for b at depth. Once the cache is full new
// entries are dropped.
func (c *PerftCache) Store(b *chess.Board, depth int, nodes uint64) {
	if c.IsFull() {
		return
	}
	key := Key(b)
	check := checkKey(b)
	for _, e := range c.table[key] {
		if e.Check == check && e.Depth == depth {
			return
		}
	}
	c.table[key] = append(c.table[key], Entry{Key: key, Check: check, Depth: depth, Nodes: nodes})
	c.size++
}

// Len returns the number of stored entries.
func (c *PerftCache) Len() int {
	return c.size
}

// Hits returns the number of successful lookups.
func (c *PerftCache) Hits() int {
	return c.hits
}

// IsFull returns true if the cache has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (c *PerftCache) IsFull() bool {
	return c.maxCapacity > 0 && c.size >= c.maxCapacity
}

// Reset clears the cache.
func (c *PerftCache) Reset() {
	c.table = make(map[uint64][]Entry)
	c.size = 0
	c.hits = 0
}

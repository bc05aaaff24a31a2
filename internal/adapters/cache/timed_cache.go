package cache

import (
	"sync"
	"time"
)

type timedEntry[V any] struct {
	value    V
	storedAt time.Time
}

// TimedCache is an in-memory key/value store with a fixed per-instance TTL.
// Entries are purged lazily: Get deletes an entry it finds expired. Entries
// are only ever replaced or deleted, never updated in place, so a racy read
// can at worst cause a redundant upstream fetch.
//
// An optional entry limit bounds memory; when full, Set evicts the oldest
// entry (limit <= 0 means unbounded).
type TimedCache[V any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	limit   int
	entries map[string]timedEntry[V]

	now func() time.Time // test hook
}

func NewTimedCache[V any](ttl time.Duration, limit int) *TimedCache[V] {
	return &TimedCache[V]{
		ttl:     ttl,
		limit:   limit,
		entries: make(map[string]timedEntry[V]),
		now:     time.Now,
	}
}

// Get returns the value for key if it is still within its TTL window.
// An expired entry is deleted on the spot.
func (c *TimedCache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}

	if c.now().Sub(e.storedAt) >= c.ttl {
		delete(c.entries, key)
		var zero V
		return zero, false
	}

	return e.value, true
}

func (c *TimedCache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && c.limit > 0 && len(c.entries) >= c.limit {
		c.evictOldestLocked()
	}

	c.entries[key] = timedEntry[V]{value: value, storedAt: c.now()}
}

func (c *TimedCache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *TimedCache[V]) evictOldestLocked() {
	var oldestKey string
	var oldestAt time.Time
	first := true

	for k, e := range c.entries {
		if first || e.storedAt.Before(oldestAt) {
			oldestKey, oldestAt = k, e.storedAt
			first = false
		}
	}

	if !first {
		delete(c.entries, oldestKey)
	}
}

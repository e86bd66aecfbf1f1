// Package cache holds the small in-process TTL cache hot read paths
// sit behind. Callers depend on the Cache interface; TTLCache is the
// real store and NoopCache turns caching off.
package cache

import (
	"sync"
	"time"
)

// Cache is the lookup contract cache consumers program against.
type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	Set(key K, value V, ttl time.Duration)
	Delete(key K)
}

var (
	_ Cache[string, int] = (*TTLCache[string, int])(nil)
	_ Cache[string, int] = NoopCache[string, int]{}
)

type item[V any] struct {
	value    V
	deadline time.Time
}

// TTLCache is an in-memory map with per-entry deadlines. Expired
// entries are evicted lazily on read.
type TTLCache[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]item[V]
}

func NewTTLCache[K comparable, V any]() *TTLCache[K, V] {
	return &TTLCache[K, V]{items: map[K]item[V]{}}
}

// Get returns the live value for key. An entry past its deadline is
// dropped and reported as a miss.
func (c *TTLCache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	entry, ok := c.items[key]
	c.mu.RUnlock()

	var zero V
	if !ok {
		return zero, false
	}
	if !entry.deadline.IsZero() && !time.Now().Before(entry.deadline) {
		c.Delete(key)
		return zero, false
	}
	return entry.value, true
}

// Set stores value under key. A non-positive ttl stores the entry
// without a deadline.
func (c *TTLCache[K, V]) Set(key K, value V, ttl time.Duration) {
	entry := item[V]{value: value}
	if ttl > 0 {
		entry.deadline = time.Now().Add(ttl)
	}
	c.mu.Lock()
	c.items[key] = entry
	c.mu.Unlock()
}

// Delete drops the entry for key, expired or not.
func (c *TTLCache[K, V]) Delete(key K) {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
}

// NoopCache misses every read and discards every write. Tests and
// cache-disabled paths use it in place of a TTLCache.
type NoopCache[K comparable, V any] struct{}

func (NoopCache[K, V]) Get(key K) (V, bool) {
	var zero V
	return zero, false
}

func (NoopCache[K, V]) Set(key K, value V, ttl time.Duration) {}

func (NoopCache[K, V]) Delete(key K) {}

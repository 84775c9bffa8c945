package cache

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"gocache/internal/cache/policy"
	"gocache/internal/cache/storage"
)

// Config controls cache capacity and logging.
//
// Capacity must be at least 1. A nil Logger discards all output.
type Config struct {
	Capacity int
	Logger   logrus.FieldLogger
}

// Stats are observational counters; they play no part in eviction.
type Stats struct {
	Hits      uint64 `json:"hits"`
	Misses    uint64 `json:"misses"`
	Evictions uint64 `json:"evictions"`
}

// Cache composes one Storage and one EvictionPolicy and keeps their key
// sets identical.
//
// Storage and policy never talk to each other; every change goes through
// Cache under mu, so a victim chosen by the policy is always removed from
// storage before another caller can observe either structure.
type Cache[K comparable, V any] struct {
	mu sync.Mutex

	storage storage.Storage[K, V]
	policy  policy.EvictionPolicy[K]
	log     logrus.FieldLogger
	stats   Stats
}

// ErrInvalidCapacity is returned by New when Capacity is below 1.
var ErrInvalidCapacity = errors.New("cache: capacity must be at least 1")

// New builds the default cache: a HashMap storage with an LRU policy.
func New[K comparable, V any](cfg Config) (*Cache[K, V], error) {
	if cfg.Capacity < 1 {
		return nil, fmt.Errorf("new cache with capacity %d: %w", cfg.Capacity, ErrInvalidCapacity)
	}
	return Compose[K, V](storage.NewHashMap[K, V](cfg.Capacity), policy.NewLRU[K](), cfg.Logger), nil
}

// Compose builds a cache from caller-supplied parts. s and p must start
// empty and must not be used by anything else afterwards.
func Compose[K comparable, V any](s storage.Storage[K, V], p policy.EvictionPolicy[K], log logrus.FieldLogger) *Cache[K, V] {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Cache[K, V]{
		storage: s,
		policy:  p,
		log:     log,
	}
}

// Put writes key, evicting one entry if storage is full.
//
// Put panics if key is a nil interface value, before anything is changed.
// It also panics if storage and policy disagree about what is stored; that
// state means the cache is corrupt.
//
// Complexity: O(1), at most one eviction and one retry.
func (c *Cache[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if any(key) == nil {
		panic("cache: put with nil key")
	}

	err := c.storage.Add(key, value)
	if errors.Is(err, storage.ErrStorageFull) {
		c.evictLocked()
		// One eviction frees exactly one slot.
		err = c.storage.Add(key, value)
		if errors.Is(err, storage.ErrStorageFull) {
			panic(fmt.Sprintf("cache: storage still full after eviction (len=%d capacity=%d)",
				c.storage.Len(), c.storage.Capacity()))
		}
	}
	if err != nil {
		panic(fmt.Sprintf("cache: put %v: %v", key, err))
	}
	c.policy.RecordUse(key)
}

// Get reads key. A miss returns the zero value and false and changes
// nothing except the miss counter.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, err := c.storage.Get(key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			panic(fmt.Sprintf("cache: get %v: %v", key, err))
		}
		c.stats.Misses++
		c.log.WithField("key", key).Debug("cache miss")
		var zero V
		return zero, false
	}

	c.stats.Hits++
	c.policy.RecordUse(key)
	return v, true
}

// Delete removes key from storage and from the policy. It reports whether
// key was present.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.storage.Remove(key); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false
		}
		panic(fmt.Sprintf("cache: delete %v: %v", key, err))
	}
	c.policy.Forget(key)
	return true
}

// Keys returns the stored keys in eviction order, next victim first.
// Listing keys does not count as a use.
func (c *Cache[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.policy.Keys()
}

// Search returns the keys whose value satisfies match, in eviction order.
// Matching keys are not marked as used.
//
// Concurrency note: entries are snapshotted under the lock and match runs
// after it is released, so match may call back into the cache. The result
// reflects the cache as of the snapshot.
func (c *Cache[K, V]) Search(match func(V) bool) []K {
	snap := c.snapshot()

	var out []K
	for _, e := range snap {
		if match(e.value) {
			out = append(out, e.key)
		}
	}
	return out
}

type pair[K comparable, V any] struct {
	key   K
	value V
}

// snapshot copies the stored entries in eviction order.
func (c *Cache[K, V]) snapshot() []pair[K, V] {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := c.policy.Keys()
	out := make([]pair[K, V], 0, len(keys))
	for _, k := range keys {
		v, err := c.storage.Get(k)
		if err != nil {
			panic(fmt.Sprintf("cache: tracked key %v missing from storage: %v", k, err))
		}
		out = append(out, pair[K, V]{key: k, value: v})
	}
	return out
}

// Len returns the number of stored entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.storage.Len()
}

// Capacity returns the fixed maximum number of entries.
func (c *Cache[K, V]) Capacity() int { return c.storage.Capacity() }

// Stats returns a snapshot of the counters.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

func (c *Cache[K, V]) evictLocked() {
	victim, ok := c.policy.EvictOne()
	if !ok {
		panic(fmt.Sprintf("cache: storage full (len=%d) but policy tracks no keys", c.storage.Len()))
	}
	if err := c.storage.Remove(victim); err != nil {
		panic(fmt.Sprintf("cache: evicted key %v not in storage: %v", victim, err))
	}
	c.stats.Evictions++
	c.log.WithFields(logrus.Fields{
		"key":      victim,
		"capacity": c.storage.Capacity(),
	}).Debug("evicted least recently used key")
}

package cache

import (
	"container/list"
	"fmt"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/singleflight"
)

// Policy decides what happens when the cache is full.
type Policy string

const (
	// PolicyLRU evicts the least recently used entry.
	PolicyLRU Policy = "lru"
	// PolicyFreeze stops inserting once full and never evicts.
	PolicyFreeze Policy = "freeze"
)

func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case PolicyLRU, PolicyFreeze:
		return p, nil
	default:
		return "", fmt.Errorf("unknown cache policy %q (want lru or freeze)", s)
	}
}

// Stats is a point-in-time snapshot of cache counters.
type Stats struct {
	Capacity  int
	Len       int
	Hits      uint64
	Misses    uint64
	Evictions uint64
	// Rejected counts inserts refused by a full freeze-policy cache.
	Rejected uint64
}

type entry[V any] struct {
	key   string
	value V
}

// Cache is a capacity-bounded map from a text key to a computed value.
// Keys are hashed with xxhash; the original key is kept to rule out
// collisions. Concurrent misses on the same key share one computation.
type Cache[V any] struct {
	mu       sync.Mutex
	capacity int
	policy   Policy
	ll       *list.List
	items    map[uint64]*list.Element
	group    singleflight.Group

	hits, misses, evictions, rejected uint64
}

// New returns an empty cache. Capacity below one is treated as one.
func New[V any](capacity int, policy Policy) *Cache[V] {
	if capacity < 1 {
		capacity = 1
	}
	if policy == "" {
		policy = PolicyLRU
	}
	return &Cache[V]{
		capacity: capacity,
		policy:   policy,
		ll:       list.New(),
		items:    make(map[uint64]*list.Element, capacity),
	}
}

func hashKey(key string) uint64 { return xxhash.Sum64String(key) }

// Get returns the cached value and records a hit or miss.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.lookup(key)
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return v, ok
}

// lookup must be called with mu held.
func (c *Cache[V]) lookup(key string) (V, bool) {
	el, ok := c.items[hashKey(key)]
	if !ok || el.Value.(*entry[V]).key != key {
		var zero V
		return zero, false
	}
	if c.policy == PolicyLRU {
		c.ll.MoveToFront(el)
	}
	return el.Value.(*entry[V]).value, true
}

// Add stores value under key. It reports false when a full freeze-policy
// cache refused the insert.
func (c *Cache[V]) Add(key string, value V) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	h := hashKey(key)
	if el, ok := c.items[h]; ok {
		// Same key, or a hash collision: the newer key takes the slot.
		el.Value = &entry[V]{key: key, value: value}
		c.ll.MoveToFront(el)
		return true
	}

	if c.ll.Len() >= c.capacity {
		if c.policy == PolicyFreeze {
			c.rejected++
			return false
		}
		oldest := c.ll.Back()
		c.ll.Remove(oldest)
		delete(c.items, hashKey(oldest.Value.(*entry[V]).key))
		c.evictions++
	}

	c.items[h] = c.ll.PushFront(&entry[V]{key: key, value: value})
	return true
}

// GetOrCompute returns the cached value for key, or runs fn once for all
// concurrent callers missing on the same key and caches its result.
// hit reports whether the value came from the cache without waiting on fn.
// Errors from fn are returned and never cached.
func (c *Cache[V]) GetOrCompute(key string, fn func() (V, error)) (value V, hit bool, err error) {
	if v, ok := c.Get(key); ok {
		return v, true, nil
	}

	res, err, _ := c.group.Do(key, func() (interface{}, error) {
		c.mu.Lock()
		v, ok := c.lookup(key)
		c.mu.Unlock()
		if ok {
			return v, nil
		}
		v, err := fn()
		if err != nil {
			return nil, err
		}
		c.Add(key, v)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, false, err
	}
	v, _ := res.(V)
	return v, false, nil
}

func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

func (c *Cache[V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Capacity:  c.capacity,
		Len:       c.ll.Len(),
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		Rejected:  c.rejected,
	}
}

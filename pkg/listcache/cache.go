package listcache

import (
	"container/list"
	"sync"
	"time"
)

// Option configures a Cache at construction time.
type Option[V any] func(*Cache[V])

// WithNowFunc replaces the clock used for expiry decisions. Tests use this to
// advance time deterministically.
func WithNowFunc[V any](now func() time.Time) Option[V] {
	return func(c *Cache[V]) {
		c.now = now
	}
}

// WithMaxEntries bounds the number of live entries; once the bound is reached
// a Put of a new key evicts the least recently used one. n <= 0 means
// unbounded, which matches the pagination parameter space being trusted.
func WithMaxEntries[V any](n int) Option[V] {
	return func(c *Cache[V]) {
		c.maxEntries = n
	}
}

// entry keeps the key alongside the value because eviction starts from list
// elements, not from map lookups.
type entry[V any] struct {
	key       Key
	value     V
	expiresAt time.Time
}

// Cache memoizes values per key for a fixed TTL. Expiry is checked lazily on
// Get; there is no background reaper. A single mutex guards the map and the
// recency list, which keeps Get, Put and Clear atomic relative to each other.
type Cache[V any] struct {
	mu         sync.Mutex
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
	items      map[Key]*list.Element
	lru        *list.List // Front = most recently used
}

// New creates a Cache whose entries live for ttl after each Put.
func New[V any](ttl time.Duration, opts ...Option[V]) *Cache[V] {
	c := &Cache[V]{
		ttl:   ttl,
		now:   time.Now,
		items: make(map[Key]*list.Element),
		lru:   list.New(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get returns the value for key iff an entry exists and has not expired.
// A found-but-expired entry is a miss and is removed on the spot.
func (c *Cache[V]) Get(key Key) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V

	el, ok := c.items[key]
	if !ok {
		return zero, false
	}

	ent := el.Value.(*entry[V])
	if !ent.expiresAt.After(c.now()) {
		c.removeElement(el)
		return zero, false
	}

	c.lru.MoveToFront(el)

	return ent.value, true
}

// Put inserts or overwrites the entry for key with a fresh expiry. It never
// fails; last write wins under concurrent use.
func (c *Cache[V]) Put(key Key, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(c.ttl)

	if el, ok := c.items[key]; ok {
		ent := el.Value.(*entry[V])
		ent.value = value
		ent.expiresAt = expiresAt
		c.lru.MoveToFront(el)
		return
	}

	if c.maxEntries > 0 && c.lru.Len() >= c.maxEntries {
		if back := c.lru.Back(); back != nil {
			c.removeElement(back)
		}
	}

	c.items[key] = c.lru.PushFront(&entry[V]{key: key, value: value, expiresAt: expiresAt})
}

// Clear removes every entry. Mutating operations call this because any write
// can change the total for every pagination window.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[Key]*list.Element)
	c.lru.Init()
}

// Len returns the number of entries currently held, expired ones included.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items)
}

func (c *Cache[V]) removeElement(el *list.Element) {
	ent := el.Value.(*entry[V])
	delete(c.items, ent.key)
	c.lru.Remove(el)
}

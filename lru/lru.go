// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package lru provides a small construct-on-miss LRU cache.
//
// The cache differs from most LRU implementations in that lookup and
// construction are a single operation: Get takes a constructor and runs it
// when the key is absent, so callers never race a separate has/insert pair.
// All operations are O(1) and guarded by a single mutex.
package lru

import (
	"container/list"
	"sync"
)

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Cache is a fixed-capacity LRU cache with construct-on-miss lookup.
// The zero value is not usable; call New.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	order   *list.List // front is most recent
	index   map[K]*list.Element
	maximum int
}

// New creates a cache holding at most maximum entries.
// Panics if maximum is not positive.
func New[K comparable, V any](maximum int) *Cache[K, V] {
	if maximum < 1 {
		panic("lru: maximum must be positive")
	}
	return &Cache[K, V]{
		order:   list.New(),
		index:   make(map[K]*list.Element, maximum),
		maximum: maximum,
	}
}

// Get returns the cached value for key, constructing and inserting it on a
// miss. When the cache is full the least recently used entry is evicted to
// make room. A hit marks the entry most recently used.
//
// construct runs with the cache locked; it must not call back into the
// cache.
func (c *Cache[K, V]) Get(key K, construct func(K) V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.index[key]; ok {
		c.order.MoveToFront(el)
		return el.Value.(*entry[K, V]).value
	}

	v := construct(key)
	if c.order.Len() == c.maximum {
		c.evict()
	}
	c.index[key] = c.order.PushFront(&entry[K, V]{key: key, value: v})
	return v
}

// Peek returns the cached value for key without changing recency and
// without constructing. The second result reports whether the key was
// present.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.index[key]; ok {
		return el.Value.(*entry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Cap returns the maximum number of entries.
func (c *Cache[K, V]) Cap() int {
	return c.maximum
}

// evict drops the least recently used entry. Caller holds the lock.
func (c *Cache[K, V]) evict() {
	el := c.order.Back()
	if el == nil {
		return
	}
	delete(c.index, el.Value.(*entry[K, V]).key)
	c.order.Remove(el)
}

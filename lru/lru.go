// Package lru provides a fixed-capacity key/value cache that evicts the
// least recently used entry when full. It is a standalone utility; the ssml
// package does not depend on it, but callers can use it to memoize parse or
// render results keyed by input.
package lru

import (
	"fmt"
	"sync"
)

// entry is a node in the intrusive recency list.
type entry[K comparable, V any] struct {
	key        K
	value      V
	prev, next *entry[K, V]
}

// Cache is a capacity-bounded key/value store with O(1) Get, Has and Set.
// Every access moves the touched entry to the front of the recency order;
// inserting into a full cache evicts the entry at the back. A Cache is safe
// for concurrent use.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	items    map[K]*entry[K, V]
	head     *entry[K, V] // sentinel; head.next is most recent
	tail     *entry[K, V] // sentinel; tail.prev is least recent
}

// New returns a cache holding at most capacity entries.
//
// The capacity must be a positive integer.
func New[K comparable, V any](capacity int) (*Cache[K, V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("lru: capacity must be a positive integer")
	}
	c := &Cache[K, V]{
		capacity: capacity,
		items:    make(map[K]*entry[K, V], capacity),
		head:     &entry[K, V]{},
		tail:     &entry[K, V]{},
	}
	c.head.next = c.tail
	c.tail.prev = c.head
	return c, nil
}

func (c *Cache[K, V]) unlink(e *entry[K, V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
}

func (c *Cache[K, V]) pushFront(e *entry[K, V]) {
	e.next = c.head.next
	e.prev = c.head
	c.head.next.prev = e
	c.head.next = e
}

// Has reports whether key is present, refreshing its recency if so.
func (c *Cache[K, V]) Has(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.items[key]
	if ok {
		c.unlink(e)
		c.pushFront(e)
	}
	return ok
}

// Get returns the value stored for key, refreshing its recency when found.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.unlink(e)
	c.pushFront(e)
	return e.value, true
}

// Set inserts or updates the value for key. Both paths make the entry the
// most recent; inserting into a full cache first evicts the least recently
// used entry.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.items[key]; ok {
		e.value = value
		c.unlink(e)
		c.pushFront(e)
		return
	}
	if len(c.items) >= c.capacity {
		lru := c.tail.prev
		c.unlink(lru)
		delete(c.items, lru.key)
	}
	e := &entry[K, V]{key: key, value: value}
	c.items[key] = e
	c.pushFront(e)
}

// Len returns the number of entries currently stored.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Cap returns the configured capacity.
func (c *Cache[K, V]) Cap() int { return c.capacity }

package preview

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"wallpick/internal/logging/events"
)

// DefaultCapacity bounds the cache when no capacity is configured.
const DefaultCapacity = 50

// Cache is a bounded least-recently-used frame cache. Both hits and inserts
// mark an entry most-recently-used; inserting past capacity evicts the least
// recently used entry and releases the cache's reference to it.
type Cache struct {
	lru      *lru.Cache[string, *Frame]
	capacity int
}

// NewCache builds a cache holding at most capacity frames.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &Cache{capacity: capacity}
	c.lru, _ = lru.NewWithEvict(capacity, func(path string, f *Frame) {
		events.Cache.Evict(path)
		f.Release()
	})
	return c
}

// Capacity returns the configured maximum entry count.
func (c *Cache) Capacity() int {
	return c.capacity
}

// Len returns the current entry count.
func (c *Cache) Len() int {
	return c.lru.Len()
}

// Get returns the cached frame for the identity, marking it recently used.
func (c *Cache) Get(path string) (*Frame, bool) {
	f, ok := c.lru.Get(path)
	if ok {
		events.Cache.Hit(path)
	} else {
		events.Cache.Miss(path)
	}
	return f, ok
}

// Contains reports membership without disturbing recency order.
func (c *Cache) Contains(path string) bool {
	return c.lru.Contains(path)
}

// Add inserts a decoded frame, taking over the caller's reference. When the
// identity is already cached the existing entry wins and the incoming frame
// is released; duplicate in-flight decodes collapse to one entry that way.
func (c *Cache) Add(f *Frame) {
	if f == nil {
		return
	}
	if c.lru.Contains(f.Path()) {
		f.Release()
		return
	}
	c.lru.Add(f.Path(), f)
}

// Rename moves a cached entry from one identity to another without touching
// the decoded pixels. It reports whether an entry was moved.
func (c *Cache) Rename(oldPath, newPath string) bool {
	f, ok := c.lru.Peek(oldPath)
	if !ok {
		return false
	}
	f.Retain() // hold across the remove-triggered release
	c.lru.Remove(oldPath)
	f.setPath(newPath)
	c.lru.Add(newPath, f)
	return true
}

// Purge releases every cached frame. Called once when the session ends.
func (c *Cache) Purge() {
	c.lru.Purge()
}

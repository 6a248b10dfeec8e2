package text

import (
	"container/list"
	"sync"
)

// cacheKey identifies a layout by content, not identity, so equal texts
// share entries regardless of where the string came from
type cacheKey struct {
	text  string
	cols  int
	align Align
	wrap  Wrap
}

type cacheEntry struct {
	key    cacheKey
	layout Layout
}

// Cache memoizes layout results with bounded LRU eviction. Layouts are
// pure functions of their inputs, so cached and fresh results are
// indistinguishable. A nil *Cache is valid and computes every layout
type Cache struct {
	mu       sync.Mutex
	capacity int
	entries  map[cacheKey]*list.Element
	order    *list.List // front = most recently used
}

// NewCache returns a cache holding up to capacity layouts
func NewCache(capacity int) *Cache {
	if capacity < 1 {
		capacity = 1
	}
	return &Cache{
		capacity: capacity,
		entries:  make(map[cacheKey]*list.Element, capacity),
		order:    list.New(),
	}
}

// Layout returns the memoized layout for the inputs, computing and
// storing it on a miss
func (c *Cache) Layout(s string, cols int, align Align, wrap Wrap) Layout {
	if c == nil {
		return LayoutText(s, cols, align, wrap)
	}

	key := cacheKey{text: s, cols: cols, align: align, wrap: wrap}

	c.mu.Lock()
	if el, ok := c.entries[key]; ok {
		c.order.MoveToFront(el)
		l := el.Value.(*cacheEntry).layout
		c.mu.Unlock()
		return l
	}
	c.mu.Unlock()

	l := LayoutText(s, cols, align, wrap)

	c.mu.Lock()
	defer c.mu.Unlock()
	// Double-check after recompute; a racing caller may have stored it
	if el, ok := c.entries[key]; ok {
		c.order.MoveToFront(el)
		return el.Value.(*cacheEntry).layout
	}
	el := c.order.PushFront(&cacheEntry{key: key, layout: l})
	c.entries[key] = el
	for c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).key)
	}
	return l
}

// Len returns the number of cached layouts
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

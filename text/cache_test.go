package text

import (
	"fmt"
	"reflect"
	"sync"
	"testing"
)

func TestCacheReturnsIdenticalLayouts(t *testing.T) {
	c := NewCache(8)
	fresh := LayoutText("hello world", 5, AlignLeft, WrapSpace)

	first := c.Layout("hello world", 5, AlignLeft, WrapSpace)
	second := c.Layout("hello world", 5, AlignLeft, WrapSpace)
	if !reflect.DeepEqual(first, fresh) {
		t.Errorf("cached layout differs from a fresh one")
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated lookups differ")
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestCacheKeysOnAllInputs(t *testing.T) {
	c := NewCache(16)
	c.Layout("abc", 2, AlignLeft, WrapAny)
	c.Layout("abc", 3, AlignLeft, WrapAny)
	c.Layout("abc", 2, AlignRight, WrapAny)
	c.Layout("abc", 2, AlignLeft, WrapClip)
	if c.Len() != 4 {
		t.Errorf("Len = %d, want 4 distinct entries", c.Len())
	}
}

func TestCacheEvictsOldest(t *testing.T) {
	c := NewCache(2)
	c.Layout("one", 10, AlignLeft, WrapAny)
	c.Layout("two", 10, AlignLeft, WrapAny)
	c.Layout("one", 10, AlignLeft, WrapAny) // refresh "one"
	c.Layout("three", 10, AlignLeft, WrapAny)

	if c.Len() != 2 {
		t.Fatalf("Len = %d, want capacity 2", c.Len())
	}
	// "two" was the least recently used; re-adding it must not evict "one"
	// by count alone, only by order: filling again keeps the cache bounded
	c.Layout("two", 10, AlignLeft, WrapAny)
	if c.Len() != 2 {
		t.Errorf("Len = %d after refill, want 2", c.Len())
	}
}

func TestCacheMinimumCapacity(t *testing.T) {
	c := NewCache(0)
	c.Layout("a", 5, AlignLeft, WrapAny)
	c.Layout("b", 5, AlignLeft, WrapAny)
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestCacheNilComputes(t *testing.T) {
	var c *Cache
	l := c.Layout("hello", 3, AlignLeft, WrapAny)
	if !reflect.DeepEqual(l, LayoutText("hello", 3, AlignLeft, WrapAny)) {
		t.Errorf("nil cache layout differs from direct computation")
	}
	if c.Len() != 0 {
		t.Errorf("nil cache Len = %d, want 0", c.Len())
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := NewCache(32)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s := fmt.Sprintf("text %d", j%10)
				l := c.Layout(s, 4, AlignLeft, WrapSpace)
				if l.Cols != 4 {
					t.Errorf("Cols = %d, want 4", l.Cols)
					return
				}
			}
		}(i)
	}
	wg.Wait()
	if c.Len() > 32 {
		t.Errorf("Len = %d exceeds capacity", c.Len())
	}
}

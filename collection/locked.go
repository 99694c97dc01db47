package collection

import "sync"

// Locked gives one collection to one goroutine at a time.
type Locked[K comparable, V any] struct {
	mu sync.Mutex
	c  *Collection[K, V]
}

func NewLocked[K comparable, V any](c *Collection[K, V]) *Locked[K, V] {
	return &Locked[K, V]{c: c}
}

// Do runs fn with exclusive access to the collection. fn must not keep the
// collection after it returns.
func (l *Locked[K, V]) Do(fn func(c *Collection[K, V])) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.c)
}

func (l *Locked[K, V]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.c.Len()
}

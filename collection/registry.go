package collection

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v3"
	"golang.org/x/exp/slices"
)

// Registry holds named collections for callers that share them. Create one
// per owner and pass it around; there is no package-level registry.
type Registry[K comparable, V any] struct {
	collections *xsync.MapOf[string, *Locked[K, V]]
}

func NewRegistry[K comparable, V any]() *Registry[K, V] {
	return &Registry[K, V]{
		collections: xsync.NewMapOf[string, *Locked[K, V]](),
	}
}

func (r *Registry[K, V]) Create(name string, duplicates, ordered, nulls bool) (*Locked[K, V], error) {
	l := NewLocked(New[K, V](duplicates, ordered, nulls))
	if _, loaded := r.collections.LoadOrStore(name, l); loaded {
		return nil, fmt.Errorf("%w: %s", ErrCollectionExisted, name)
	}
	return l, nil
}

// CreateAnonymous registers a new collection under a generated name.
func (r *Registry[K, V]) CreateAnonymous(duplicates, ordered, nulls bool) (string, *Locked[K, V]) {
	name := uuid.New().String()
	l := NewLocked(New[K, V](duplicates, ordered, nulls))
	r.collections.Store(name, l)
	return name, l
}

// Store registers c under name, replacing any collection already there.
func (r *Registry[K, V]) Store(name string, c *Collection[K, V]) *Locked[K, V] {
	l := NewLocked(c)
	r.collections.Store(name, l)
	return l
}

func (r *Registry[K, V]) Get(name string) (*Locked[K, V], error) {
	l, ok := r.collections.Load(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCollectionNotExisted, name)
	}
	return l, nil
}

func (r *Registry[K, V]) Drop(name string) error {
	if _, ok := r.collections.LoadAndDelete(name); !ok {
		return fmt.Errorf("%w: %s", ErrCollectionNotExisted, name)
	}
	return nil
}

func (r *Registry[K, V]) Names() []string {
	names := make([]string, 0, r.collections.Size())
	r.collections.Range(func(name string, _ *Locked[K, V]) bool {
		names = append(names, name)
		return true
	})
	slices.Sort(names)
	return names
}

func (r *Registry[K, V]) Size() int {
	return r.collections.Size()
}

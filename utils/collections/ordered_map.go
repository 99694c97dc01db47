package collections

import (
	"golang.org/x/exp/slices"
)

type orderedMap[K comparable, V any] struct {
	keys    []K
	entries map[K]V
}

func NewOrderedMap[K comparable, V any]() OrderedMap[K, V] {
	return &orderedMap[K, V]{
		keys:    make([]K, 0),
		entries: make(map[K]V),
	}
}

func (m *orderedMap[K, V]) Contains(k K) bool {
	if _, ok := m.entries[k]; ok {
		return true
	}
	return false
}

func (m *orderedMap[K, V]) Put(k K, v V, forced bool) error {
	if m.Contains(k) {
		if !forced {
			return ErrValueExisted
		}
		m.entries[k] = v
		return nil
	}
	m.keys = append(m.keys, k)
	m.entries[k] = v
	return nil
}

func (m *orderedMap[K, V]) Insert(i int, k K, v V) error {
	if m.Contains(k) {
		return ErrValueExisted
	}
	if i < 0 || i > len(m.keys) {
		return ErrIndexOutOfRange
	}
	m.keys = slices.Insert(m.keys, i, k)
	m.entries[k] = v
	return nil
}

func (m *orderedMap[K, V]) Get(k K) (v V, err error) {
	if !m.Contains(k) {
		return v, ErrValueNotExisted
	}
	return m.entries[k], nil
}

func (m *orderedMap[K, V]) Delete(k K) error {
	if !m.Contains(k) {
		return ErrValueNotExisted
	}
	i := slices.Index(m.keys, k)
	m.keys = slices.Delete(m.keys, i, i+1)
	delete(m.entries, k)
	return nil
}

func (m *orderedMap[K, V]) Size() int {
	return len(m.keys)
}

// IndexOf returns the position of k, or -1.
func (m *orderedMap[K, V]) IndexOf(k K) int {
	if !m.Contains(k) {
		return -1
	}
	return slices.Index(m.keys, k)
}

func (m *orderedMap[K, V]) KeyAt(i int) (k K, err error) {
	if i < 0 || i >= len(m.keys) {
		return k, ErrIndexOutOfRange
	}
	return m.keys[i], nil
}

func (m *orderedMap[K, V]) Keys() []K {
	return slices.Clone(m.keys)
}

// Reorder replaces the key order. keys must hold every stored key exactly once.
func (m *orderedMap[K, V]) Reorder(keys []K) error {
	if len(keys) != len(m.keys) {
		return ErrNotPermutation
	}
	seen := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		if _, dup := seen[k]; dup || !m.Contains(k) {
			return ErrNotPermutation
		}
		seen[k] = struct{}{}
	}
	m.keys = slices.Clone(keys)
	return nil
}

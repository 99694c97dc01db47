package collection

import (
	"golang.org/x/exp/rand"

	"github.com/tuannh982/sparsecoll/utils/math"
)

// Reverse, Rotate and Shuffle only move keys; values, order indexes and Len
// stay as they are.

func (c *Collection[K, V]) Reverse() {
	keys := c.items.Keys()
	for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
		keys[i], keys[j] = keys[j], keys[i]
	}
	_ = c.items.Reorder(keys)
}

// Rotate moves the last n keys to the front. A negative n rotates the other
// way.
func (c *Collection[K, V]) Rotate(n int) {
	size := c.items.Size()
	if size == 0 {
		return
	}
	shift := math.Mod(n, size)
	if shift == 0 {
		return
	}
	keys := c.items.Keys()
	rotated := append(keys[size-shift:], keys[:size-shift]...)
	_ = c.items.Reorder(rotated)
}

// Shuffle permutes the keys using rng, or the package source when rng is nil.
func (c *Collection[K, V]) Shuffle(rng *rand.Rand) {
	keys := c.items.Keys()
	swap := func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	}
	if rng == nil {
		rand.Shuffle(len(keys), swap)
	} else {
		rng.Shuffle(len(keys), swap)
	}
	_ = c.items.Reorder(keys)
}

// Splice removes up to deleteCount entries starting at key start and inserts
// pairs in their place. The removed entries are returned as a new collection.
// An absent start splices at the end. Inserted pairs whose key is already
// stored elsewhere overwrite that entry in place, as Add does.
func (c *Collection[K, V]) Splice(start K, deleteCount int, pairs ...Pair[K, V]) *Collection[K, V] {
	removed := New[K, V](false, false, true)
	keys := c.items.Keys()
	at := c.items.IndexOf(start)
	if at < 0 {
		at = len(keys)
	}
	n := math.Clamp(deleteCount, 0, len(keys)-at)
	for _, k := range keys[at : at+n] {
		s, _ := c.items.Get(k)
		if s.counted {
			c.length--
		}
		_ = c.items.Delete(k)
		removed.adopt(k, s)
	}
	for _, p := range pairs {
		if p.null && !c.nulls {
			continue
		}
		if c.items.Contains(p.Key) {
			c.Add(p)
			continue
		}
		s := slot[V]{value: p.Value, null: p.null, counted: !p.null, order: c.length}
		if s.counted {
			c.length++
		}
		_ = c.items.Insert(at, p.Key, s)
		at++
	}
	return removed
}

package collection

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/tuannh982/sparsecoll/utils/collections"
)

type slot[V any] struct {
	value   V
	null    bool
	counted bool
	order   int
}

// Collection is a keyed, insertion-ordered container whose entries may hold
// null. Len is a separate counter: Del, First and Add with a null pair leave
// it untouched, and only the rebuilding operations (Compact, Remove,
// RemoveSpan, Clear) bring it back in line with the stored non-null values.
//
// A Collection is not safe for concurrent use; see Locked.
type Collection[K comparable, V any] struct {
	duplicates bool
	ordered    bool
	nulls      bool
	length     int
	items      collections.OrderedMap[K, slot[V]]
}

// New creates an empty collection. duplicates and ordered are recorded only.
// When nulls is false, null pairs given to Add are skipped.
func New[K comparable, V any](duplicates, ordered, nulls bool) *Collection[K, V] {
	return &Collection[K, V]{
		duplicates: duplicates,
		ordered:    ordered,
		nulls:      nulls,
		items:      collections.NewOrderedMap[K, slot[V]](),
	}
}

func (c *Collection[K, V]) AllowsDuplicates() bool {
	return c.duplicates
}

func (c *Collection[K, V]) PreservesOrder() bool {
	return c.ordered
}

func (c *Collection[K, V]) AllowsNulls() bool {
	return c.nulls
}

func (c *Collection[K, V]) Len() int {
	return c.length
}

func (c *Collection[K, V]) Add(pairs ...Pair[K, V]) {
	for _, p := range pairs {
		if p.null && !c.nulls {
			continue
		}
		s, err := c.items.Get(p.Key)
		if err != nil {
			s = slot[V]{order: c.length}
		}
		if !p.null && !s.counted {
			s.counted = true
			c.length++
		}
		s.value, s.null = p.Value, p.null
		_ = c.items.Put(p.Key, s, true)
	}
}

func (c *Collection[K, V]) Put(k K, v V) {
	c.Add(P(k, v))
}

func (c *Collection[K, V]) PutNull(k K) {
	c.Add(NullPair[K, V](k))
}

func (c *Collection[K, V]) Clear() {
	c.length = 0
	c.items = collections.NewOrderedMap[K, slot[V]]()
}

func (c *Collection[K, V]) Compact() {
	c.rebuild(func(_ int, _ K, s slot[V]) bool {
		return !s.null
	})
}

// Concat adds every entry of other, nulls included, in other's order.
func (c *Collection[K, V]) Concat(other *Collection[K, V]) {
	other.Each(func(k K, v V, null bool) bool {
		if null {
			c.Add(NullPair[K, V](k))
		} else {
			c.Add(P(k, v))
		}
		return true
	})
}

// Del nulls every entry inside r. Keys are kept and Len is not adjusted.
func (c *Collection[K, V]) Del(r Range[K]) {
	r.walk(c.items.Keys(), func(k K, in bool) {
		if !in {
			return
		}
		s, _ := c.items.Get(k)
		var zero V
		s.value, s.null = zero, true
		_ = c.items.Put(k, s, true)
	})
}

// Remove drops r.Start and every entry after it. r.End is not consulted, so
// entries past the end of the range are dropped too. Use RemoveSpan to cut
// out only the entries inside r.
func (c *Collection[K, V]) Remove(r Range[K]) {
	cut := c.items.IndexOf(r.Start())
	if cut < 0 {
		return
	}
	c.rebuild(func(i int, _ K, _ slot[V]) bool {
		return i < cut
	})
}

func (c *Collection[K, V]) RemoveSpan(r Range[K]) {
	inside := make(map[K]bool)
	r.walk(c.items.Keys(), func(k K, in bool) {
		if in {
			inside[k] = true
		}
	})
	if len(inside) == 0 {
		return
	}
	c.rebuild(func(_ int, k K, _ slot[V]) bool {
		return !inside[k]
	})
}

// First returns the value under the first key. It also takes one off Len
// when the collection holds any key; nothing is removed from storage.
func (c *Collection[K, V]) First() (v V, ok bool) {
	k, err := c.items.KeyAt(0)
	if err != nil {
		return v, false
	}
	if c.length > 0 {
		c.length--
	}
	return c.Search(k)
}

func (c *Collection[K, V]) Last() (v V, ok bool) {
	k, err := c.items.KeyAt(c.items.Size() - 1)
	if err != nil {
		return v, false
	}
	return c.Search(k)
}

// Pop returns the value under the first key and then removes from that key
// onward, which leaves the collection empty.
func (c *Collection[K, V]) Pop() (v V, ok bool) {
	k, err := c.items.KeyAt(0)
	if err != nil {
		return v, false
	}
	v, ok = c.Search(k)
	c.Remove(NewRange(k, k))
	return v, ok
}

func (c *Collection[K, V]) Join(sep string) string {
	var b strings.Builder
	c.Each(func(k K, v V, null bool) bool {
		b.WriteString(fmt.Sprint(k))
		b.WriteString(sep)
		b.WriteString(render(v, null))
		b.WriteString(sep)
		return true
	})
	return b.String()
}

// Search returns the value stored under k. ok is false when k is absent or
// holds null.
func (c *Collection[K, V]) Search(k K) (v V, ok bool) {
	s, err := c.items.Get(k)
	if err != nil || s.null {
		return v, false
	}
	return s.value, true
}

func (c *Collection[K, V]) Contains(k K) bool {
	return c.items.Contains(k)
}

// IsNull reports whether k is stored with a null value.
func (c *Collection[K, V]) IsNull(k K) bool {
	s, err := c.items.Get(k)
	return err == nil && s.null
}

// Order returns the insertion index recorded for k.
func (c *Collection[K, V]) Order(k K) (int, bool) {
	s, err := c.items.Get(k)
	if err != nil {
		return 0, false
	}
	return s.order, true
}

// Slice copies the entries inside r into a new collection created with
// New(false, false, true). c is left untouched.
func (c *Collection[K, V]) Slice(r Range[K]) *Collection[K, V] {
	out := New[K, V](false, false, true)
	r.walk(c.items.Keys(), func(k K, in bool) {
		if in {
			s, _ := c.items.Get(k)
			out.adopt(k, s)
		}
	})
	return out
}

// Swap exchanges the values under a and b. When only one of them is stored,
// its value moves to the other key and the key it came from is dropped.
func (c *Collection[K, V]) Swap(a, b K) {
	sa, errA := c.items.Get(a)
	sb, errB := c.items.Get(b)
	switch {
	case errA != nil && errB != nil:
		return
	case errA != nil:
		_ = c.items.Delete(b)
		_ = c.items.Put(a, sb, true)
	case errB != nil:
		_ = c.items.Delete(a)
		_ = c.items.Put(b, sa, true)
	default:
		sa.order, sb.order = sb.order, sa.order
		_ = c.items.Put(a, sb, true)
		_ = c.items.Put(b, sa, true)
	}
}

// Unique returns a new collection holding the first entry for every distinct
// value. A nil eq compares values with reflect.DeepEqual. Null entries are
// equal to each other.
func (c *Collection[K, V]) Unique(eq func(a, b V) bool) *Collection[K, V] {
	if eq == nil {
		eq = func(a, b V) bool {
			return reflect.DeepEqual(a, b)
		}
	}
	out := New[K, V](false, false, true)
	kept := make([]slot[V], 0)
	c.eachSlot(func(k K, s slot[V]) {
		for _, u := range kept {
			if u.null == s.null && (s.null || eq(u.value, s.value)) {
				return
			}
		}
		kept = append(kept, s)
		out.adopt(k, s)
	})
	return out
}

// UniqueBy is Unique for values identified by a hash key.
func UniqueBy[K comparable, V any, R comparable](c *Collection[K, V], key func(V) R) *Collection[K, V] {
	out := New[K, V](false, false, true)
	seen := collections.NewHashSet(key)
	seenNull := false
	c.eachSlot(func(k K, s slot[V]) {
		if s.null {
			if seenNull {
				return
			}
			seenNull = true
		} else if err := seen.Add(s.value); err != nil {
			return
		}
		out.adopt(k, s)
	})
	return out
}

// Fill overwrites the value of every stored key. Len is unchanged.
func (c *Collection[K, V]) Fill(v V) {
	c.eachSlot(func(k K, s slot[V]) {
		s.value, s.null = v, false
		_ = c.items.Put(k, s, true)
	})
}

// FillNull nulls the value of every stored key. Keys and Len are unchanged.
func (c *Collection[K, V]) FillNull() {
	var zero V
	c.eachSlot(func(k K, s slot[V]) {
		s.value, s.null = zero, true
		_ = c.items.Put(k, s, true)
	})
}

func (c *Collection[K, V]) Keys() []K {
	return c.items.Keys()
}

// Each calls fn for every entry in iteration order until fn returns false.
func (c *Collection[K, V]) Each(fn func(k K, v V, null bool) bool) {
	for _, k := range c.items.Keys() {
		s, _ := c.items.Get(k)
		if !fn(k, s.value, s.null) {
			return
		}
	}
}

func (c *Collection[K, V]) String() string {
	var b strings.Builder
	c.Each(func(k K, v V, null bool) bool {
		fmt.Fprintf(&b, "\nkey is: %v, value is: %s", k, render(v, null))
		return true
	})
	return b.String()
}

func (c *Collection[K, V]) eachSlot(fn func(k K, s slot[V])) {
	for _, k := range c.items.Keys() {
		s, _ := c.items.Get(k)
		fn(k, s)
	}
}

// adopt appends a copied slot, renumbering its order and counting it when
// it holds a value.
func (c *Collection[K, V]) adopt(k K, s slot[V]) {
	s.order = c.items.Size()
	s.counted = !s.null
	if s.counted {
		c.length++
	}
	_ = c.items.Put(k, s, true)
}

// rebuild replaces storage with the entries keep accepts and recounts Len.
func (c *Collection[K, V]) rebuild(keep func(i int, k K, s slot[V]) bool) {
	old := c.items
	c.items = collections.NewOrderedMap[K, slot[V]]()
	c.length = 0
	for i, k := range old.Keys() {
		s, _ := old.Get(k)
		if keep(i, k, s) {
			c.adopt(k, s)
		}
	}
}

func render[V any](v V, null bool) string {
	if null {
		return "null"
	}
	return fmt.Sprint(v)
}

package collection

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func newStrings(kv ...string) *Collection[string, string] {
	c := New[string, string](false, false, true)
	for i := 0; i+1 < len(kv); i += 2 {
		c.Put(kv[i], kv[i+1])
	}
	return c
}

func requireKeys(t *testing.T, want []string, c *Collection[string, string]) {
	t.Helper()
	if diff := cmp.Diff(want, c.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestAddCountsUniqueKeys(t *testing.T) {
	c := New[int, string](false, false, true)
	for i := 0; i < 50; i++ {
		c.Add(P(i, fmt.Sprint("v", i)))
	}
	require.Equal(t, 50, c.Len())
	c.Add(P(3, "again"), P(7, "again"))
	require.Equal(t, 50, c.Len())
	v, ok := c.Search(3)
	require.True(t, ok)
	require.Equal(t, "again", v)
}

func TestAddNullScenario(t *testing.T) {
	c := New[string, string](false, false, true)
	c.Add(P("key1", "value1"), P("key2", "value2"))
	require.Equal(t, 2, c.Len())

	c.Add(NullPair[string, string]("key2"))
	require.Equal(t, 2, c.Len())
	_, ok := c.Search("key2")
	require.False(t, ok)
	require.True(t, c.Contains("key2"))
	require.True(t, c.IsNull("key2"))

	c.Compact()
	require.Equal(t, 1, c.Len())
	requireKeys(t, []string{"key1"}, c)
}

func TestAddNullOnNewKey(t *testing.T) {
	c := New[string, string](false, false, true)
	c.PutNull("k")
	require.Equal(t, 0, c.Len())
	require.True(t, c.Contains("k"))
	_, ok := c.Search("k")
	require.False(t, ok)

	c.Put("k", "v")
	require.Equal(t, 1, c.Len())
	c.Put("k", "w")
	require.Equal(t, 1, c.Len())
}

func TestAddNullWithoutNulls(t *testing.T) {
	c := New[string, string](false, false, false)
	require.False(t, c.AllowsNulls())
	c.Put("a", "1")
	c.PutNull("a")
	c.PutNull("b")
	require.Equal(t, 1, c.Len())
	require.False(t, c.Contains("b"))
	v, ok := c.Search("a")
	require.True(t, ok)
	require.Equal(t, "1", v)
}

func TestFlags(t *testing.T) {
	c := New[string, int](true, true, false)
	require.True(t, c.AllowsDuplicates())
	require.True(t, c.PreservesOrder())
	require.False(t, c.AllowsNulls())
}

func TestCompactIdempotent(t *testing.T) {
	c := newStrings("a", "1", "b", "2", "c", "3", "d", "4")
	c.Del(NewRange("b", "c"))
	c.Compact()
	once := c.String()
	onceLen := c.Len()
	c.Compact()
	require.Equal(t, once, c.String())
	require.Equal(t, onceLen, c.Len())
	requireKeys(t, []string{"a", "d"}, c)
	order, ok := c.Order("d")
	require.True(t, ok)
	require.Equal(t, 1, order)
}

func TestClear(t *testing.T) {
	c := newStrings("a", "1", "b", "2")
	c.Clear()
	require.Equal(t, 0, c.Len())
	for _, k := range []string{"a", "b"} {
		_, ok := c.Search(k)
		require.False(t, ok)
		require.False(t, c.Contains(k))
	}
	require.Empty(t, c.Keys())
}

func TestConcat(t *testing.T) {
	c := newStrings("key1", "value1")
	other := New[string, string](false, false, true)
	other.Add(P("key4", "value1"), NullPair[string, string]("key5"))

	c.Concat(other)
	requireKeys(t, []string{"key1", "key4", "key5"}, c)
	require.Equal(t, 2, c.Len())
	require.True(t, c.IsNull("key5"))
	requireKeys(t, []string{"key4", "key5"}, other)
	require.Equal(t, 1, other.Len())
}

func TestDel(t *testing.T) {
	c := newStrings("k1", "v1", "k2", "v2", "k3", "v3", "k4", "v4")
	c.Del(NewRange("k2", "k3"))
	require.Equal(t, 4, c.Len())
	requireKeys(t, []string{"k1", "k2", "k3", "k4"}, c)
	require.True(t, c.IsNull("k2"))
	require.True(t, c.IsNull("k3"))
	require.False(t, c.IsNull("k4"))
	c.Compact()
	require.Equal(t, 2, c.Len())
}

func TestDelEndBeforeStart(t *testing.T) {
	c := newStrings("k1", "v1", "k2", "v2", "k3", "v3", "k4", "v4")
	c.Del(NewRange("k3", "k1"))
	require.False(t, c.IsNull("k1"))
	require.False(t, c.IsNull("k2"))
	require.True(t, c.IsNull("k3"))
	require.True(t, c.IsNull("k4"))
}

func TestRemoveCutsFromStart(t *testing.T) {
	c := newStrings("k1", "v1", "k2", "v2", "k3", "v3", "k4", "v4")
	c.Remove(NewRange("k2", "k3"))
	requireKeys(t, []string{"k1"}, c)
	require.Equal(t, 1, c.Len())

	c.Remove(NewRange("missing", "k1"))
	requireKeys(t, []string{"k1"}, c)
}

func TestRemoveSpan(t *testing.T) {
	c := newStrings("k1", "v1", "k2", "v2", "k3", "v3", "k4", "v4")
	c.RemoveSpan(NewRange("k2", "k3"))
	requireKeys(t, []string{"k1", "k4"}, c)
	require.Equal(t, 2, c.Len())

	c.RemoveSpan(NewRange("missing", "k4"))
	requireKeys(t, []string{"k1", "k4"}, c)
}

func TestFirstAndLast(t *testing.T) {
	c := newStrings("k1", "v1", "k2", "v2", "k3", "v3")
	v, ok := c.First()
	require.True(t, ok)
	require.Equal(t, "v1", v)
	require.Equal(t, 2, c.Len())
	require.Len(t, c.Keys(), 3)

	v, ok = c.Last()
	require.True(t, ok)
	require.Equal(t, "v3", v)
	require.Equal(t, 2, c.Len())

	empty := New[string, string](false, false, true)
	_, ok = empty.First()
	require.False(t, ok)
	_, ok = empty.Last()
	require.False(t, ok)
	require.Equal(t, 0, empty.Len())
}

func TestPopLeavesCollectionEmpty(t *testing.T) {
	c := newStrings("k1", "v1", "k2", "v2", "k3", "v3")
	v, ok := c.Pop()
	require.True(t, ok)
	require.Equal(t, "v1", v)
	require.Equal(t, 0, c.Len())
	require.Empty(t, c.Keys())

	_, ok = c.Pop()
	require.False(t, ok)
}

func TestJoinAndString(t *testing.T) {
	c := newStrings("a", "1")
	c.PutNull("b")
	require.Equal(t, "a:1:b:null:", c.Join(":"))
	require.Equal(t, "\nkey is: a, value is: 1\nkey is: b, value is: null", c.String())
}

func TestSlice(t *testing.T) {
	c := newStrings("k1", "v1", "k2", "v2", "k3", "v3", "k4", "v4")
	s := c.Slice(NewRange("k2", "k3"))
	requireKeys(t, []string{"k2", "k3"}, s)
	require.Equal(t, 2, s.Len())
	require.False(t, s.AllowsDuplicates())
	require.False(t, s.PreservesOrder())
	require.True(t, s.AllowsNulls())

	s.Put("k2", "changed")
	v, _ := c.Search("k2")
	require.Equal(t, "v2", v)
	require.Equal(t, 4, c.Len())
}

func TestSwap(t *testing.T) {
	c := newStrings("a", "1", "b", "2")
	c.Swap("a", "b")
	va, _ := c.Search("a")
	vb, _ := c.Search("b")
	require.Equal(t, "2", va)
	require.Equal(t, "1", vb)
	order, _ := c.Order("a")
	require.Equal(t, 0, order)

	c.Swap("a", "b")
	va, _ = c.Search("a")
	vb, _ = c.Search("b")
	require.Equal(t, "1", va)
	require.Equal(t, "2", vb)
	require.Equal(t, 2, c.Len())
}

func TestSwapWithAbsentKey(t *testing.T) {
	c := newStrings("x", "1")
	c.Swap("x", "y")
	require.False(t, c.Contains("x"))
	v, ok := c.Search("y")
	require.True(t, ok)
	require.Equal(t, "1", v)

	c.Swap("x", "y")
	require.False(t, c.Contains("y"))
	v, ok = c.Search("x")
	require.True(t, ok)
	require.Equal(t, "1", v)
	require.Equal(t, 1, c.Len())

	c.Swap("p", "q")
	requireKeys(t, []string{"x"}, c)
}

func TestUnique(t *testing.T) {
	c := newStrings("k1", "v1", "k2", "v2", "k3", "v1")
	c.PutNull("k4")
	c.PutNull("k5")
	c.Put("k6", "v3")

	u := c.Unique(nil)
	requireKeys(t, []string{"k1", "k2", "k4", "k6"}, u)
	require.Equal(t, 3, u.Len())

	seen := make(map[string]bool)
	u.Each(func(_ string, v string, null bool) bool {
		if null {
			return true
		}
		require.False(t, seen[v], "duplicate value %s", v)
		seen[v] = true
		return true
	})
	require.Len(t, c.Keys(), 6)
}

func TestUniqueWithEqualFunc(t *testing.T) {
	c := newStrings("k1", "A", "k2", "a", "k3", "B")
	u := c.Unique(strings.EqualFold)
	requireKeys(t, []string{"k1", "k3"}, u)
}

func TestUniqueBy(t *testing.T) {
	c := newStrings("k1", "A", "k2", "a", "k3", "B")
	c.PutNull("k4")
	c.PutNull("k5")
	u := UniqueBy(c, strings.ToLower)
	requireKeys(t, []string{"k1", "k3", "k4"}, u)
	require.Equal(t, 2, u.Len())
}

func TestFill(t *testing.T) {
	c := newStrings("k1", "v1", "k2", "v2", "k3", "v3")
	c.Del(NewRange("k2", "k2"))
	c.Fill("fillValue")
	require.Equal(t, 3, c.Len())
	for _, k := range []string{"k1", "k2", "k3"} {
		v, ok := c.Search(k)
		require.True(t, ok)
		require.Equal(t, "fillValue", v)
	}
}

func TestFillNull(t *testing.T) {
	c := newStrings("k1", "v1", "k2", "v2", "k3", "v3")
	c.FillNull()
	require.Equal(t, 3, c.Len())
	requireKeys(t, []string{"k1", "k2", "k3"}, c)
	for _, k := range []string{"k1", "k2", "k3"} {
		_, ok := c.Search(k)
		require.False(t, ok)
		require.True(t, c.IsNull(k))
	}
	require.Equal(t, "k1:null:k2:null:k3:null:", c.Join(":"))

	c.Compact()
	require.Equal(t, 0, c.Len())
	require.Empty(t, c.Keys())
}

func TestEachStops(t *testing.T) {
	c := newStrings("a", "1", "b", "2", "c", "3")
	visited := 0
	c.Each(func(string, string, bool) bool {
		visited++
		return visited < 2
	})
	require.Equal(t, 2, visited)
}

func TestRange(t *testing.T) {
	r := NewRange(1, 5)
	require.Equal(t, 1, r.Start())
	require.Equal(t, 5, r.End())
	require.Equal(t, "[1..5]", r.String())
}

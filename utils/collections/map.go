package collections

// OrderedMap is a keyed container that remembers the position of every key.
// New keys go to the end, overwriting a key keeps its position.
type OrderedMap[K comparable, V any] interface {
	Contains(k K) bool
	Put(k K, v V, forced bool) error
	Insert(i int, k K, v V) error
	Get(k K) (V, error)
	Delete(k K) error
	Size() int
	IndexOf(k K) int
	KeyAt(i int) (K, error)
	Keys() []K
	Reorder(keys []K) error
}

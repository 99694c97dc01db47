package collection

// Pair is one key/value argument to Add. A null pair stores a logically
// absent value under its key.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
	null  bool
}

func P[K comparable, V any](k K, v V) Pair[K, V] {
	return Pair[K, V]{Key: k, Value: v}
}

func NullPair[K comparable, V any](k K) Pair[K, V] {
	return Pair[K, V]{Key: k, null: true}
}

func (p Pair[K, V]) IsNull() bool {
	return p.null
}

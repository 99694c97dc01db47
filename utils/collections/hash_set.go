package collections

// hashSet identifies values by the hash returned from hashFunc.
type hashSet[R comparable, V any] struct {
	entries  map[R]V
	hashFunc HashSetHashFunc[R, V]
}

type HashSetHashFunc[R comparable, V any] func(V) R

func NewHashSet[R comparable, V any](f HashSetHashFunc[R, V]) Set[V] {
	return &hashSet[R, V]{
		entries:  make(map[R]V),
		hashFunc: f,
	}
}

func (s *hashSet[R, V]) Contains(v V) bool {
	_, ok := s.entries[s.hashFunc(v)]
	return ok
}

func (s *hashSet[R, V]) Add(v V) error {
	if s.Contains(v) {
		return ErrValueExisted
	}
	s.entries[s.hashFunc(v)] = v
	return nil
}

func (s *hashSet[R, V]) Size() int {
	return len(s.entries)
}

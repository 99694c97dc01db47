package collection

import "fmt"

// Range is an inclusive span of keys, taken in iteration order.
type Range[K comparable] struct {
	start K
	end   K
}

func NewRange[K comparable](start, end K) Range[K] {
	return Range[K]{start: start, end: end}
}

func (r Range[K]) Start() K {
	return r.start
}

func (r Range[K]) End() K {
	return r.end
}

func (r Range[K]) String() string {
	return fmt.Sprintf("[%v..%v]", r.start, r.end)
}

// walk calls fn for every key with whether the key lies inside r. The span
// opens at start and closes after end; an end seen before start closes nothing.
func (r Range[K]) walk(keys []K, fn func(k K, in bool)) {
	inRange := false
	for _, k := range keys {
		if k == r.start {
			inRange = true
		}
		in := inRange
		if k == r.end {
			inRange = false
		}
		fn(k, in)
	}
}

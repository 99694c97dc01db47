package math

import "golang.org/x/exp/constraints"

// Mod is the remainder of dividend / divisor, shifted into [0, divisor).
func Mod[T constraints.Integer](dividend, divisor T) T {
	r := dividend % divisor
	if r < 0 {
		return r + divisor
	}
	return r
}

func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

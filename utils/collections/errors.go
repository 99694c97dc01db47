package collections

import "errors"

var (
	ErrValueExisted    = errors.New("value existed")
	ErrValueNotExisted = errors.New("value not existed")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrNotPermutation  = errors.New("keys are not a permutation of the map keys")
)

package script

import "errors"

var (
	ErrEmptyScript = errors.New("script has no steps")
	ErrUnknownOp   = errors.New("unknown op")
	ErrBadArgs     = errors.New("bad arguments")
	ErrExpectation = errors.New("expectation failed")
)

package collection

import "errors"

var (
	ErrCollectionExisted    = errors.New("collection existed")
	ErrCollectionNotExisted = errors.New("collection not existed")
)

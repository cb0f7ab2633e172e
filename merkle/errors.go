package merkle

import "errors"

var (
	ErrEmptyLeaves     = errors.New("merkle: at least one leaf is required")
	ErrIndexOutOfRange = errors.New("merkle: leaf index out of range")
)

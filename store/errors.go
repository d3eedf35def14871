package store

import "errors"

var (
	// ErrTooLarge is passed to panic if the capacity of a buffer cannot be
	// represented or allocated.
	ErrTooLarge = errors.New("store: buffer too large")
	// ErrInvalidBlockSize signals a block size which is not a positive power of two.
	ErrInvalidBlockSize = errors.New("store: invalid block size")
	// ErrLength is passed to panic if a content length exceeds the capacity.
	ErrLength = errors.New("store: length out of range")
)

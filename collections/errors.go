package collections

import (
	"errors"

	"github.com/hasbyte1/go-underbar/arr"
)

// Sentinel errors returned by collection operations.
var (
	// ErrInvalidArgument is returned when an operation receives an argument
	// outside its domain (a negative count, or a fold with nothing to seed
	// the accumulator). It is the same value as [arr.ErrInvalidArgument].
	ErrInvalidArgument = arr.ErrInvalidArgument

	// ErrEmptyCollection is returned when an operation requires at least one
	// element but the collection is empty. It is always reported together
	// with ErrInvalidArgument.
	ErrEmptyCollection = errors.New("collections: operation on empty collection")
)

package collections

import (
	"encoding/json"
	"fmt"

	"github.com/hasbyte1/go-underbar/arr"
)

// Sequence is an ordered, index-addressable wrapper around a slice of T.
// A nil *Sequence reads as an empty sequence.
//
// Methods that derive a new sequence return a fresh *Sequence and leave the
// receiver unchanged, so a Sequence can be read from several goroutines at
// once.
//
//	s := collections.New(5, 3, 8)
//	s.FirstN(2)    // → [5 3]
//	s.IndexOf(8)   // → 2
//	s.Shuffle()    // → e.g. [8 5 3]
type Sequence[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Sequence from a variadic list of items (copied).
func New[T any](items ...T) *Sequence[T] {
	return From(items)
}

// From creates a Sequence from a slice (the slice is copied).
func From[T any](items []T) *Sequence[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Sequence[T]{items: dst}
}

// Empty creates an empty Sequence of type T.
func Empty[T any]() *Sequence[T] {
	return &Sequence[T]{items: []T{}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the underlying slice.
func (s *Sequence[T]) All() []T {
	if s == nil {
		return []T{}
	}
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of items. It satisfies [Iterable].
func (s *Sequence[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Count is an alias for [Sequence.Len].
func (s *Sequence[T]) Count() int { return s.Len() }

// IsEmpty reports whether the sequence contains no items.
func (s *Sequence[T]) IsEmpty() bool { return s.Len() == 0 }

// Get returns the item at index together with a presence flag.
// Returns the zero value and false when index is out of range.
func (s *Sequence[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= s.Len() {
		return zero, false
	}
	return s.items[index], true
}

// Slice returns the items in [start, end) as a new sequence.
// Negative indices count from the end; out-of-range bounds are clamped and an
// empty sequence is returned when start is at or past end.
//
//	collections.New(1, 2, 3, 4).Slice(1, 3)  // → [2 3]
//	collections.New(1, 2, 3, 4).Slice(-2, 4) // → [3 4]
func (s *Sequence[T]) Slice(start, end int) *Sequence[T] {
	total := len(s.items)
	start, end = clampIndex(start, total), clampIndex(end, total)
	if start >= end {
		return Empty[T]()
	}
	return From(s.items[start:end])
}

func clampIndex(i, total int) int {
	if i < 0 {
		i += total
	}
	return max(0, min(i, total))
}

// ToJSON serialises the items to a JSON array.
func (s *Sequence[T]) ToJSON() ([]byte, error) {
	return json.Marshal(s.items)
}

// MarshalJSON implements [json.Marshaler].
func (s *Sequence[T]) MarshalJSON() ([]byte, error) { return s.ToJSON() }

// String returns a JSON representation of the sequence.
// It implements [fmt.Stringer].
func (s *Sequence[T]) String() string {
	b, err := s.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", s.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, index) for every item in ascending index order.
func (s *Sequence[T]) Each(fn func(T, int)) {
	if s == nil {
		return
	}
	for i, item := range s.items {
		fn(item, i)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Head & tail
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first item. Returns the zero value and false when the
// sequence is empty.
func (s *Sequence[T]) First() (T, bool) { return arr.First(s.items) }

// FirstN returns the first min(n, Len()) items as a new sequence.
// Returns [ErrInvalidArgument] when n is negative.
func (s *Sequence[T]) FirstN(n int) (*Sequence[T], error) {
	items, err := arr.FirstN(s.items, n)
	if err != nil {
		return nil, err
	}
	return &Sequence[T]{items: items}, nil
}

// Last returns the last item. Returns the zero value and false when the
// sequence is empty.
func (s *Sequence[T]) Last() (T, bool) { return arr.Last(s.items) }

// LastN returns the last min(n, Len()) items as a new sequence, in order.
// Returns [ErrInvalidArgument] when n is negative.
func (s *Sequence[T]) LastN(n int) (*Sequence[T], error) {
	items, err := arr.LastN(s.items, n)
	if err != nil {
		return nil, err
	}
	return &Sequence[T]{items: items}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Search & transformation (type-preserving)
// ─────────────────────────────────────────────────────────────────────────────

// IndexOf returns the lowest index holding a value strictly equal to target,
// or -1.
func (s *Sequence[T]) IndexOf(target T) int { return arr.IndexOf(s.items, target) }

// Filter returns a new sequence with the items for which pred returns true.
func (s *Sequence[T]) Filter(pred func(T) bool) *Sequence[T] {
	return Filter[int, T](s, pred)
}

// Reject returns a new sequence with the items for which pred returns true
// removed. It is the complement of [Sequence.Filter].
func (s *Sequence[T]) Reject(pred func(T) bool) *Sequence[T] {
	return Reject[int, T](s, pred)
}

// Shuffle returns a new sequence with the items in random order.
// See [arr.Shuffle] for the guarantee that the order actually changes.
func (s *Sequence[T]) Shuffle() *Sequence[T] {
	return &Sequence[T]{items: arr.Shuffle(s.items)}
}

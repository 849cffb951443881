package arr

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"slices"
)

// ─────────────────────────────────────────────────────────────────────────────
// Head & tail
// ─────────────────────────────────────────────────────────────────────────────

// First returns the element at index 0.
// Returns the zero value and false when items is empty.
func First[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[0], true
}

// FirstN returns a new slice holding the first min(n, len(items)) elements.
// Returns [ErrInvalidArgument] when n is negative.
func FirstN[T any](items []T, n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n must be non-negative, got %d", ErrInvalidArgument, n)
	}
	n = min(n, len(items))
	out := make([]T, n)
	copy(out, items[:n])
	return out, nil
}

// Last returns the final element.
// Returns the zero value and false when items is empty.
func Last[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[len(items)-1], true
}

// LastN returns a new slice holding the last min(n, len(items)) elements in
// their original order. An n larger than the slice yields a copy of the whole
// slice. Returns [ErrInvalidArgument] when n is negative.
func LastN[T any](items []T, n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n must be non-negative, got %d", ErrInvalidArgument, n)
	}
	n = min(n, len(items))
	out := make([]T, n)
	copy(out, items[len(items)-n:])
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching
// ─────────────────────────────────────────────────────────────────────────────

// IndexOf returns the lowest index whose element is [Identical] to target,
// or -1 when no element matches.
func IndexOf[T any](items []T, target T) int {
	for i, item := range items {
		if Identical(item, target) {
			return i
		}
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Deduplication
// ─────────────────────────────────────────────────────────────────────────────

// Uniq returns the distinct elements of items in ascending order.
// A sorted copy is deduplicated run by run; items itself is not modified.
//
//	arr.Uniq([]int{3, 1, 2, 1, 3}) // → [1 2 3]
func Uniq[T cmp.Ordered](items []T) []T {
	sorted := slices.Clone(items)
	slices.Sort(sorted)
	return dedupRuns(sorted)
}

// SortUniq is [Uniq] with the sort applied to items in place: after the call
// the caller's slice is sorted, and the returned slice holds one element per
// run of equal values.
//
//	s := []int{3, 1, 2, 1, 3}
//	u := arr.SortUniq(s) // u → [1 2 3], s → [1 1 2 3 3]
func SortUniq[T cmp.Ordered](items []T) []T {
	slices.Sort(items)
	return dedupRuns(items)
}

// UniqFunc deduplicates items of any type using cmp for both ordering and
// equality (cmp(a, b) == 0). items is not modified.
func UniqFunc[T any](items []T, cmp func(a, b T) int) []T {
	sorted := slices.Clone(items)
	slices.SortFunc(sorted, cmp)
	out := make([]T, 0, len(sorted))
	for i, item := range sorted {
		if i == 0 || cmp(item, sorted[i-1]) != 0 {
			out = append(out, item)
		}
	}
	return out
}

// dedupRuns copies one element per run of equal adjacent values.
// NaN never equals itself, so every NaN survives.
func dedupRuns[T cmp.Ordered](sorted []T) []T {
	out := make([]T, 0, len(sorted))
	for i, item := range sorted {
		if i == 0 || item != sorted[i-1] {
			out = append(out, item)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Randomisation
// ─────────────────────────────────────────────────────────────────────────────

// Shuffle returns a uniformly shuffled copy of items.
//
// Whenever items holds at least two elements that are not [Identical], the
// returned order is guaranteed to differ from the input order: a shuffle that
// reproduces the input is discarded and redrawn. Slices with fewer than two
// elements, or whose elements are all identical, are returned as a plain copy.
func Shuffle[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	if !hasDistinct(items) {
		return out
	}
	perm := make([]int, len(items))
	for i := range perm {
		perm[i] = i
	}
	for {
		rand.Shuffle(len(perm), func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })
		if !reproduces(items, perm) {
			break
		}
	}
	for i, p := range perm {
		out[i] = items[p]
	}
	return out
}

func hasDistinct[T any](items []T) bool {
	for i := 1; i < len(items); i++ {
		if !Identical(items[0], items[i]) {
			return true
		}
	}
	return false
}

// reproduces reports whether applying perm to items yields the input order.
// A position is unchanged when it keeps its own element, or receives one
// Identical to it. Comparing indices first keeps elements that are not even
// Identical to themselves from passing as a change.
func reproduces[T any](items []T, perm []int) bool {
	for i, p := range perm {
		if p != i && !Identical(items[p], items[i]) {
			return false
		}
	}
	return true
}

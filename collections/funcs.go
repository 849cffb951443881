package collections

import (
	"cmp"
	"fmt"

	"github.com/hasbyte1/go-underbar/arr"
)

// This file contains the package-level operations that accept any
// [Iterable]. Go methods cannot introduce type parameters, so operations
// that change the element type, or that must work for both sequences and
// mappings, are stand-alone functions:
//
//	names := collections.Map(users, func(u User) string { return u.Name })
//	total := collections.Reduce(prices, func(acc, p float64) float64 { return acc + p }, 0)
//
// Every operation below is routed through Iterable.Each, either directly
// or via [Reduce].

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(value, key, c) once per element of c, in iteration order.
func Each[K comparable, V any](c Iterable[K, V], fn func(V, K, Iterable[K, V])) {
	c.Each(func(v V, k K) { fn(v, k, c) })
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns the elements of c for which pred returns true, in iteration
// order. The result is always a sequence, even when c is a [Mapping].
func Filter[K comparable, V any](c Iterable[K, V], pred func(V) bool) *Sequence[V] {
	out := make([]V, 0, c.Len())
	c.Each(func(v V, _ K) {
		if pred(v) {
			out = append(out, v)
		}
	})
	return &Sequence[V]{items: out}
}

// Reject returns the elements of c for which pred returns false.
// It is the complement of [Filter].
func Reject[K comparable, V any](c Iterable[K, V], pred func(V) bool) *Sequence[V] {
	return Filter(c, func(v V) bool { return !pred(v) })
}

// FilterTruthy is [Filter] for loose tests: it keeps the elements whose test
// result is truthy according to [arr.Truthy].
func FilterTruthy[K comparable, V any](c Iterable[K, V], test func(V) any) *Sequence[V] {
	return Filter(c, func(v V) bool { return arr.Truthy(test(v)) })
}

// RejectStrict is [Reject] for loose tests. It keeps exactly the elements
// whose test result is the boolean false. Results that are merely falsy,
// such as 0, "" or nil, do not count as false: those elements are dropped
// here, just as [FilterTruthy] drops them.
//
//	isEven := func(n int) any { return n%2 == 0 }
//	collections.RejectStrict(collections.New(1, 2, 3, 4), isEven) // → [1 3]
func RejectStrict[K comparable, V any](c Iterable[K, V], test func(V) any) *Sequence[V] {
	return Filter(c, func(v V) bool {
		b, ok := test(v).(bool)
		return ok && !b
	})
}

// Uniq returns the distinct values of s in ascending order. s is not
// modified; see [arr.SortUniq] for the in-place variant.
func Uniq[T cmp.Ordered](s *Sequence[T]) *Sequence[T] {
	return &Sequence[T]{items: arr.Uniq(s.items)}
}

// Shuffle returns a shuffled copy of s. See [arr.Shuffle].
func Shuffle[T any](s *Sequence[T]) *Sequence[T] { return s.Shuffle() }

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn to every element of c and collects the results, in
// iteration order, into a new sequence.
//
//	doubled := collections.Map(collections.New(1, 2, 3),
//	    func(n int) string { return strconv.Itoa(n * 2) })
func Map[K comparable, V, R any](c Iterable[K, V], fn func(V) R) *Sequence[R] {
	out := make([]R, 0, c.Len())
	c.Each(func(v V, _ K) { out = append(out, fn(v)) })
	return &Sequence[R]{items: out}
}

// Pluck extracts item[key] from every element of c. Elements may be
// map[string]any records, other string-keyed maps, structs (by exported
// field name), *Mapping values, or anything else [arr.Get] can resolve; key
// may be a dot-separated path. A key that does not resolve yields nil.
//
//	collections.Pluck(collections.New(
//	    map[string]any{"a": 1},
//	    map[string]any{"a": 2},
//	), "a") // → [1 2]
func Pluck[K comparable, V any](c Iterable[K, V], key string) *Sequence[any] {
	return Map(c, func(v V) any { return arr.Get(v, key) })
}

// PluckFunc extracts a typed value U from every element of c.
//
//	names := collections.PluckFunc(people, func(p Person) string { return p.Name })
func PluckFunc[K comparable, V, U any](c Iterable[K, V], fn func(V) U) *Sequence[U] {
	return Map(c, fn)
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Reduce folds c into a single value. Starting from initial, every element
// (including the first) is combined with fn(accumulator, element) in
// iteration order. An empty collection yields initial.
//
//	sum := collections.Reduce(collections.New(1, 2, 3, 4),
//	    func(acc, n int) int { return acc + n }, 0) // → 10
func Reduce[K comparable, V, R any](c Iterable[K, V], fn func(R, V) R, initial R) R {
	acc := initial
	c.Each(func(v V, _ K) { acc = fn(acc, v) })
	return acc
}

// ReduceOrFail folds c without an initial value: the first element seeds the
// accumulator and folding starts from the second. Returns an error matching
// both [ErrInvalidArgument] and [ErrEmptyCollection] when c is empty.
func ReduceOrFail[K comparable, V any](c Iterable[K, V], fn func(V, V) V) (V, error) {
	var (
		acc    V
		seeded bool
	)
	c.Each(func(v V, _ K) {
		if !seeded {
			acc, seeded = v, true
			return
		}
		acc = fn(acc, v)
	})
	if !seeded {
		return acc, fmt.Errorf("%w: reduce without initial value: %w", ErrInvalidArgument, ErrEmptyCollection)
	}
	return acc, nil
}

// Contains reports whether some element of c is strictly equal to target
// ([arr.Identical]). It always scans the whole collection.
func Contains[K comparable, V any](c Iterable[K, V], target V) bool {
	return Reduce(c, func(found bool, v V) bool {
		if found {
			return true
		}
		return arr.Identical(v, target)
	}, false)
}

// Every reports whether pred holds for every element of c. A nil pred tests
// the truthiness of the element itself. Every is true for an empty
// collection, and pred is not called again once an element has failed.
func Every[K comparable, V any](c Iterable[K, V], pred func(V) bool) bool {
	if pred == nil {
		pred = truthy[V]
	}
	return Reduce(c, func(ok bool, v V) bool { return ok && pred(v) }, true)
}

// Some reports whether pred holds for at least one element of c. A nil pred
// tests the truthiness of the element itself. Some is false for an empty
// collection, and pred is not called again once an element has passed.
func Some[K comparable, V any](c Iterable[K, V], pred func(V) bool) bool {
	if pred == nil {
		pred = truthy[V]
	}
	return Reduce(c, func(ok bool, v V) bool { return ok || pred(v) }, false)
}

func truthy[V any](v V) bool { return arr.Truthy(v) }

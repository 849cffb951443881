package fn

import (
	"slices"
	"sync"
)

// Identity returns v unchanged. It is the default for optional transforms.
func Identity[T any](v T) T { return v }

// Once returns a function that invokes f with the argument of its first call
// only. Every later call returns the first result and ignores its argument.
// Concurrent first calls block until f has returned, and f runs exactly once.
// If f panics, later calls return the zero value of R.
func Once[A, R any](f func(A) R) func(A) R {
	var (
		once   sync.Once
		result R
	)
	return func(a A) R {
		once.Do(func() { result = f(a) })
		return result
	}
}

// OnceN is [Once] for variadic functions: f receives the arguments of the
// first call.
func OnceN[A, R any](f func(...A) R) func(...A) R {
	var (
		once   sync.Once
		result R
	)
	return func(args ...A) R {
		once.Do(func() { result = f(slices.Clone(args)...) })
		return result
	}
}

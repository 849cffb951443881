package fn

import "slices"

// Memoize returns a function that caches f's result per argument.
//
//	square := fn.Memoize(func(n int) int { return n * n })
//	square(4) // computes 16
//	square(4) // cached
func Memoize[A, R any](f func(A) R, opts ...Option) func(A) R {
	m := newMemo[R](opts)
	return func(a A) R {
		return m.call([]any{a}, func() R { return f(a) })
	}
}

// Memoize2 is [Memoize] for two-argument functions.
func Memoize2[A, B, R any](f func(A, B) R, opts ...Option) func(A, B) R {
	m := newMemo[R](opts)
	return func(a A, b B) R {
		return m.call([]any{a, b}, func() R { return f(a, b) })
	}
}

// MemoizeN is [Memoize] for variadic functions; the whole argument list forms
// the key.
//
//	concat := fn.MemoizeN(func(parts ...any) string { return fmt.Sprint(parts...) })
func MemoizeN[A, R any](f func(...A) R, opts ...Option) func(...A) R {
	m := newMemo[R](opts)
	return func(args ...A) R {
		frozen := slices.Clone(args)
		key := make([]any, len(frozen))
		for i, arg := range frozen {
			key[i] = arg
		}
		return m.call(key, func() R { return f(frozen...) })
	}
}

type memo[R any] struct {
	keyFunc KeyFunc
	entries *cache[R]
}

func newMemo[R any](opts []Option) *memo[R] {
	cfg := newConfig(opts)
	return &memo[R]{
		keyFunc: cfg.keyFunc,
		entries: newCache[R](cfg.shards, cfg.maxEntries),
	}
}

// call returns the cached result for args, computing and storing it on a miss.
// compute runs without any lock held, so it may recurse into the same memo.
func (m *memo[R]) call(args []any, compute func() R) R {
	key := m.keyFunc(args)
	if v, ok := m.entries.load(key); ok {
		return v
	}
	v := compute()
	m.entries.store(key, v)
	return v
}

// Package fn provides wrappers that change how and when a function runs:
// [Identity], [Once], [Memoize] and [Delay].
//
// # Once
//
// A function wrapped with [Once] runs on its first call only; every later
// call returns that first result and ignores its own arguments:
//
//	initialize := fn.Once(func(cfg string) int { return load(cfg) })
//	initialize("a.toml") // runs load("a.toml")
//	initialize("b.toml") // returns the cached result, load is not called
//
// # Memoize
//
// [Memoize], [Memoize2] and [MemoizeN] cache results by argument list. The
// default cache key is a BLAKE2b-256 digest of a structural encoding of the
// arguments (dynamic type plus Go-syntax value), so []any{1, "2"} and
// []any{"1", 2} are different keys. [JoinKey] restores the coarse
// comma-joined key for callers that want it, collisions included:
//
//	add := fn.MemoizeN(sum, fn.WithKeyFunc(fn.JoinKey))
//
// Cached entries live in mutex-guarded shards, so memoized functions may be
// shared between goroutines. The wrapped function may run more than once for
// the same key when several goroutines miss at the same time.
//
// # Delay
//
// [Delay] runs a function once, no earlier than the given wait, on its own
// goroutine. It never blocks the caller and returns nothing. A panic in the
// delayed function is recovered and logged through the package logger (see
// [SetLogger]).
package fn

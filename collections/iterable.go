package collections

// Iterable is the iteration capability shared by [Sequence] and [Mapping].
//
// K is the position type passed to callbacks: int indices for sequences,
// string keys for mappings. Accept Iterable in your own functions so that
// callers can pass either container, or their own.
type Iterable[K comparable, V any] interface {
	// Each calls fn(value, key) once per element, in iteration order.
	Each(fn func(V, K))

	// Len returns the number of elements.
	Len() int
}

var (
	_ Iterable[int, any]    = (*Sequence[any])(nil)
	_ Iterable[string, any] = (*Mapping[any])(nil)
)

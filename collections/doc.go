// Package collections provides generic functional helpers (each, filter,
// reject, map, pluck, reduce, contains, every, some, extend, defaults) that
// work uniformly over ordered sequences and string-keyed mappings.
//
// # Containers
//
// Two concrete containers ship with the package:
//
//   - [Sequence][T]: an ordered, index-addressable wrapper around []T.
//   - [Mapping][V]: string keys with unique values, iterated in insertion order.
//
// Both implement [Iterable], the single capability every operation is built
// on. A custom container only needs Each and Len to work with every helper:
//
//	type Ring struct{ items []int }
//
//	func (r *Ring) Each(fn func(int, int)) { for i, v := range r.items { fn(v, i) } }
//	func (r *Ring) Len() int               { return len(r.items) }
//
//	collections.Some(&Ring{items: []int{0, 3}}, nil) // → true
//
// # Results
//
// Every operation that produces a collection returns a new *Sequence, even
// when the input was a Mapping:
//
//	ages := collections.MappingFrom(map[string]int{"ann": 31, "bob": 17})
//	adults := collections.Filter(ages, func(n int) bool { return n >= 18 })
//	adults.All() // → [31]
//
// Inputs are never mutated, except by [Extend] and [Defaults], whose contract
// is to fill in and return their target.
//
// # Equality and truthiness
//
// [Contains] and [Sequence.IndexOf] use strict equality ([arr.Identical]):
// 2 and "2" never match. Helpers that take an optional predicate ([Every],
// [Some]) fall back to the truthiness of the element itself ([arr.Truthy]).
package collections

// Package arr provides standalone helper functions for plain Go slices and
// map[string]any records, in the spirit of Underscore's array helpers.
//
// # Slice helpers
//
// All slice helpers are generic and operate on plain []T values; no wrapper
// type is required. Every helper that returns a slice returns a new one and
// leaves its input untouched, except [SortUniq], which sorts in place by
// contract:
//
//	head, _ := arr.FirstN([]int{1, 2, 3, 4}, 2) // → [1 2]
//	i := arr.IndexOf([]string{"a", "b"}, "b")   // → 1
//	u := arr.Uniq([]int{3, 1, 2, 1, 3})         // → [1 2 3]
//	s := arr.Shuffle([]int{1, 2, 3})            // → e.g. [2 3 1]
//
// # Strict equality and truthiness
//
// [Identical] is the equality used by every search helper: values must have
// the same dynamic type and the same value, with no conversion. Slices, maps
// and other reference kinds are identical only when they share the same
// underlying storage. [Truthy] classifies arbitrary values the way loose
// predicate tests need (false, zero numbers, NaN, "" and nil are falsy).
//
// # Records
//
// [Get] and [Has] resolve dot-separated key paths through nested
// map[string]any values, string-keyed maps of any type, structs (by exported
// field name) and any value implementing [Lookuper]:
//
//	m := map[string]any{"user": map[string]any{"name": "Alice"}}
//	arr.Get(m, "user.name") // → "Alice"
//
// [Extend] and [Defaults] compose flat records.
package arr

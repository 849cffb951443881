package collections

// ─────────────────────────────────────────────────────────────────────────────
// Object composition
// ─────────────────────────────────────────────────────────────────────────────

// Extend copies every key of each source into target, left to right. Later
// sources overwrite earlier ones and any value already in target. target is
// mutated and returned; a nil target is replaced by a new empty mapping.
// Nil sources are skipped.
//
//	collections.Extend(
//	    collections.MappingFrom(map[string]int{"a": 1}),
//	    collections.MappingFrom(map[string]int{"b": 2}),
//	    collections.MappingFrom(map[string]int{"a": 3}),
//	) // → {"a":3,"b":2}
func Extend[V any](target *Mapping[V], sources ...Iterable[string, V]) *Mapping[V] {
	if target == nil {
		target = EmptyMapping[V]()
	}
	for _, src := range sources {
		if src == nil {
			continue
		}
		src.Each(func(v V, k string) { target.Set(k, v) })
	}
	return target
}

// Defaults is like [Extend] but never overwrites a key that is already
// present in target, including keys filled in by an earlier source of the
// same call.
//
//	collections.Defaults(
//	    collections.MappingFrom(map[string]int{"a": 1}),
//	    collections.MappingFrom(map[string]int{"a": 9, "b": 2}),
//	) // → {"a":1,"b":2}
func Defaults[V any](target *Mapping[V], sources ...Iterable[string, V]) *Mapping[V] {
	if target == nil {
		target = EmptyMapping[V]()
	}
	for _, src := range sources {
		if src == nil {
			continue
		}
		src.Each(func(v V, k string) {
			if !target.Has(k) {
				target.Set(k, v)
			}
		})
	}
	return target
}

package arr

import (
	"reflect"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation record access
//
// A record is anything a single key can be resolved against:
//
//	map[string]any{"name": "Alice"}      Get(m, "name")      → "Alice"
//	map[string]int{"age": 30}            Get(m, "age")       → 30
//	struct{ Name string }{"Bob"}         Get(s, "Name")      → "Bob"
//	&struct{ Name string }{"Bob"}        Get(p, "Name")      → "Bob"
//	a Lookuper (e.g. *collections.Mapping)
//
// Dot-separated keys descend through nested records:
//
//	Get(m, "user.address.city")
// ─────────────────────────────────────────────────────────────────────────────

// Lookuper is implemented by containers that resolve string keys themselves.
type Lookuper interface {
	Lookup(key string) (any, bool)
}

// Get retrieves a value from item using a dot-notation key.
// Returns def[0] (or nil) when any segment of the key does not resolve.
//
//	Get(m, "user.address.city")        // "London"
//	Get(m, "user.missing", "default")  // "default"
func Get(item any, key string, def ...any) any {
	current := item
	for _, seg := range strings.Split(key, ".") {
		val, ok := lookup(current, seg)
		if !ok {
			if len(def) > 0 {
				return def[0]
			}
			return nil
		}
		current = val
	}
	return current
}

// Has reports whether the dot-notation key resolves against item.
func Has(item any, key string) bool {
	current := item
	for _, seg := range strings.Split(key, ".") {
		val, ok := lookup(current, seg)
		if !ok {
			return false
		}
		current = val
	}
	return true
}

func lookup(item any, key string) (any, bool) {
	switch v := item.(type) {
	case nil:
		return nil, false
	case map[string]any:
		val, ok := v[key]
		return val, ok
	case Lookuper:
		return v.Lookup(key)
	}

	rv := reflect.ValueOf(item)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		kt := rv.Type().Key()
		if kt.Kind() != reflect.String {
			return nil, false
		}
		val := rv.MapIndex(reflect.ValueOf(key).Convert(kt))
		if !val.IsValid() {
			return nil, false
		}
		return val.Interface(), true
	case reflect.Struct:
		field, ok := rv.Type().FieldByName(key)
		if !ok || !field.IsExported() {
			return nil, false
		}
		val, err := rv.FieldByIndexErr(field.Index)
		if err != nil {
			return nil, false
		}
		return val.Interface(), true
	}
	return nil, false
}

// ─────────────────────────────────────────────────────────────────────────────
// Record composition
// ─────────────────────────────────────────────────────────────────────────────

// Extend copies every key of each src into dst, left to right. Later sources
// overwrite earlier ones and any key already in dst. dst is mutated and
// returned; a nil dst is allocated.
//
//	Extend(map[string]any{"a": 1}, map[string]any{"b": 2}, map[string]any{"a": 3})
//	// → map[a:3 b:2]
func Extend[M ~map[string]V, V any](dst M, srcs ...M) M {
	if dst == nil {
		dst = make(M)
	}
	for _, src := range srcs {
		for k, v := range src {
			dst[k] = v
		}
	}
	return dst
}

// Defaults is like [Extend] but never overwrites a key that is already
// present in dst, including keys filled in by an earlier src of the same call.
//
//	Defaults(map[string]any{"a": 1}, map[string]any{"a": 9, "b": 2})
//	// → map[a:1 b:2]
func Defaults[M ~map[string]V, V any](dst M, srcs ...M) M {
	if dst == nil {
		dst = make(M)
	}
	for _, src := range srcs {
		for k, v := range src {
			if _, ok := dst[k]; !ok {
				dst[k] = v
			}
		}
	}
	return dst
}

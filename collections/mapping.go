package collections

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"sort"
)

// Mapping is a collection of string keys to values of type V.
//
// Keys are unique. Iteration follows insertion order: re-setting an existing
// key updates its value in place and keeps its position. Callers should not
// give that order any meaning beyond determinism.
//
// The zero value is an empty mapping ready to use. A nil *Mapping behaves
// as an empty, read-only mapping.
type Mapping[V any] struct {
	keys  []string
	items map[string]V
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// NewMapping creates a Mapping holding entries in the given order.
// A later entry with a duplicate key overwrites the earlier value.
//
//	m := collections.NewMapping(
//	    collections.Pair[string, int]{First: "a", Second: 1},
//	    collections.Pair[string, int]{First: "b", Second: 2},
//	)
func NewMapping[V any](entries ...Pair[string, V]) *Mapping[V] {
	m := &Mapping[V]{
		keys:  make([]string, 0, len(entries)),
		items: make(map[string]V, len(entries)),
	}
	for _, e := range entries {
		m.Set(e.First, e.Second)
	}
	return m
}

// MappingFrom creates a Mapping from a Go map (copied). Keys are inserted in
// sorted order so that iteration is deterministic.
func MappingFrom[V any](src map[string]V) *Mapping[V] {
	keys := make([]string, 0, len(src))
	for k := range src {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	items := make(map[string]V, len(src))
	for k, v := range src {
		items[k] = v
	}
	return &Mapping[V]{keys: keys, items: items}
}

// EmptyMapping creates an empty Mapping of value type V.
func EmptyMapping[V any]() *Mapping[V] {
	return NewMapping[V]()
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of keys. It satisfies [Iterable].
func (m *Mapping[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Get returns the value stored under key together with a presence flag.
func (m *Mapping[V]) Get(key string) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	v, ok := m.items[key]
	return v, ok
}

// Lookup is [Mapping.Get] with an untyped result. It lets [arr.Get] and
// [Pluck] resolve keys inside mappings.
func (m *Mapping[V]) Lookup(key string) (any, bool) {
	v, ok := m.Get(key)
	if !ok {
		return nil, false
	}
	return v, true
}

// Has reports whether key is present.
func (m *Mapping[V]) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Keys returns the keys in iteration order.
func (m *Mapping[V]) Keys() []string {
	if m == nil {
		return []string{}
	}
	return slices.Clone(m.keys)
}

// Values returns the values in iteration order as a new sequence.
func (m *Mapping[V]) Values() *Sequence[V] {
	out := make([]V, 0, m.Len())
	m.Each(func(v V, _ string) { out = append(out, v) })
	return &Sequence[V]{items: out}
}

// Entries returns the key/value pairs in iteration order.
func (m *Mapping[V]) Entries() []Pair[string, V] {
	out := make([]Pair[string, V], 0, m.Len())
	m.Each(func(v V, k string) { out = append(out, Pair[string, V]{First: k, Second: v}) })
	return out
}

// ToMap returns a copy of the mapping as a plain Go map.
func (m *Mapping[V]) ToMap() map[string]V {
	out := make(map[string]V, m.Len())
	m.Each(func(v V, k string) { out[k] = v })
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutation
// ─────────────────────────────────────────────────────────────────────────────

// Set stores value under key. A new key is appended to the iteration order;
// an existing key keeps its position.
func (m *Mapping[V]) Set(key string, value V) {
	if m.items == nil {
		m.items = make(map[string]V)
	}
	if _, ok := m.items[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.items[key] = value
}

// Delete removes key and reports whether it was present.
func (m *Mapping[V]) Delete(key string) bool {
	if _, ok := m.items[key]; !ok {
		return false
	}
	delete(m.items, key)
	if i := slices.Index(m.keys, key); i >= 0 {
		m.keys = slices.Delete(m.keys, i, i+1)
	}
	return true
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration & encoding
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(value, key) for every entry in insertion order.
func (m *Mapping[V]) Each(fn func(V, string)) {
	if m == nil {
		return
	}
	for _, k := range m.keys {
		fn(m.items[k], k)
	}
}

// MarshalJSON encodes the mapping as a JSON object whose members appear in
// iteration order.
func (m *Mapping[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(m.items[k])
		if err != nil {
			return nil, fmt.Errorf("collections: encoding key %q: %w", k, err)
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// String returns a JSON representation of the mapping.
// It implements [fmt.Stringer].
func (m *Mapping[V]) String() string {
	b, err := m.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%v", m.ToMap())
	}
	return string(b)
}

package collections_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-underbar/collections"
)

func entry[V any](k string, v V) collections.Pair[string, V] {
	return collections.Pair[string, V]{First: k, Second: v}
}

func TestNewMappingKeepsInsertionOrder(t *testing.T) {
	m := collections.NewMapping(entry("z", 1), entry("a", 2), entry("m", 3))
	assert.Equal(t, []string{"z", "a", "m"}, m.Keys())
	assert.Equal(t, []int{1, 2, 3}, m.Values().All())
	assert.Equal(t, 3, m.Len())
}

func TestMappingFromSortsKeys(t *testing.T) {
	m := collections.MappingFrom(map[string]int{"b": 2, "c": 3, "a": 1})
	assert.Equal(t, []string{"a", "b", "c"}, m.Keys())
	assert.Equal(t, map[string]int{"a": 1, "b": 2, "c": 3}, m.ToMap())
}

func TestMappingSetKeepsPosition(t *testing.T) {
	m := collections.NewMapping(entry("a", 1), entry("b", 2))
	m.Set("a", 10)
	m.Set("c", 3)
	assert.Equal(t, []string{"a", "b", "c"}, m.Keys())
	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 10, v)
}

func TestMappingDelete(t *testing.T) {
	m := collections.NewMapping(entry("a", 1), entry("b", 2), entry("c", 3))
	assert.True(t, m.Delete("b"))
	assert.False(t, m.Delete("b"))
	assert.False(t, m.Has("b"))
	assert.Equal(t, []string{"a", "c"}, m.Keys())
}

func TestMappingEntries(t *testing.T) {
	m := collections.NewMapping(entry("x", "1"), entry("y", "2"))
	e := m.Entries()
	require.Len(t, e, 2)
	assert.Equal(t, "(x, 1)", e[0].String())
	assert.Equal(t, "y", e[1].First)
}

func TestMappingLookup(t *testing.T) {
	m := collections.NewMapping(entry("a", 1))
	v, ok := m.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	_, ok = m.Lookup("b")
	assert.False(t, ok)
}

func TestNilMappingIsEmpty(t *testing.T) {
	var m *collections.Mapping[int]
	assert.Equal(t, 0, m.Len())
	assert.False(t, m.Has("a"))
	assert.Empty(t, m.Keys())
	m.Each(func(int, string) { t.Fatal("nil mapping should not iterate") })
	assert.Equal(t, "{}", m.String())
}

func TestMappingJSONOrder(t *testing.T) {
	m := collections.NewMapping(entry("b", 1), entry("a", 2))
	b, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"b":1,"a":2}`, string(b))
}

func TestMappingJSONError(t *testing.T) {
	m := collections.NewMapping(entry[any]("f", func() {}))
	_, err := m.MarshalJSON()
	assert.Error(t, err)
}

func TestMappingZeroValue(t *testing.T) {
	var m collections.Mapping[int]
	assert.Equal(t, 0, m.Len())
	assert.False(t, m.Delete("a"))

	m.Set("b", 2)
	m.Set("a", 1)
	assert.Equal(t, []string{"b", "a"}, m.Keys())
	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.True(t, m.Delete("b"))
	assert.Equal(t, map[string]int{"a": 1}, m.ToMap())
}

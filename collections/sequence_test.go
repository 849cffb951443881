package collections_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-underbar/collections"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func ints(ns ...int) *collections.Sequence[int] { return collections.New(ns...) }

func assertSlice[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("slice length: got %d want %d  (got=%v want=%v)", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors & accessors
// ─────────────────────────────────────────────────────────────────────────────

func TestNew(t *testing.T) {
	assertSlice(t, collections.New(1, 2, 3).All(), []int{1, 2, 3})
}

func TestFrom(t *testing.T) {
	s := []string{"a", "b", "c"}
	c := collections.From(s)
	s[0] = "z" // mutate original – should not affect the sequence
	if c.All()[0] != "a" {
		t.Fatal("From did not copy the slice")
	}
}

func TestEmpty(t *testing.T) {
	c := collections.Empty[int]()
	assert.Equal(t, 0, c.Len())
	assert.True(t, c.IsEmpty())
}

func TestGet(t *testing.T) {
	c := ints(10, 20, 30)
	v, ok := c.Get(1)
	if !ok || v != 20 {
		t.Fatalf("Get(1) = %v, %v; want 20, true", v, ok)
	}
	_, ok = c.Get(99)
	assert.False(t, ok)
	_, ok = c.Get(-1)
	assert.False(t, ok)
}

func TestSlice(t *testing.T) {
	c := ints(1, 2, 3, 4)
	assertSlice(t, c.Slice(1, 3).All(), []int{2, 3})
	assertSlice(t, c.Slice(-2, 4).All(), []int{3, 4})
	assertSlice(t, c.Slice(0, 99).All(), []int{1, 2, 3, 4})
	assert.True(t, c.Slice(3, 1).IsEmpty())
	assert.True(t, c.Slice(10, 20).IsEmpty())
}

func TestSequenceJSON(t *testing.T) {
	b, err := json.Marshal(ints(1, 2, 3))
	require.NoError(t, err)
	assert.JSONEq(t, `[1,2,3]`, string(b))
	assert.Equal(t, `["a"]`, collections.New("a").String())
}

// ─────────────────────────────────────────────────────────────────────────────
// Head & tail
// ─────────────────────────────────────────────────────────────────────────────

func TestSequenceFirstLast(t *testing.T) {
	c := ints(1, 2, 3)
	first, ok := c.First()
	assert.True(t, ok)
	assert.Equal(t, 1, first)
	last, ok := c.Last()
	assert.True(t, ok)
	assert.Equal(t, 3, last)

	_, ok = collections.Empty[int]().First()
	assert.False(t, ok)
	_, ok = collections.Empty[int]().Last()
	assert.False(t, ok)
}

func TestSequenceFirstNLastN(t *testing.T) {
	c := ints(1, 2, 3, 4, 5)

	head, err := c.FirstN(2)
	require.NoError(t, err)
	assertSlice(t, head.All(), []int{1, 2})

	tail, err := c.LastN(2)
	require.NoError(t, err)
	assertSlice(t, tail.All(), []int{4, 5})

	all, err := c.LastN(50)
	require.NoError(t, err)
	assertSlice(t, all.All(), []int{1, 2, 3, 4, 5})

	_, err = c.FirstN(-1)
	assert.ErrorIs(t, err, collections.ErrInvalidArgument)
	_, err = c.LastN(-1)
	assert.ErrorIs(t, err, collections.ErrInvalidArgument)
}

// ─────────────────────────────────────────────────────────────────────────────
// Search & transformation
// ─────────────────────────────────────────────────────────────────────────────

func TestSequenceIndexOf(t *testing.T) {
	assert.Equal(t, 1, ints(4, 5, 5).IndexOf(5))
	assert.Equal(t, -1, ints(4, 5, 5).IndexOf(6))
	assert.Equal(t, -1, collections.New[any](1, 2).IndexOf("2"))
}

func TestSequenceFilterReject(t *testing.T) {
	c := ints(1, 2, 3, 4, 5, 6)
	even := func(n int) bool { return n%2 == 0 }
	assertSlice(t, c.Filter(even).All(), []int{2, 4, 6})
	assertSlice(t, c.Reject(even).All(), []int{1, 3, 5})
	assertSlice(t, c.All(), []int{1, 2, 3, 4, 5, 6})
}

func TestSequenceShuffle(t *testing.T) {
	c := ints(1, 2, 3, 4, 5)
	s := c.Shuffle()
	assert.ElementsMatch(t, c.All(), s.All())
	assert.NotEqual(t, c.All(), s.All())
	assertSlice(t, c.All(), []int{1, 2, 3, 4, 5})
}

func TestNilSequenceIsEmpty(t *testing.T) {
	var s *collections.Sequence[int]
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.Count())
	assert.True(t, s.IsEmpty())
	assert.Equal(t, []int{}, s.All())
	_, ok := s.Get(0)
	assert.False(t, ok)

	calls := 0
	s.Each(func(int, int) { calls++ })
	assert.Zero(t, calls)

	assert.Equal(t, 0, collections.Reduce[int, int, int](s, func(acc, n int) int { return acc + n }, 0))
	assert.Equal(t, 0, collections.Filter[int, int](s, func(int) bool { return true }).Len())
}


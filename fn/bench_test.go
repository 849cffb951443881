package fn_test

import (
	"testing"

	"github.com/hasbyte1/go-underbar/fn"
)

func BenchmarkMemoizeHit(b *testing.B) {
	square := fn.Memoize(func(n int) int { return n * n })
	square(7)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		square(7)
	}
}

func BenchmarkMemoizeHitJoinKey(b *testing.B) {
	square := fn.Memoize(func(n int) int { return n * n }, fn.WithKeyFunc(fn.JoinKey))
	square(7)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		square(7)
	}
}

func BenchmarkMemoizeParallel(b *testing.B) {
	square := fn.Memoize(func(n int) int { return n * n }, fn.WithMaxEntries(1024))
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			square(i % 4096)
			i++
		}
	})
}

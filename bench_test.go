package ringlist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// go test -bench=. -cpuprofile profile.out
// go tool pprof -http="localhost:8000" pprofbin ./profile.out

func BenchmarkAdd(b *testing.B) {
	l := New[int]()
	for i := 0; i < b.N; i++ {
		l.Add(i)
	}
}

func BenchmarkInsertHead(b *testing.B) {
	requireT := require.New(b)

	l := New[int]()
	for i := 0; i < b.N; i++ {
		requireT.NoError(l.Insert(0, i))
	}
}

func BenchmarkGetMiddle(b *testing.B) {
	const count = 1000

	requireT := require.New(b)

	l := New[int]()
	for i := 0; i < count; i++ {
		l.Add(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := l.Get(count / 2)
		requireT.NoError(err)
	}
}

func BenchmarkAddRemove(b *testing.B) {
	requireT := require.New(b)

	l := Of(1, 2, 3)
	for i := 0; i < b.N; i++ {
		l.Add(i)
		requireT.NoError(l.Remove(0))
	}
}

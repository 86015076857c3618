package ringlist

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireRing[T comparable](t *testing.T, l *List[T]) {
	t.Helper()

	if l.size == 0 {
		require.Equal(t, none, l.head)
		require.Equal(t, none, l.tail)
		return
	}

	seen := map[handle]struct{}{}
	h := l.head
	for i := 0; i < l.size; i++ {
		_, exists := seen[h]
		require.False(t, exists, "ring closed after %d steps", i)
		seen[h] = struct{}{}
		if i == l.size-1 {
			require.Equal(t, l.tail, h)
		}
		h = l.store.next(h)
	}
	require.Equal(t, l.head, h)
}

func TestRingClosesAfterAdds(t *testing.T) {
	l := New[int]()
	for i := 0; i < 20; i++ {
		if i%3 == 0 {
			require.NoError(t, l.Insert(0, i))
		} else {
			l.Add(i)
		}
		requireRing(t, l)
	}
}

func TestSingleNodeLinksToItself(t *testing.T) {
	l := Of(1)
	require.Equal(t, l.head, l.store.next(l.head))
}

func TestReleasedSlotsAreReused(t *testing.T) {
	requireT := require.New(t)

	l := Of(1, 2, 3)
	requireT.Len(l.store.slots, 3)

	requireT.NoError(l.Remove(1))
	requireT.NoError(l.Remove(0))
	l.Add(4)
	l.Add(5)
	requireT.Len(l.store.slots, 3)
	requireT.Equal([]int{3, 4, 5}, l.Values())
	requireRing(t, l)

	l.Clear()
	requireT.Nil(l.store.slots)
	requireT.Equal(none, l.store.free)
}

func TestRandomOperationsMatchSlice(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))

	l := New[int]()
	expected := []int{}
	for i := 0; i < 2000; i++ {
		switch op := rnd.Intn(10); {
		case op < 5:
			index := rnd.Intn(len(expected) + 1)
			require.NoError(t, l.Insert(index, i))
			expected = append(expected[:index], append([]int{i}, expected[index:]...)...)
		case op < 8:
			if len(expected) == 0 {
				require.Error(t, l.Remove(0))
				continue
			}
			index := rnd.Intn(len(expected) + 1)
			require.NoError(t, l.Remove(index))
			if index == len(expected) {
				index = 0
			}
			expected = append(expected[:index], expected[index+1:]...)
		case op < 9:
			if len(expected) == 0 {
				continue
			}
			index := rnd.Intn(len(expected))
			require.NoError(t, l.Set(index, -i))
			expected[index] = -i
		default:
			if len(expected) > 0 && rnd.Intn(10) == 0 {
				l.Clear()
				expected = []int{}
			}
		}

		require.Equal(t, len(expected), l.Size())
		requireRing(t, l)
	}
	require.Equal(t, expected, l.Values())
}

func TestRemoveAtSizeAfterHeadInserts(t *testing.T) {
	requireT := require.New(t)

	l := New[int]()
	for i := 0; i < 4; i++ {
		requireT.NoError(l.Insert(0, i))
	}
	requireT.NoError(l.Remove(2))
	requireT.NoError(l.Remove(l.Size()))
	requireT.Equal([]int{2, 0}, l.Values())
	requireRing(t, l)

	requireT.NoError(l.Insert(0, 9))
	requireT.NoError(l.Remove(l.Size()))
	requireT.Equal([]int{2, 0}, l.Values())
	requireRing(t, l)
}

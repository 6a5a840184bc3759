package pqueue_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/amphipod/pqueue"
)

func TestQueue_EmptyPopAndPeek(t *testing.T) {
	q := pqueue.New(func(a, b int) bool { return a < b }, 0)
	_, ok := q.Pop()
	require.False(t, ok)
	_, ok = q.Peek()
	require.False(t, ok)
	require.Equal(t, 0, q.Len())
}

func TestQueue_PopsInOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	q := pqueue.New(func(a, b int) bool { return a < b }, 16)
	want := make([]int, 0, 200)
	for i := 0; i < 200; i++ {
		v := rng.Intn(1000)
		want = append(want, v)
		q.Push(v)
	}
	sort.Ints(want)

	got := make([]int, 0, len(want))
	for q.Len() > 0 {
		head, ok := q.Peek()
		require.True(t, ok)
		v, ok := q.Pop()
		require.True(t, ok)
		require.Equal(t, head, v)
		got = append(got, v)
	}
	require.Equal(t, want, got)
}

func TestQueue_TieBreakBySecondaryKey(t *testing.T) {
	type item struct{ f, g int }
	// Equal f: larger g first.
	q := pqueue.New(func(a, b item) bool {
		if a.f != b.f {
			return a.f < b.f
		}
		return a.g > b.g
	}, 4)
	q.Push(item{5, 1})
	q.Push(item{5, 3})
	q.Push(item{4, 0})
	q.Push(item{5, 2})

	var order []item
	for q.Len() > 0 {
		x, _ := q.Pop()
		order = append(order, x)
	}
	require.Equal(t, []item{{4, 0}, {5, 3}, {5, 2}, {5, 1}}, order)
}

func TestQueue_Reset(t *testing.T) {
	q := pqueue.New(func(a, b string) bool { return a < b }, 2)
	q.Push("b")
	q.Push("a")
	q.Reset()
	require.Equal(t, 0, q.Len())
	q.Push("c")
	x, ok := q.Pop()
	require.True(t, ok)
	require.Equal(t, "c", x)
}

package queue_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolate/queue"
)

func newSeeded[T any](seed int64) *queue.RandomizedQueue[T] {
	return queue.NewRandomizedQueue[T](rand.New(rand.NewSource(seed)))
}

func TestRandomizedQueue_DequeueDrainsAll(t *testing.T) {
	q := newSeeded[int](1)
	for i := 0; i < 100; i++ {
		q.Enqueue(i)
	}
	assert.Equal(t, 100, q.Len())

	var got []int
	for !q.IsEmpty() {
		v, err := q.Dequeue()
		require.NoError(t, err)
		got = append(got, v)
	}
	slices.Sort(got)
	want := make([]int, 100)
	for i := range want {
		want[i] = i
	}
	assert.Equal(t, want, got)
}

func TestRandomizedQueue_Empty(t *testing.T) {
	q := newSeeded[string](1)
	_, err := q.Dequeue()
	assert.ErrorIs(t, err, queue.ErrEmpty)
	_, err = q.Sample()
	assert.ErrorIs(t, err, queue.ErrEmpty)
	assert.Empty(t, slices.Collect(q.All()))
}

func TestRandomizedQueue_SampleKeepsItem(t *testing.T) {
	q := newSeeded[string](3)
	q.Enqueue("a")
	q.Enqueue("b")
	for i := 0; i < 20; i++ {
		v, err := q.Sample()
		require.NoError(t, err)
		assert.Contains(t, []string{"a", "b"}, v)
	}
	assert.Equal(t, 2, q.Len())
}

func TestRandomizedQueue_ResizeBounds(t *testing.T) {
	q := newSeeded[int](5)
	for i := 0; i < 64; i++ {
		q.Enqueue(i)
	}
	assert.GreaterOrEqual(t, q.Cap(), 64)
	for i := 0; i < 60; i++ {
		_, err := q.Dequeue()
		require.NoError(t, err)
	}
	// four items left: the backing array has shrunk but never below 8
	assert.Equal(t, 4, q.Len())
	assert.LessOrEqual(t, q.Cap(), 32)
	assert.GreaterOrEqual(t, q.Cap(), 8)
}

func TestRandomizedQueue_IteratorsIndependent(t *testing.T) {
	q := newSeeded[int](9)
	for i := 0; i < 20; i++ {
		q.Enqueue(i)
	}
	a := slices.Collect(q.All())
	b := slices.Collect(q.All())
	assert.ElementsMatch(t, a, b)
	assert.Len(t, a, 20)
	assert.NotEqual(t, a, b, "two iterators produced the same order")
	assert.Equal(t, 20, q.Len())
}

// TestRandomizedQueue_Uniform checks Dequeue picks each of 4 items roughly
// equally often as the first removal.
func TestRandomizedQueue_Uniform(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	counts := make(map[int]int)
	const rounds = 4000
	for i := 0; i < rounds; i++ {
		q := queue.NewRandomizedQueue[int](r)
		for v := 0; v < 4; v++ {
			q.Enqueue(v)
		}
		v, err := q.Dequeue()
		require.NoError(t, err)
		counts[v]++
	}
	for v := 0; v < 4; v++ {
		assert.InDelta(t, rounds/4, counts[v], rounds/10, "item %d", v)
	}
}

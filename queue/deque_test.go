package queue_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolate/queue"
)

func TestDeque_PushPop(t *testing.T) {
	d := queue.NewDeque[int]()
	assert.True(t, d.IsEmpty())

	d.PushFront(1)
	d.PushFront(2)
	d.PushFront(3)
	d.PushBack(4)
	d.PushBack(5)
	assert.Equal(t, 5, d.Len())
	assert.Equal(t, []int{3, 2, 1, 4, 5}, slices.Collect(d.All()))
	assert.Equal(t, "[3 2 1 4 5]", d.String())

	v, err := d.PopFront()
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	v, err = d.PopFront()
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	v, err = d.PopBack()
	require.NoError(t, err)
	assert.Equal(t, 5, v)
	v, err = d.PopBack()
	require.NoError(t, err)
	assert.Equal(t, 4, v)

	assert.Equal(t, "[1]", d.String())
	assert.Equal(t, 1, d.Len())
}

func TestDeque_Underflow(t *testing.T) {
	d := queue.NewDeque[string]()
	_, err := d.PopFront()
	assert.ErrorIs(t, err, queue.ErrEmpty)
	_, err = d.PopBack()
	assert.ErrorIs(t, err, queue.ErrEmpty)

	d.PushBack("x")
	v, err := d.PopFront()
	require.NoError(t, err)
	assert.Equal(t, "x", v)
	assert.True(t, d.IsEmpty())
	assert.Equal(t, "[]", d.String())
}

func TestDeque_EarlyBreak(t *testing.T) {
	d := queue.NewDeque[int]()
	for i := 0; i < 10; i++ {
		d.PushBack(i)
	}
	var seen []int
	for v := range d.All() {
		if v == 3 {
			break
		}
		seen = append(seen, v)
	}
	assert.Equal(t, []int{0, 1, 2}, seen)
}

package queue

import (
	"fmt"
	"iter"
	"math/rand"
	"time"
)

// initCapacity is the smallest backing capacity a RandomizedQueue keeps.
const initCapacity = 8

// RandomizedQueue is a bag that removes and iterates items in uniformly
// random order. Items are stored densely in a slice: Dequeue swaps the chosen
// slot with the last item, so there are never gaps to skip over.
type RandomizedQueue[T any] struct {
	items []T
	rng   *rand.Rand
}

// NewRandomizedQueue returns an empty queue drawing randomness from r.
// A nil r selects a time-seeded source.
func NewRandomizedQueue[T any](r *rand.Rand) *RandomizedQueue[T] {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &RandomizedQueue[T]{
		items: make([]T, 0, initCapacity),
		rng:   r,
	}
}

// IsEmpty reports whether the queue holds no items.
func (q *RandomizedQueue[T]) IsEmpty() bool { return len(q.items) == 0 }

// Len returns the number of items.
func (q *RandomizedQueue[T]) Len() int { return len(q.items) }

// Enqueue adds item. Capacity doubles when the backing array is full.
// Complexity: O(1) amortized.
func (q *RandomizedQueue[T]) Enqueue(item T) {
	if len(q.items) == cap(q.items) {
		q.resize(2 * cap(q.items))
	}
	q.items = append(q.items, item)
}

// Dequeue removes and returns an item chosen uniformly at random, or ErrEmpty.
// Capacity halves once occupancy drops to one quarter.
// Complexity: O(1) amortized.
func (q *RandomizedQueue[T]) Dequeue() (T, error) {
	if q.IsEmpty() {
		var zero T
		return zero, fmt.Errorf("Dequeue: %w", ErrEmpty)
	}
	last := len(q.items) - 1
	i := q.rng.Intn(last + 1)
	item := q.items[i]
	q.items[i] = q.items[last]

	var zero T
	q.items[last] = zero // drop the reference held by the vacated slot
	q.items = q.items[:last]

	if n := len(q.items); n > 0 && n == cap(q.items)/4 && cap(q.items) > initCapacity {
		q.resize(cap(q.items) / 2)
	}

	return item, nil
}

// Sample returns, without removing it, an item chosen uniformly at random,
// or ErrEmpty.
func (q *RandomizedQueue[T]) Sample() (T, error) {
	if q.IsEmpty() {
		var zero T
		return zero, fmt.Errorf("Sample: %w", ErrEmpty)
	}

	return q.items[q.rng.Intn(len(q.items))], nil
}

// All iterates every item once in a uniformly random order. Each call takes
// a private copy, so separate iterators are independent of each other and
// of later mutations.
func (q *RandomizedQueue[T]) All() iter.Seq[T] {
	snapshot := make([]T, len(q.items))
	copy(snapshot, q.items)

	return func(yield func(T) bool) {
		// Lazy Fisher–Yates: each step draws from the not-yet-yielded prefix.
		for last := len(snapshot) - 1; last >= 0; last-- {
			i := q.rng.Intn(last + 1)
			snapshot[i], snapshot[last] = snapshot[last], snapshot[i]
			if !yield(snapshot[last]) {
				return
			}
		}
	}
}

// String renders the items in a random order as "[a b c]".
func (q *RandomizedQueue[T]) String() string {
	return render(q.All())
}

// Cap returns the capacity of the backing array.
func (q *RandomizedQueue[T]) Cap() int { return cap(q.items) }

func (q *RandomizedQueue[T]) resize(capacity int) {
	if capacity < initCapacity {
		capacity = initCapacity
	}
	items := make([]T, len(q.items), capacity)
	copy(items, q.items)
	q.items = items
}

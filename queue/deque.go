package queue

import (
	"fmt"
	"iter"
	"strings"
)

// node is a Deque link. Sentinels carry the zero value of T.
type node[T any] struct {
	item       T
	prev, next *node[T]
}

// Deque is a double-ended queue. The zero value is not usable; call NewDeque.
type Deque[T any] struct {
	head, tail *node[T] // sentinels; real nodes sit strictly between them
	n          int
}

// NewDeque returns an empty Deque.
func NewDeque[T any]() *Deque[T] {
	head, tail := &node[T]{}, &node[T]{}
	head.next = tail
	tail.prev = head

	return &Deque[T]{head: head, tail: tail}
}

// IsEmpty reports whether the deque holds no items.
func (d *Deque[T]) IsEmpty() bool { return d.n == 0 }

// Len returns the number of items.
func (d *Deque[T]) Len() int { return d.n }

// PushFront adds item at the front.
func (d *Deque[T]) PushFront(item T) {
	d.insertAfter(d.head, item)
}

// PushBack adds item at the back.
func (d *Deque[T]) PushBack(item T) {
	d.insertAfter(d.tail.prev, item)
}

// PopFront removes and returns the front item, or ErrEmpty.
func (d *Deque[T]) PopFront() (T, error) {
	if d.IsEmpty() {
		var zero T
		return zero, fmt.Errorf("PopFront: %w", ErrEmpty)
	}

	return d.unlink(d.head.next), nil
}

// PopBack removes and returns the back item, or ErrEmpty.
func (d *Deque[T]) PopBack() (T, error) {
	if d.IsEmpty() {
		var zero T
		return zero, fmt.Errorf("PopBack: %w", ErrEmpty)
	}

	return d.unlink(d.tail.prev), nil
}

func (d *Deque[T]) insertAfter(at *node[T], item T) {
	nd := &node[T]{item: item, prev: at, next: at.next}
	at.next.prev = nd
	at.next = nd
	d.n++
}

func (d *Deque[T]) unlink(nd *node[T]) T {
	nd.prev.next = nd.next
	nd.next.prev = nd.prev
	nd.prev, nd.next = nil, nil
	d.n--

	return nd.item
}

// All iterates the items front to back. Mutating the deque during iteration
// is not supported.
func (d *Deque[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := d.head.next; cur != d.tail; cur = cur.next {
			if !yield(cur.item) {
				return
			}
		}
	}
}

// String renders the items front to back as "[a b c]".
func (d *Deque[T]) String() string {
	return render(d.All())
}

// render formats a sequence the way fmt prints a slice.
func render[T any](seq iter.Seq[T]) string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	for item := range seq {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprint(&sb, item)
	}
	sb.WriteByte(']')

	return sb.String()
}

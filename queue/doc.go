// Package queue provides two generic containers: Deque, a double-ended queue
// on a doubly linked list with sentinel head and tail nodes, and
// RandomizedQueue, a bag whose removals and iteration order are uniformly
// random.
//
// Complexity:
//
//   - Deque: every push/pop is O(1) worst case; iteration is O(n).
//   - RandomizedQueue: Enqueue/Dequeue are O(1) amortized (capacity doubles
//     when full and halves at one-quarter occupancy), Sample is O(1),
//     iteration is O(n) with an O(n) private copy per iterator.
//
// Errors:
//
//   - ErrEmpty: a removal or sample was attempted on an empty container.
//
// Neither container is safe for concurrent use.
package queue

import "errors"

// ErrEmpty indicates a removal or sample from an empty container.
var ErrEmpty = errors.New("queue: container is empty")

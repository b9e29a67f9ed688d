package queue_test

import (
	"fmt"

	"github.com/katalvlaran/percolate/queue"
)

// ExampleDeque pushes at both ends and pops from both ends.
func ExampleDeque() {
	d := queue.NewDeque[int]()
	d.PushFront(2)
	d.PushFront(1)
	d.PushBack(3)
	fmt.Println(d, d.Len())

	front, _ := d.PopFront()
	back, _ := d.PopBack()
	fmt.Println(front, back, d)

	// Output:
	// [1 2 3] 3
	// 1 3 [2]
}

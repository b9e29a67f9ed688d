package unionfind

import (
	"errors"
	"fmt"
)

// Sentinel errors for union-find operations.
var (
	// ErrInvalidSize indicates a negative element count was passed to New.
	ErrInvalidSize = errors.New("unionfind: element count must be non-negative")
	// ErrIndexOutOfRange indicates an element outside [0, n).
	ErrIndexOutOfRange = errors.New("unionfind: index out of range")
)

// UF is a weighted quick-union disjoint-set with full path compression.
// parent[i] == i marks a root; size[r] is only meaningful for roots.
type UF struct {
	parent []int
	size   []int
	count  int // number of disjoint sets
}

// outOfRange builds an ErrIndexOutOfRange error carrying the offending element.
func outOfRange(p, n int) error {
	return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, p, n)
}

package percolation

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument indicates a non-positive grid size or a coordinate
	// outside [1, n].
	ErrInvalidArgument = errors.New("percolation: invalid argument")
	// ErrInternal indicates the union-find layer rejected an index the grid
	// computed itself.
	ErrInternal = errors.New("percolation: internal error")
)

// coordErrorf reports an out-of-range (row, col) for the named operation.
func coordErrorf(op string, row, col, n int) error {
	return fmt.Errorf("%s(%d, %d): %w: row and col must be in [1,%d]", op, row, col, ErrInvalidArgument, n)
}

// internalErrorf wraps a union-find failure so both sentinels stay matchable.
func internalErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrInternal, err)
}

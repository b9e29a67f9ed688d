package stats

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates a non-positive grid size or trial count.
var ErrInvalidArgument = errors.New("stats: invalid argument")

// statsErrorf prefixes err with the operation tag, keeping it matchable.
func statsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

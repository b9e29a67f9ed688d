// Package percolation models an n×n grid of sites, each open or blocked,
// and answers whether the system percolates: whether some path of open
// sites joins the top row to the bottom row.
//
// What:
//
//   - Grid starts fully blocked; Open flips one site at a time and never
//     re-blocks it.
//   - IsFull reports whether an open site is joined to the top row.
//   - Percolates reports whether the top row is joined to the bottom row.
//   - Clusters lists the connected groups of open sites (4-connectivity).
//
// How:
//
//	Two union-find structures are kept side by side, each extended with
//	virtual nodes that stand for an entire row:
//
//	  fullUF      sites + virtual top               (n²+1 elements)
//	  percolateUF sites + virtual top + virtual bottom (n²+2 elements)
//
//	Percolates is a single connectivity query between the two virtual nodes
//	of percolateUF. IsFull must not use that structure: once the system
//	percolates, every open site touching the bottom row would appear joined
//	to the top through the virtual bottom ("backwash"). fullUF has no bottom
//	node, so it only sees genuine top-down paths.
//
// Coordinates are 1-indexed: row and col range over [1, n]. Site (row, col)
// maps to the element (row-1)*n + col; element 0 is the virtual top and
// n²+1 the virtual bottom.
//
// Complexity:
//
//   - New:        O(n²) time and memory.
//   - Open:       O(α(n²)) amortized (at most 6 unions per structure).
//   - IsFull:     O(α(n²)) amortized.
//   - Percolates: O(α(n²)) amortized.
//   - Clusters:   O(n²·α(n²)).
//
// Errors:
//
//   - ErrInvalidArgument: n ≤ 0, n > MaxN, or row/col outside [1, n].
//   - ErrInternal:        an index computed by the grid was rejected by the
//     union-find layer; this indicates a bug, not bad input.
//
// A Grid is not safe for concurrent use.
package percolation

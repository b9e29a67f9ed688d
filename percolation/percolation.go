package percolation

import (
	"fmt"

	"github.com/katalvlaran/percolate/unionfind"
)

// Operation names used when wrapping errors.
const (
	opNew    = "New"
	opOpen   = "Open"
	opIsOpen = "IsOpen"
	opIsFull = "IsFull"
)

// MaxN is the largest supported grid dimension. n²+2 union-find elements
// must stay addressable by a 32-bit int, so n is capped at 2^15.
const MaxN = 1 << 15

// New creates an n×n grid with every site blocked.
// Returns ErrInvalidArgument if n ≤ 0 or n > MaxN.
// Complexity: O(n²) time and memory.
func New(n int) (*Grid, error) {
	// 1. Validate the size before n*n is formed, so it can never wrap.
	if n <= 0 {
		return nil, fmt.Errorf("%s(%d): %w: grid size must be positive", opNew, n, ErrInvalidArgument)
	}
	if n > MaxN {
		return nil, fmt.Errorf("%s(%d): %w: grid size must not exceed %d", opNew, n, ErrInvalidArgument, MaxN)
	}
	sites := n * n
	bottom := sites + 1

	// 2. Build both structures: fullUF has no virtual bottom, percolateUF has both.
	fullUF, err := unionfind.New(bottom)
	if err != nil {
		return nil, internalErrorf(opNew, err)
	}
	percolateUF, err := unionfind.New(bottom + 1)
	if err != nil {
		return nil, internalErrorf(opNew, err)
	}

	// 3. All sites start blocked; only the two virtual nodes count as open.
	g := &Grid{
		n:           n,
		open:        make([]bool, bottom+1),
		top:         0,
		bottom:      bottom,
		fullUF:      fullUF,
		percolateUF: percolateUF,
	}
	g.open[g.top] = true
	g.open[g.bottom] = true

	return g, nil
}

// N returns the grid dimension.
func (g *Grid) N() int {
	return g.n
}

// Sites returns the number of real sites, n².
func (g *Grid) Sites() int {
	return g.n * g.n
}

// InBounds reports whether (row, col) lies within [1, n]×[1, n].
func (g *Grid) InBounds(row, col int) bool {
	return row >= 1 && row <= g.n && col >= 1 && col <= g.n
}

// index maps (row, col) to its union-find element: (row-1)*n + col.
func (g *Grid) index(row, col int) int {
	return (row-1)*g.n + col
}

// Open opens site (row, col) if it is not open already and joins it to every
// open 4-neighbour in both union-find structures. Top-row sites are joined to
// the virtual top in both structures; bottom-row sites are joined to the
// virtual bottom in percolateUF only. Opening an open site is a no-op.
// Returns ErrInvalidArgument if (row, col) is out of range.
// Complexity: O(α(n²)) amortized.
func (g *Grid) Open(row, col int) error {
	// 1. Validate coordinates and skip sites that are already open.
	if !g.InBounds(row, col) {
		return coordErrorf(opOpen, row, col, g.n)
	}
	site := g.index(row, col)
	if g.open[site] {
		return nil
	}

	// 2. Mark the site open; it is never re-blocked.
	g.open[site] = true
	g.opened++

	// 3. Attach row 1 to the virtual top in both structures and row n to the
	//    virtual bottom in percolateUF only (fullUF must stay backwash-free).
	if row == 1 {
		if err := g.unionBoth(site, g.top); err != nil {
			return err
		}
	}
	if row == g.n {
		if err := g.percolateUF.Union(site, g.bottom); err != nil {
			return internalErrorf(opOpen, err)
		}
	}
	// 4. Join every open 4-neighbour in both structures.
	for _, d := range neighborOffsets {
		nr, nc := row+d[0], col+d[1]
		if !g.InBounds(nr, nc) || !g.open[g.index(nr, nc)] {
			continue
		}
		if err := g.unionBoth(site, g.index(nr, nc)); err != nil {
			return err
		}
	}

	return nil
}

// unionBoth joins p and q in fullUF and percolateUF, keeping the two
// structures in step.
func (g *Grid) unionBoth(p, q int) error {
	if err := g.fullUF.Union(p, q); err != nil {
		return internalErrorf(opOpen, err)
	}
	if err := g.percolateUF.Union(p, q); err != nil {
		return internalErrorf(opOpen, err)
	}

	return nil
}

// IsOpen reports whether site (row, col) is open.
// Returns ErrInvalidArgument if (row, col) is out of range.
func (g *Grid) IsOpen(row, col int) (bool, error) {
	if !g.InBounds(row, col) {
		return false, coordErrorf(opIsOpen, row, col, g.n)
	}

	return g.open[g.index(row, col)], nil
}

// IsFull reports whether site (row, col) is joined to the top row by a path
// of open sites. The query runs against fullUF, which has no virtual bottom,
// so a percolating system never makes unrelated bottom sites look full.
// Returns ErrInvalidArgument if (row, col) is out of range.
// Complexity: O(α(n²)) amortized.
func (g *Grid) IsFull(row, col int) (bool, error) {
	if !g.InBounds(row, col) {
		return false, coordErrorf(opIsFull, row, col, g.n)
	}
	full, err := g.fullUF.Connected(g.top, g.index(row, col))
	if err != nil {
		return false, internalErrorf(opIsFull, err)
	}

	return full, nil
}

// NumberOfOpenSites returns how many sites have been opened.
func (g *Grid) NumberOfOpenSites() int {
	return g.opened
}

// OpenFraction returns NumberOfOpenSites() / n².
func (g *Grid) OpenFraction() float64 {
	return float64(g.opened) / float64(g.Sites())
}

// Percolates reports whether the virtual top and virtual bottom are joined.
// For n == 1 this is true exactly when the single site is open.
// Complexity: O(α(n²)) amortized.
func (g *Grid) Percolates() bool {
	// Both virtual nodes are always valid elements of percolateUF.
	ok, _ := g.percolateUF.Connected(g.top, g.bottom)

	return ok
}

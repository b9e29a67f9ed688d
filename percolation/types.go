package percolation

import "github.com/katalvlaran/percolate/unionfind"

// Site identifies a grid cell by its 1-indexed row and column.
type Site struct {
	Row, Col int
}

// Grid is an n×n percolation system. It is created fully blocked and only
// mutated through Open.
type Grid struct {
	n      int
	open   []bool // open[i] for element i in [0, n²+1]; virtual nodes are always true
	opened int    // number of open sites, virtual nodes excluded

	top, bottom int // virtual node elements: 0 and n²+1

	fullUF      *unionfind.UF // sites + top only; answers IsFull
	percolateUF *unionfind.UF // sites + top + bottom; answers Percolates
}

// neighborOffsets are the 4-connectivity steps N, E, S, W as (dRow, dCol).
var neighborOffsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

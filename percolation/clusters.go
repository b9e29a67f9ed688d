package percolation

import (
	"strings"

	"github.com/katalvlaran/percolate/unionfind"
)

// Clusters returns every group of open sites connected through 4-neighbour
// links. Clusters are ordered by the row-major position of their first site,
// and sites within a cluster are in row-major order.
//
// The grid's own structures cannot answer this: the virtual top merges every
// cluster that touches row 1. A scratch union-find over the n² sites is
// built instead, so the grid itself is left untouched.
//
// Time:   O(n²·α(n²)).
// Memory: O(n²) for the scratch structure and output.
func (g *Grid) Clusters() ([][]Site, error) {
	sites := g.Sites()
	scratch, err := unionfind.New(sites)
	if err != nil {
		return nil, internalErrorf("Clusters", err)
	}

	// Joining each open site to its open east and south neighbours covers
	// every 4-neighbour pair exactly once.
	for row := 1; row <= g.n; row++ {
		for col := 1; col <= g.n; col++ {
			if !g.open[g.index(row, col)] {
				continue
			}
			for _, d := range [2][2]int{{0, 1}, {1, 0}} {
				nr, nc := row+d[0], col+d[1]
				if !g.InBounds(nr, nc) || !g.open[g.index(nr, nc)] {
					continue
				}
				if err = scratch.Union(g.index(row, col)-1, g.index(nr, nc)-1); err != nil {
					return nil, internalErrorf("Clusters", err)
				}
			}
		}
	}

	slot := make(map[int]int) // root -> position in clusters
	var clusters [][]Site
	for row := 1; row <= g.n; row++ {
		for col := 1; col <= g.n; col++ {
			if !g.open[g.index(row, col)] {
				continue
			}
			root, err := scratch.Find(g.index(row, col) - 1)
			if err != nil {
				return nil, internalErrorf("Clusters", err)
			}
			i, seen := slot[root]
			if !seen {
				i = len(clusters)
				slot[root] = i
				clusters = append(clusters, nil)
			}
			clusters[i] = append(clusters[i], Site{Row: row, Col: col})
		}
	}

	return clusters, nil
}

// Glyphs used by String.
const (
	glyphBlocked = '#'
	glyphOpen    = '.'
	glyphFull    = '~'
)

// String renders the grid one row per line: '#' blocked, '.' open, '~' full.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.n * (g.n + 1))
	for row := 1; row <= g.n; row++ {
		for col := 1; col <= g.n; col++ {
			site := g.index(row, col)
			switch {
			case !g.open[site]:
				sb.WriteByte(glyphBlocked)
			case g.isFullIndex(site):
				sb.WriteByte(glyphFull)
			default:
				sb.WriteByte(glyphOpen)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// isFullIndex is IsFull for an element already known to be valid.
func (g *Grid) isFullIndex(site int) bool {
	ok, _ := g.fullUF.Connected(g.top, site)

	return ok
}

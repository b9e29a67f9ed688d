package percolation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolate/percolation"
)

// fixture3 opens, on a 3×3 grid:
//
//	~ ~ #
//	# # .
//	. # .
//
// giving clusters {(1,1),(1,2)}, {(2,3),(3,3)} and {(3,1)}.
func fixture3(t *testing.T) *percolation.Grid {
	return mustGrid(t, 3,
		percolation.Site{Row: 1, Col: 1},
		percolation.Site{Row: 1, Col: 2},
		percolation.Site{Row: 3, Col: 1},
		percolation.Site{Row: 2, Col: 3},
		percolation.Site{Row: 3, Col: 3},
	)
}

func TestClusters_Fixture(t *testing.T) {
	g := fixture3(t)

	got, err := g.Clusters()
	require.NoError(t, err)
	want := [][]percolation.Site{
		{{Row: 1, Col: 1}, {Row: 1, Col: 2}},
		{{Row: 2, Col: 3}, {Row: 3, Col: 3}},
		{{Row: 3, Col: 1}},
	}
	assert.Equal(t, want, got)
}

func TestClusters_TopRowStaysSeparate(t *testing.T) {
	g := mustGrid(t, 3,
		percolation.Site{Row: 1, Col: 1},
		percolation.Site{Row: 1, Col: 3},
	)
	got, err := g.Clusters()
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestClusters_Empty(t *testing.T) {
	got, err := mustGrid(t, 4).Clusters()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestString_Fixture(t *testing.T) {
	assert.Equal(t, "~~#\n##.\n.#.\n", fixture3(t).String())
}

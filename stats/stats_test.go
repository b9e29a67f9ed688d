package stats_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolate/percolation"
	"github.com/katalvlaran/percolate/stats"
)

func TestNew_InvalidArguments(t *testing.T) {
	cases := []struct{ n, trials int }{
		{0, 10}, {-1, 10}, {5, 0}, {5, -3}, {0, 0},
	}
	for _, tc := range cases {
		s, err := stats.New(tc.n, tc.trials, stats.WithSeed(1))
		assert.Nil(t, s)
		assert.ErrorIs(t, err, stats.ErrInvalidArgument, "n=%d trials=%d", tc.n, tc.trials)
	}
}

func TestNew_TwoByTwo(t *testing.T) {
	s, err := stats.New(2, 100, stats.WithSeed(42))
	require.NoError(t, err)

	assert.Equal(t, 100, s.Trials())
	assert.Greater(t, s.Mean(), 0.0)
	assert.LessOrEqual(t, s.Mean(), 1.0)
	assert.GreaterOrEqual(t, s.Stddev(), 0.0)
	assert.LessOrEqual(t, s.ConfidenceLo(), s.Mean())
	assert.GreaterOrEqual(t, s.ConfidenceHi(), s.Mean())

	// a 2×2 grid percolates after 2, 3 or 4 open sites
	for _, x := range s.Samples() {
		assert.Contains(t, []float64{0.5, 0.75, 1.0}, x)
	}
}

func TestNew_SingleSiteGrid(t *testing.T) {
	s, err := stats.New(1, 10, stats.WithSeed(3))
	require.NoError(t, err)
	assert.Equal(t, 1.0, s.Mean())
	assert.Equal(t, 0.0, s.Stddev())
	assert.Equal(t, 1.0, s.ConfidenceLo())
	assert.Equal(t, 1.0, s.ConfidenceHi())
	assert.Equal(t, 10, s.Draws())
}

func TestNew_SingleTrialStddevNaN(t *testing.T) {
	s, err := stats.New(4, 1, stats.WithSeed(3))
	require.NoError(t, err)
	assert.False(t, math.IsNaN(s.Mean()))
	assert.True(t, math.IsNaN(s.Stddev()))
	assert.True(t, math.IsNaN(s.ConfidenceLo()))
	assert.True(t, math.IsNaN(s.ConfidenceHi()))
}

func TestNew_SeedIsReproducible(t *testing.T) {
	a, err := stats.New(8, 20, stats.WithSeed(99))
	require.NoError(t, err)
	b, err := stats.New(8, 20, stats.WithRand(rand.New(rand.NewSource(99))))
	require.NoError(t, err)

	assert.Equal(t, a.Samples(), b.Samples())
	assert.Equal(t, a.Summary(), b.Summary())
	assert.Equal(t, a.Draws(), b.Draws())
}

func TestNew_ConfidenceFormula(t *testing.T) {
	s, err := stats.New(6, 30, stats.WithSeed(5))
	require.NoError(t, err)

	half := 1.96 * s.Stddev() / math.Sqrt(30)
	assert.InDelta(t, s.Mean()-half, s.ConfidenceLo(), 1e-12)
	assert.InDelta(t, s.Mean()+half, s.ConfidenceHi(), 1e-12)

	sum := s.Summary()
	assert.Equal(t, 30, sum.Trials)
	assert.Equal(t, s.Mean(), sum.Mean)
}

func TestNew_ThresholdNearKnownValue(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping threshold estimate in short mode")
	}
	s, err := stats.New(20, 200, stats.WithSeed(42))
	require.NoError(t, err)
	// p* ≈ 0.5927 for site percolation on the square lattice
	assert.InDelta(t, 0.593, s.Mean(), 0.04)
}

func TestNew_ShuffledPicker(t *testing.T) {
	const n, trials = 5, 40
	s, err := stats.New(n, trials, stats.WithSeed(8), stats.WithPicker(stats.PickShuffled))
	require.NoError(t, err)

	// without replacement every draw opens a new site
	opened := 0
	for _, x := range s.Samples() {
		opened += int(math.Round(x * n * n))
	}
	assert.Equal(t, opened, s.Draws())

	uniform, err := stats.New(n, trials, stats.WithSeed(8))
	require.NoError(t, err)
	opened = 0
	for _, x := range uniform.Samples() {
		opened += int(math.Round(x * n * n))
	}
	assert.GreaterOrEqual(t, uniform.Draws(), opened)
}

func TestSamples_IsCopy(t *testing.T) {
	s, err := stats.New(3, 5, stats.WithSeed(1))
	require.NoError(t, err)
	xs := s.Samples()
	xs[0] = -1
	assert.NotEqual(t, -1.0, s.Samples()[0])
}

func TestMeanStddev(t *testing.T) {
	xs := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.InDelta(t, 5.0, stats.Mean(xs), 1e-12)
	// sample variance 32/7
	assert.InDelta(t, math.Sqrt(32.0/7.0), stats.Stddev(xs), 1e-12)

	assert.True(t, math.IsNaN(stats.Mean(nil)))
	assert.True(t, math.IsNaN(stats.Stddev([]float64{1})))
}

func TestPicker_Parse(t *testing.T) {
	for _, p := range []stats.Picker{stats.PickUniform, stats.PickShuffled} {
		got, ok := stats.ParsePicker(p.String())
		assert.True(t, ok)
		assert.Equal(t, p, got)
	}
	_, ok := stats.ParsePicker("sorted")
	assert.False(t, ok)
}

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { stats.WithRand(nil) })
	assert.Panics(t, func() { stats.WithLogger(nil) })
	assert.Panics(t, func() { stats.WithPicker(stats.Picker(7)) })
}

func TestNew_GridTooLarge(t *testing.T) {
	s, err := stats.New(percolation.MaxN+1, 1, stats.WithSeed(1))
	assert.Nil(t, s)
	assert.ErrorIs(t, err, stats.ErrInvalidArgument)
}

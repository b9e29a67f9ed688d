package stats

import (
	"fmt"
	"math/rand"

	"github.com/op/go-logging"

	"github.com/katalvlaran/percolate/percolation"
	"github.com/katalvlaran/percolate/queue"
)

const opNew = "New"

// Stats holds the samples of a finished simulation. It is immutable once New
// returns.
type Stats struct {
	n       int
	samples []float64 // open fraction per trial, each in (0, 1]
	draws   int       // random site draws over all trials
	summary Summary
}

// New runs trials independent percolation experiments on an n×n grid.
// Returns ErrInvalidArgument if n ≤ 0, n > percolation.MaxN or trials ≤ 0.
// Complexity: O(trials·n²·α(n²)) expected time, O(n² + trials) memory.
func New(n, trials int, opts ...Option) (*Stats, error) {
	if n <= 0 || trials <= 0 {
		return nil, statsErrorf(opNew, fmt.Errorf("%w: n=%d trials=%d, both must be positive", ErrInvalidArgument, n, trials))
	}
	if n > percolation.MaxN {
		return nil, statsErrorf(opNew, fmt.Errorf("%w: n=%d exceeds %d", ErrInvalidArgument, n, percolation.MaxN))
	}
	cfg := newConfig(opts...)

	var m *metrics
	if cfg.reg != nil {
		var err error
		if m, err = newMetrics(cfg.reg); err != nil {
			return nil, statsErrorf(opNew, err)
		}
	}

	s := &Stats{
		n:       n,
		samples: make([]float64, trials),
	}
	sim := trialRunner{n: n, rng: cfg.rng, picker: cfg.picker}
	for i := 0; i < trials; i++ {
		fraction, draws, err := sim.run()
		if err != nil {
			return nil, statsErrorf(opNew, fmt.Errorf("trial %d: %w", i, err))
		}
		s.samples[i] = fraction
		s.draws += draws
		m.observe(fraction, draws)
		if cfg.logger.IsEnabledFor(logging.DEBUG) {
			cfg.logger.Debugf("trial %d/%d: n=%d threshold=%.6f draws=%d", i+1, trials, n, fraction, draws)
		}
	}
	s.summary = summarize(s.samples)
	cfg.logger.Infof("%d trials on %dx%d (%s): mean=%.6f stddev=%.6f",
		trials, n, n, cfg.picker, s.summary.Mean, s.summary.Stddev)

	return s, nil
}

// N returns the grid dimension used by every trial.
func (s *Stats) N() int { return s.n }

// Trials returns the number of trials run.
func (s *Stats) Trials() int { return len(s.samples) }

// Samples returns a copy of the per-trial open fractions.
func (s *Stats) Samples() []float64 {
	out := make([]float64, len(s.samples))
	copy(out, s.samples)

	return out
}

// Draws returns the total number of random site draws over all trials.
func (s *Stats) Draws() int { return s.draws }

// Mean returns the sample mean of the percolation threshold.
func (s *Stats) Mean() float64 { return s.summary.Mean }

// Stddev returns the sample standard deviation of the percolation threshold.
// It is NaN when only one trial was run.
func (s *Stats) Stddev() float64 { return s.summary.Stddev }

// ConfidenceLo returns the low endpoint of the 95% confidence interval.
func (s *Stats) ConfidenceLo() float64 { return s.summary.ConfidenceLo }

// ConfidenceHi returns the high endpoint of the 95% confidence interval.
func (s *Stats) ConfidenceHi() float64 { return s.summary.ConfidenceHi }

// Summary returns all estimates at once.
func (s *Stats) Summary() Summary { return s.summary }

// trialRunner runs single trials with a shared random source.
type trialRunner struct {
	n      int
	rng    *rand.Rand
	picker Picker
}

// run opens sites on a fresh grid until it percolates and returns the open
// fraction and the number of random draws it took.
func (tr trialRunner) run() (float64, int, error) {
	g, err := percolation.New(tr.n)
	if err != nil {
		return 0, 0, err
	}

	draws := 0
	switch tr.picker {
	case PickShuffled:
		blocked := queue.NewRandomizedQueue[percolation.Site](tr.rng)
		for row := 1; row <= tr.n; row++ {
			for col := 1; col <= tr.n; col++ {
				blocked.Enqueue(percolation.Site{Row: row, Col: col})
			}
		}
		for !g.Percolates() {
			site, err := blocked.Dequeue()
			if err != nil {
				return 0, draws, err
			}
			draws++
			if err = g.Open(site.Row, site.Col); err != nil {
				return 0, draws, err
			}
		}
	default:
		for !g.Percolates() {
			draws++
			if err = g.Open(tr.rng.Intn(tr.n)+1, tr.rng.Intn(tr.n)+1); err != nil {
				return 0, draws, err
			}
		}
	}

	return g.OpenFraction(), draws, nil
}

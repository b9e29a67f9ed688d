// Package stats estimates the percolation threshold of an n×n grid by Monte
// Carlo simulation.
//
// What:
//
//	New runs T independent trials. Each trial builds a fresh
//	percolation.Grid, opens random sites until the grid percolates, and
//	records the fraction of sites that ended up open. The recorded samples
//	yield:
//
//	  Mean()          x̄  = Σ xᵢ / T
//	  Stddev()        s  = √( Σ (xᵢ − x̄)² / (T − 1) )
//	  ConfidenceLo()  x̄ − 1.96·s/√T
//	  ConfidenceHi()  x̄ + 1.96·s/√T
//
//	With T == 1 the sample standard deviation is undefined and Stddev, and
//	with it both confidence bounds, are NaN.
//
// Site selection:
//
//   - PickUniform (default): every draw picks row and col uniformly in
//     [1, n]; drawing an already-open site is a no-op, so the policy is
//     rejection sampling over blocked sites.
//   - PickShuffled: blocked sites are drawn without replacement from a
//     queue.RandomizedQueue, so every draw opens a new site.
//
//	Both policies give the same distribution of the recorded open fraction;
//	they differ only in the number of random draws.
//
// Options:
//
//   - WithSeed / WithRand: reproducible randomness (default: time-seeded).
//   - WithPicker: site-selection policy.
//   - WithLogger: go-logging logger for per-trial debug lines.
//   - WithRegisterer: Prometheus registerer for trial metrics.
//
// Errors:
//
//   - ErrInvalidArgument: n ≤ 0 or trials ≤ 0.
//
// Trials run sequentially on the calling goroutine.
package stats

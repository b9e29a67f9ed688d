// Package percolate estimates percolation thresholds by Monte Carlo
// simulation over a union-find backed grid.
//
// What is percolation?
//
//	Take an n×n grid whose sites are each open with probability p. The
//	system percolates when a path of open sites joins the top row to the
//	bottom row. On large grids there is a sharp threshold p* ≈ 0.5927:
//	below it systems almost never percolate, above it they almost always do.
//	The model describes porous materials, conductivity of composites and
//	water flowing through soil.
//
// Packages, leaves first:
//
//	unionfind/   weighted quick-union with full path compression
//	percolation/ n×n Grid over two union-find structures (no backwash)
//	stats/       Monte Carlo driver: mean, stddev, 95% confidence interval
//	queue/       generic Deque and RandomizedQueue containers
//	config/      viper/pflag configuration for the command-line tools
//	cmd/         percolationstats and permutation binaries
//
// Quick start:
//
//	s, err := stats.New(200, 100, stats.WithSeed(1))
//	if err != nil { … }
//	fmt.Println(s.Mean(), s.ConfidenceLo(), s.ConfidenceHi())
//
//	go install github.com/katalvlaran/percolate/cmd/percolationstats@latest
package percolate

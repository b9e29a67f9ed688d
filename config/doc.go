// Package config loads command-line configuration for the percolate tools.
//
// Values are resolved through viper with the usual precedence:
//
//	positional argument > flag > PERCOLATION_* environment variable > default
//
// so `percolationstats 200 100`, `percolationstats --n 200 --trials 100` and
// `PERCOLATION_N=200 PERCOLATION_TRIALS=100 percolationstats` are equivalent.
// Integer values are read as base 10 from every source, so "010" is 10.
// Every failure, including a non-numeric value or a grid size above
// percolation.MaxN, is reported as ErrInvalidConfig.
package config

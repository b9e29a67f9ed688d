package stats

import "math"

// confidence95 is the two-sided 95% z-score of the standard normal.
const confidence95 = 1.96

// Summary bundles the estimates of one simulation.
type Summary struct {
	Trials       int
	Mean         float64
	Stddev       float64
	ConfidenceLo float64
	ConfidenceHi float64
}

// Mean returns the arithmetic mean of xs, or NaN for an empty slice.
// Complexity: O(len(xs)).
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}

	return sum / float64(len(xs))
}

// Stddev returns the sample standard deviation of xs (divisor len(xs)-1).
// A single sample gives 0/0 and therefore NaN; no special case is made.
// Complexity: O(len(xs)).
func Stddev(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	mu := Mean(xs)
	var ss float64
	for _, x := range xs {
		d := x - mu
		ss += d * d
	}

	return math.Sqrt(ss / float64(len(xs)-1))
}

// summarize computes every estimate of xs in one place.
func summarize(xs []float64) Summary {
	mu, s := Mean(xs), Stddev(xs)
	half := confidence95 * s / math.Sqrt(float64(len(xs)))

	return Summary{
		Trials:       len(xs),
		Mean:         mu,
		Stddev:       s,
		ConfidenceLo: mu - half,
		ConfidenceHi: mu + half,
	}
}

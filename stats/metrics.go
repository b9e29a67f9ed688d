package stats

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// metrics are the collectors a simulation updates when a registerer is set.
type metrics struct {
	trials    prometheus.Counter
	draws     prometheus.Counter
	threshold prometheus.Histogram
}

// newMetrics registers the collectors on reg. Collectors that are already
// registered (a second simulation on the same registry) are reused.
func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		trials: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "percolate",
			Name:      "trials_total",
			Help:      "Completed percolation trials.",
		}),
		draws: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "percolate",
			Name:      "site_draws_total",
			Help:      "Random site draws, including draws of already-open sites.",
		}),
		threshold: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "percolate",
			Name:      "threshold",
			Help:      "Open-site fraction at which a trial percolated.",
			Buckets:   prometheus.LinearBuckets(0.05, 0.05, 20),
		}),
	}

	var err error
	if m.trials, err = register(reg, m.trials); err != nil {
		return nil, err
	}
	if m.draws, err = register(reg, m.draws); err != nil {
		return nil, err
	}
	if m.threshold, err = register(reg, m.threshold); err != nil {
		return nil, err
	}

	return m, nil
}

// register adds c to reg, returning the existing collector if an identical
// one is already registered.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}

	return c, nil
}

// observe records one finished trial. A nil receiver is a no-op.
func (m *metrics) observe(fraction float64, draws int) {
	if m == nil {
		return
	}
	m.trials.Inc()
	m.draws.Add(float64(draws))
	m.threshold.Observe(fraction)
}

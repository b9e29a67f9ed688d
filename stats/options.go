package stats

import (
	"math/rand"
	"time"

	"github.com/op/go-logging"
	"github.com/prometheus/client_golang/prometheus"
)

// Picker selects how a trial chooses the next site to open.
type Picker int

const (
	// PickUniform draws (row, col) uniformly over all n² sites; draws that
	// hit an open site are no-ops.
	PickUniform Picker = iota
	// PickShuffled draws blocked sites without replacement.
	PickShuffled
)

// String returns the picker name used on the command line.
func (p Picker) String() string {
	switch p {
	case PickUniform:
		return "uniform"
	case PickShuffled:
		return "shuffled"
	default:
		return "unknown"
	}
}

// ParsePicker maps a command-line name to a Picker.
func ParsePicker(name string) (Picker, bool) {
	switch name {
	case "uniform":
		return PickUniform, true
	case "shuffled":
		return PickShuffled, true
	default:
		return 0, false
	}
}

// logModule names the package logger.
const logModule = "percolate.stats"

// log is the package logger; WithLogger replaces it per Stats.
var log = logging.MustGetLogger(logModule)

// The package logger stays at WARNING until the application installs its own
// backend, so library callers get no per-trial DEBUG or summary INFO lines.
// Pass WithLogger to see them.
func init() {
	logging.SetLevel(logging.WARNING, logModule)
}

// Option customizes a simulation run.
type Option func(*config)

// config holds every knob New reads; options apply in order, last wins.
type config struct {
	rng    *rand.Rand
	picker Picker
	logger *logging.Logger
	reg    prometheus.Registerer
}

// newConfig applies opts over the defaults: time-seeded RNG, PickUniform,
// the package logger, no metrics.
func newConfig(opts ...Option) config {
	cfg := config{
		picker: PickUniform,
		logger: log,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}

// WithSeed uses a deterministic source seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r as the randomness source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("stats: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithPicker selects the site-selection policy. Panics on an unknown Picker.
func WithPicker(p Picker) Option {
	if p != PickUniform && p != PickShuffled {
		panic("stats: WithPicker(unknown)")
	}
	return func(c *config) {
		c.picker = p
	}
}

// WithLogger routes per-trial logging to l. Panics on nil.
func WithLogger(l *logging.Logger) Option {
	if l == nil {
		panic("stats: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithRegisterer records trial metrics on reg. A nil reg disables metrics.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(c *config) {
		c.reg = reg
	}
}

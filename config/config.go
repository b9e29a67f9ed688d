package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/op/go-logging"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/percolate/percolation"
	"github.com/katalvlaran/percolate/stats"
)

// ErrInvalidConfig indicates a missing, malformed or out-of-range setting.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix prefixes every environment variable, e.g. PERCOLATION_TRIALS.
const EnvPrefix = "percolation"

// Setting keys; flags share these names.
const (
	keyN        = "n"
	keyTrials   = "trials"
	keyK        = "k"
	keySeed     = "seed"
	keyPicker   = "picker"
	keyLogLevel = "log-level"
	keyVerbose  = "verbose"
)

const defaultLogLevel = "WARNING"

// Stats configures cmd/percolationstats.
type Stats struct {
	N        int
	Trials   int
	Seed     int64
	HasSeed  bool // false: time-seeded randomness
	Picker   stats.Picker
	LogLevel logging.Level
	Verbose  bool
}

// Options turns the configuration into stats options.
func (c Stats) Options() []stats.Option {
	opts := []stats.Option{stats.WithPicker(c.Picker)}
	if c.HasSeed {
		opts = append(opts, stats.WithSeed(c.Seed))
	}

	return opts
}

// Sample configures cmd/permutation.
type Sample struct {
	K        int
	Seed     int64
	HasSeed  bool
	LogLevel logging.Level
}

// LoadStats parses args (without the program name) for the stats driver.
func LoadStats(name string, args []string) (Stats, error) {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String(keyN, "", "grid size n (n×n sites), decimal")
	fs.String(keyTrials, "", "number of independent trials, decimal")
	fs.String(keyPicker, stats.PickUniform.String(), "site picker: uniform or shuffled")
	fs.Bool(keyVerbose, false, "print trial and draw counts")
	addCommon(fs)

	v, err := bind(fs, args, keyN, keyTrials)
	if err != nil {
		return Stats{}, err
	}

	var cfg Stats
	if cfg.N, err = positiveInt(v, keyN); err != nil {
		return Stats{}, err
	}
	if cfg.N > percolation.MaxN {
		return Stats{}, fmt.Errorf("%w: %s=%d exceeds %d", ErrInvalidConfig, keyN, cfg.N, percolation.MaxN)
	}
	if cfg.Trials, err = positiveInt(v, keyTrials); err != nil {
		return Stats{}, err
	}
	var ok bool
	if cfg.Picker, ok = stats.ParsePicker(v.GetString(keyPicker)); !ok {
		return Stats{}, fmt.Errorf("%w: %s=%q, want uniform or shuffled", ErrInvalidConfig, keyPicker, v.GetString(keyPicker))
	}
	if cfg.Seed, cfg.HasSeed, err = seed(v); err != nil {
		return Stats{}, err
	}
	if cfg.LogLevel, err = logLevel(v); err != nil {
		return Stats{}, err
	}
	cfg.Verbose = v.GetBool(keyVerbose)

	return cfg, nil
}

// LoadSample parses args (without the program name) for the permutation tool.
func LoadSample(name string, args []string) (Sample, error) {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String(keyK, "", "number of strings to print, decimal")
	addCommon(fs)

	v, err := bind(fs, args, keyK)
	if err != nil {
		return Sample{}, err
	}

	var cfg Sample
	if cfg.K, err = decimalInt(v, keyK); err != nil {
		return Sample{}, err
	}
	if cfg.K < 0 {
		return Sample{}, fmt.Errorf("%w: %s=%d must be non-negative", ErrInvalidConfig, keyK, cfg.K)
	}
	if cfg.Seed, cfg.HasSeed, err = seed(v); err != nil {
		return Sample{}, err
	}
	if cfg.LogLevel, err = logLevel(v); err != nil {
		return Sample{}, err
	}

	return cfg, nil
}

// addCommon defines the flags shared by every tool.
func addCommon(fs *pflag.FlagSet) {
	fs.Int64(keySeed, 0, "random seed (default: time-seeded)")
	fs.String(keyLogLevel, defaultLogLevel, "log level: CRITICAL, ERROR, WARNING, NOTICE, INFO, DEBUG")
}

// bind parses fs and returns a viper instance layered over env, flags and
// the positional arguments, which fill positional in order.
func bind(fs *pflag.FlagSet, args []string, positional ...string) (*viper.Viper, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	rest := fs.Args()
	if len(rest) > len(positional) {
		return nil, fmt.Errorf("%w: unexpected arguments %q", ErrInvalidConfig, rest[len(positional):])
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	for i, arg := range rest {
		v.Set(positional[i], arg)
	}

	return v, nil
}

// decimalInt reads key as a base-10 integer, whatever its source. Leading
// zeros do not switch to octal: "010" is 10.
func decimalInt(v *viper.Viper, key string) (int, error) {
	raw := strings.TrimSpace(v.GetString(key))
	if raw == "" {
		return 0, fmt.Errorf("%w: %s must be given", ErrInvalidConfig, key)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not a decimal integer", ErrInvalidConfig, key, raw)
	}

	return n, nil
}

// positiveInt reads key as a decimal integer > 0.
func positiveInt(v *viper.Viper, key string) (int, error) {
	n, err := decimalInt(v, key)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %s=%d must be positive", ErrInvalidConfig, key, n)
	}

	return n, nil
}

// seed reads the optional seed; the second result reports whether one was given.
func seed(v *viper.Viper) (int64, bool, error) {
	if !v.IsSet(keySeed) {
		return 0, false, nil
	}
	s, err := cast.ToInt64E(v.Get(keySeed))
	if err != nil {
		return 0, false, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, keySeed, err)
	}

	return s, true, nil
}

func logLevel(v *viper.Viper) (logging.Level, error) {
	lvl, err := logging.LogLevel(v.GetString(keyLogLevel))
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, keyLogLevel, err)
	}

	return lvl, nil
}

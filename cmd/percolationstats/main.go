// Command percolationstats estimates the percolation threshold of an n×n
// grid by running independent Monte Carlo trials.
//
// Usage:
//
//	percolationstats [flags] n trials
//
// Output:
//
//	mean                    = 0.5929934999999997
//	stddev                  = 0.00876990421552567
//	95% confidence interval = [0.5912745987737567, 0.5947124012262428]
//
// Flags and PERCOLATION_* environment variables are described by --help.
// A bad setting is reported on stderr with exit status 2.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/op/go-logging"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/percolate/config"
	"github.com/katalvlaran/percolate/stats"
)

const name = "percolationstats"

var log = logging.MustGetLogger(name)

// Exit statuses.
const (
	exitOK     = 0
	exitFailed = 1
	exitConfig = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, so tests can drive it.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.LoadStats(name, args)
	if errors.Is(err, pflag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "%s: configuration error: %v\n", name, err)
		return exitConfig
	}
	setupLogging(stderr, cfg.LogLevel)
	log.Debugf("config: n=%d trials=%d picker=%s seeded=%t", cfg.N, cfg.Trials, cfg.Picker, cfg.HasSeed)

	s, err := stats.New(cfg.N, cfg.Trials, cfg.Options()...)
	if err != nil {
		log.Errorf("simulation failed: %v", err)
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return exitFailed
	}

	fmt.Fprintf(stdout, "mean                    = %v\n", s.Mean())
	fmt.Fprintf(stdout, "stddev                  = %v\n", s.Stddev())
	fmt.Fprintf(stdout, "95%% confidence interval = [%v, %v]\n", s.ConfidenceLo(), s.ConfidenceHi())
	if cfg.Verbose {
		fmt.Fprintf(stdout, "trials                  = %d\n", s.Trials())
		fmt.Fprintf(stdout, "draws                   = %d\n", s.Draws())
	}

	return exitOK
}

// setupLogging sends every module's log lines to w at the given level.
func setupLogging(w io.Writer, level logging.Level) {
	backend := logging.NewLogBackend(w, "", 0)
	formatter := logging.MustStringFormatter(`%{time:15:04:05.000} %{module} %{level:.4s} %{message}`)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, formatter))
	leveled.SetLevel(level, "")
	logging.SetBackend(leveled)
}

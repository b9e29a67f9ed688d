// Command permutation reads whitespace-separated strings from stdin and
// prints k of them, chosen uniformly at random, one per line.
//
// Usage:
//
//	echo A B C D E F G H I | permutation 3
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/op/go-logging"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/percolate/config"
	"github.com/katalvlaran/percolate/queue"
)

const name = "permutation"

var log = logging.MustGetLogger(name)

const (
	exitOK     = 0
	exitFailed = 1
	exitConfig = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.LoadSample(name, args)
	if errors.Is(err, pflag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "%s: configuration error: %v\n", name, err)
		return exitConfig
	}
	logging.SetLevel(cfg.LogLevel, "")

	seed := time.Now().UnixNano()
	if cfg.HasSeed {
		seed = cfg.Seed
	}
	q := queue.NewRandomizedQueue[string](rand.New(rand.NewSource(seed)))

	sc := bufio.NewScanner(stdin)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		q.Enqueue(sc.Text())
	}
	if err = sc.Err(); err != nil {
		fmt.Fprintf(stderr, "%s: reading input: %v\n", name, err)
		return exitFailed
	}
	log.Debugf("read %d strings, printing %d", q.Len(), cfg.K)
	if cfg.K > q.Len() {
		fmt.Fprintf(stderr, "%s: configuration error: k=%d exceeds the %d strings read\n", name, cfg.K, q.Len())
		return exitConfig
	}

	w := bufio.NewWriter(stdout)
	for i := 0; i < cfg.K; i++ {
		s, err := q.Dequeue()
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", name, err)
			return exitFailed
		}
		fmt.Fprintln(w, s)
	}
	if err = w.Flush(); err != nil {
		fmt.Fprintf(stderr, "%s: writing output: %v\n", name, err)
		return exitFailed
	}

	return exitOK
}

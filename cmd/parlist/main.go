// Command parlist runs every parallel list operation with several thread
// counts on both execution strategies, checks that the strategies agree and
// prints a timing comparison.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"runtime"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/utkarsh5026/parlist/parallel"
	"github.com/utkarsh5026/parlist/pool"
)

type options struct {
	size    int
	threads []int
	workers int
	seed    int64
	ci      bool
	verbose bool
}

func parseFlags() options {
	var opts options
	pflag.IntVarP(&opts.size, "size", "n", 1_000_000, "number of elements in the generated list")
	pflag.IntSliceVarP(&opts.threads, "threads", "t", []int{1, 2, 4, runtime.NumCPU()}, "thread counts to run each operation with")
	pflag.IntVarP(&opts.workers, "workers", "w", 0, "worker goroutines in the shared pool (0 = number of CPUs)")
	pflag.Int64Var(&opts.seed, "seed", 1, "seed for the generated list")
	pflag.BoolVar(&opts.ci, "ci", false, "CI mode: plain progress lines instead of a progress bar")
	pflag.BoolVarP(&opts.verbose, "verbose", "v", false, "log pool lifecycle and chunk dispatch")
	pflag.Parse()

	if opts.workers <= 0 {
		opts.workers = runtime.NumCPU()
	}
	return opts
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}

func isCIMode(ciFlag bool) bool {
	if ciFlag {
		return true
	}

	for _, env := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "CIRCLECI", "JENKINS_HOME"} {
		if v := os.Getenv(env); v == "true" || v == "1" {
			return true
		}
	}
	return false
}

func generate(seed int64, n int) []int {
	rng := rand.New(rand.NewSource(seed))
	data := make([]int, n)
	for i := range data {
		data[i] = rng.Intn(2_000_001) - 1_000_000
	}
	return data
}

func run(ctx context.Context, opts options) error {
	logger, err := newLogger(opts.verbose)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	p, err := pool.New(opts.workers, pool.WithName("parlist"), pool.WithLogger(logger))
	if err != nil {
		return err
	}
	defer func() {
		if err := p.Close(); err != nil {
			logger.Warn("closing pool", zap.Error(err))
		}
	}()

	pooled := parallel.New(parallel.WithPool(p), parallel.WithLogger(logger))
	direct := parallel.New(parallel.WithLogger(logger))

	data := generate(opts.seed, opts.size)
	printConfiguration(opts)

	ops := operations()
	total := len(ops) * len(opts.threads)

	var bar *progressbar.ProgressBar
	ciMode := isCIMode(opts.ci)
	if !ciMode {
		bar = progressbar.NewOptions(total,
			progressbar.OptionSetDescription("Running operations"),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: "░",
				BarStart:      "│",
				BarEnd:        "│",
			}),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionClearOnFinish(),
		)
	}

	progress := func(done int, r result) {
		if bar != nil {
			_ = bar.Add(1)
			return
		}
		fmt.Printf("[%d/%d] %s threads=%d pool=%v goroutines=%v\n",
			done, total, r.operation, r.threads, r.pooled, r.direct)
	}

	results, err := runScenarios(ctx, pooled, direct, ops, opts.threads, data, progress)
	if err != nil {
		return err
	}

	printResults(results)
	printStats(p.Stats())

	if n := countMismatches(results); n > 0 {
		return fmt.Errorf("%d operation(s) disagreed between strategies", n)
	}
	return nil
}

func main() {
	opts := parseFlags()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts); err != nil {
		red.Fprintf(os.Stderr, "parlist: %v\n", err)
		stop()
		os.Exit(1)
	}
}

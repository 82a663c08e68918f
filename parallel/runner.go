package parallel

import (
	"go.uber.org/zap"

	"github.com/utkarsh5026/parlist/pool"
)

// Option configures a Runner.
type Option func(*config)

type config struct {
	pool   *pool.Pool
	logger *zap.Logger
}

// WithPool runs chunks as tasks on p instead of starting goroutines per call.
// The Runner does not own p; closing it remains the caller's job.
func WithPool(p *pool.Pool) Option {
	return func(cfg *config) {
		cfg.pool = p
	}
}

// WithLogger sets the logger used for debug output about dispatched chunks.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// Runner executes the chunks produced by Process. It is safe for concurrent
// use, and several calls may share one Runner.
type Runner struct {
	strategy strategy
	logger   *zap.Logger
}

// New creates a Runner. Without WithPool, chunks run on dedicated goroutines.
func New(opts ...Option) *Runner {
	cfg := &config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(cfg)
	}

	r := &Runner{
		strategy: goroutineStrategy{},
		logger:   cfg.logger,
	}
	if cfg.pool != nil {
		r.strategy = poolStrategy{pool: cfg.pool}
	}
	return r
}

// Strategy names how the Runner executes chunks: "pool" or "goroutines".
func (r *Runner) Strategy() string {
	return r.orDefault().strategy.name()
}

var defaultRunner = New()

func (r *Runner) orDefault() *Runner {
	if r == nil {
		return defaultRunner
	}
	return r
}

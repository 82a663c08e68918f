package pool

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Option is a functional option for configuring a Pool.
type Option func(*config)

type config struct {
	name        string
	logger      *zap.Logger
	rateLimiter *rate.Limiter
	cpuAffinity bool
}

func defaultConfig() *config {
	return &config{
		name:   uuid.NewString(),
		logger: zap.NewNop(),
	}
}

// WithName labels the pool in log output.
// If not specified, a random UUID is used.
func WithName(name string) Option {
	return func(cfg *config) {
		if name != "" {
			cfg.name = name
		}
	}
}

// WithLogger sets the logger used for pool lifecycle events.
// The pool never logs task failures; those are returned to the caller.
// If not specified, logging is disabled.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithRateLimit caps how fast workers start tasks.
// tasksPerSecond specifies the sustained rate and burst the number of tasks
// that may start back to back. Invalid values leave the pool unthrottled.
//
// Example:
//
//	WithRateLimit(100, 10) // 100 tasks/sec with bursts of 10
func WithRateLimit(tasksPerSecond float64, burst int) Option {
	return func(cfg *config) {
		if tasksPerSecond > 0 && burst > 0 {
			cfg.rateLimiter = rate.NewLimiter(rate.Limit(tasksPerSecond), burst)
		}
	}
}

// WithCPUAffinity locks every worker goroutine to its own OS thread for the
// lifetime of the pool and, on Linux, pins that thread to core
// workerID % NumCPU.
func WithCPUAffinity() Option {
	return func(cfg *config) {
		cfg.cpuAffinity = true
	}
}

package pool

import (
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ygrebnov/errorc"
	"go.uber.org/zap"

	"github.com/utkarsh5026/parlist/internal/cpu"
	"github.com/utkarsh5026/parlist/internal/queue"
)

// Task is a unit of deferred work. It closes over its input and over the
// slot its result is written to.
type Task func()

// Pool is a fixed-size worker pool backed by a single shared FIFO queue.
//
// Workers are started by New and live until Close. Tasks are dequeued in
// submission order, but with more than one worker their completion order is
// unspecified. A Pool is safe for concurrent use by multiple goroutines and
// may run several unrelated batches at once.
type Pool struct {
	cfg     *config
	workers int
	queue   *queue.Queue[Task]
	wg      sync.WaitGroup

	live      atomic.Int64
	submitted atomic.Int64
	completed atomic.Int64
}

// New starts a pool with the given number of worker goroutines.
// It fails with ErrInvalidArgument when workers is not positive.
//
// The returned pool must be closed exactly once when it is no longer needed:
//
//	p, err := pool.New(runtime.NumCPU())
//	if err != nil {
//	    return err
//	}
//	defer p.Close()
func New(workers int, opts ...Option) (*Pool, error) {
	if workers <= 0 {
		return nil, errorc.With(ErrInvalidArgument, errorc.String("workers", strconv.Itoa(workers)))
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	p := &Pool{
		cfg:     cfg,
		workers: workers,
		queue:   queue.New[Task](workers),
	}

	p.wg.Add(workers)
	p.live.Add(int64(workers))
	for i := range workers {
		go p.worker(i)
	}

	cfg.logger.Info("pool started",
		zap.String("pool", cfg.name),
		zap.Int("workers", workers),
		zap.Bool("cpuAffinity", cfg.cpuAffinity),
		zap.Bool("rateLimited", cfg.rateLimiter != nil),
	)
	return p, nil
}

// Submit enqueues a task and wakes one idle worker.
// It fails with ErrPoolClosed once Close has been called.
//
// A task submitted directly must not panic: like any goroutine, a panicking
// task terminates the program. Map and MapErr recover panics and report them
// as ErrTaskPanicked.
func (p *Pool) Submit(t Task) error {
	if t == nil {
		return errorc.With(ErrInvalidArgument, errorc.String("task", "nil"))
	}

	p.submitted.Add(1)
	if err := p.queue.Push(t); err != nil {
		p.submitted.Add(-1)
		return ErrPoolClosed
	}
	return nil
}

// Close stops accepting tasks, lets the workers drain the queue, and blocks
// until every worker goroutine has exited. Tasks in flight are not
// interrupted. Calling Close a second time returns ErrPoolClosed.
//
// Close must not be called from inside a task of the same pool.
func (p *Pool) Close() error {
	if !p.queue.Close() {
		return ErrPoolClosed
	}
	p.wg.Wait()

	p.cfg.logger.Info("pool closed",
		zap.String("pool", p.cfg.name),
		zap.Int64("completed", p.completed.Load()),
	)
	return nil
}

// Workers returns the fixed number of workers the pool was created with.
func (p *Pool) Workers() int {
	return p.workers
}

// Name returns the pool label used in log output.
func (p *Pool) Name() string {
	return p.cfg.name
}

// worker pulls tasks until the queue is closed and drained.
func (p *Pool) worker(id int) {
	defer p.wg.Done()
	defer p.live.Add(-1)

	if p.cfg.cpuAffinity {
		release, err := cpu.Pin(id)
		defer release()
		if err != nil {
			p.cfg.logger.Debug("cpu pinning unavailable",
				zap.String("pool", p.cfg.name),
				zap.Int("worker", id),
				zap.Error(err),
			)
		}
	}

	for {
		t, ok := p.queue.Pop()
		if !ok {
			return
		}
		p.execute(t)
	}
}

func (p *Pool) execute(t Task) {
	if l := p.cfg.rateLimiter; l != nil {
		// Reserve instead of Wait: the queue must still drain after Close,
		// so the delay cannot be tied to a cancellable context.
		if d := l.Reserve().Delay(); d > 0 {
			time.Sleep(d)
		}
	}

	t()
	p.completed.Add(1)
}

package pool

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/ygrebnov/errorc"

	"github.com/utkarsh5026/parlist/internal/safe"
)

// ProcessFunc processes a single element of a batch.
// It must be safe to call concurrently from several workers.
type ProcessFunc[T any, R any] func(ctx context.Context, elem T) (R, error)

// Map applies f to every element on the pool's workers and blocks until the
// whole batch has completed. Results are returned in input order regardless
// of the order in which the tasks finished.
//
// If ctx is cancelled while Map is waiting, it returns an error wrapping
// ErrInterrupted and ctx.Err(). Tasks already submitted still run; their
// results are discarded.
//
// A panic inside f fails the batch with ErrTaskPanicked.
//
// Example:
//
//	squares, err := pool.Map(ctx, p, []int{1, 2, 3}, func(n int) int {
//	    return n * n
//	})
//	// squares: [1 4 9]
func Map[T any, R any](ctx context.Context, p *Pool, elements []T, f func(T) R) ([]R, error) {
	return MapErr(ctx, p, elements, func(_ context.Context, v T) (R, error) {
		return f(v), nil
	})
}

// MapErr is Map for fallible functions.
//
// The batch fails fast: the first error (or recovered panic) is returned,
// tasks of the batch that have not started yet are skipped, and the context
// handed to the remaining running tasks is cancelled. No partial results are
// returned. The batch context carries ctx's values but not its cancellation,
// so interrupting the caller does not stop tasks that are already queued.
func MapErr[T any, R any](ctx context.Context, p *Pool, elements []T, f ProcessFunc[T, R]) ([]R, error) {
	if p == nil {
		return nil, errorc.With(ErrInvalidArgument, errorc.String("pool", "nil"))
	}
	if ctx.Err() != nil {
		return nil, interrupted(ctx)
	}
	if len(elements) == 0 {
		return []R{}, nil
	}

	b := newBatch[R](ctx, len(elements))
	for i := range elements {
		if err := p.Submit(newTask(b, i, elements[i], f)); err != nil {
			// Nothing from i onwards was queued; release their slots on the
			// counter so the wait below only covers submitted tasks.
			for range len(elements) - i {
				b.latch.countDown()
			}
			b.fail(err)
			break
		}
	}

	if err := b.latch.wait(ctx); err != nil {
		return nil, err
	}
	b.cancel()

	if b.err != nil {
		return nil, b.err
	}
	return b.results, nil
}

// batch is the bookkeeping owned by a single Map call: the result slots, the
// completion counter and the first failure. Batches sharing a pool never
// touch each other's state.
type batch[R any] struct {
	ctx     context.Context
	cancel  context.CancelFunc
	results []R
	latch   *latch

	failed  atomic.Bool
	errOnce sync.Once
	err     error
}

func newBatch[R any](parent context.Context, n int) *batch[R] {
	ctx, cancel := context.WithCancel(context.WithoutCancel(parent))
	return &batch[R]{
		ctx:     ctx,
		cancel:  cancel,
		results: make([]R, n),
		latch:   newLatch(n),
	}
}

func (b *batch[R]) fail(err error) {
	b.errOnce.Do(func() {
		b.err = err
		b.failed.Store(true)
		b.cancel()
	})
}

// newTask returns the closure computing slot i of b. Slot i is written only
// by this task, and at most once.
func newTask[T any, R any](b *batch[R], i int, elem T, f ProcessFunc[T, R]) Task {
	return func() {
		defer b.latch.countDown()

		if b.failed.Load() {
			return
		}

		var v R
		err := safe.Do(func() error {
			var err error
			v, err = f(b.ctx, elem)
			return err
		})
		if err != nil {
			b.fail(fmt.Errorf("element %d: %w", i, err))
			return
		}
		b.results[i] = v
	}
}

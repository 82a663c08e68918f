package parallel

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/utkarsh5026/parlist/internal/safe"
	"github.com/utkarsh5026/parlist/pool"
)

const (
	strategyPool       = "pool"
	strategyGoroutines = "goroutines"
)

// strategy runs job(ctx, i) for every i in [0, n) and waits for all of them.
// The first failing job fails the run.
type strategy interface {
	run(ctx context.Context, n int, job func(ctx context.Context, i int) error) error
	name() string
}

// poolStrategy submits each job as one task of a single batch on a shared pool.
type poolStrategy struct {
	pool *pool.Pool
}

func (s poolStrategy) run(ctx context.Context, n int, job func(context.Context, int) error) error {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	_, err := pool.MapErr(ctx, s.pool, indices, func(ctx context.Context, i int) (struct{}, error) {
		return struct{}{}, job(ctx, i)
	})
	return err
}

func (poolStrategy) name() string { return strategyPool }

// goroutineStrategy starts one goroutine per job for the duration of a call.
type goroutineStrategy struct{}

func (goroutineStrategy) run(ctx context.Context, n int, job func(context.Context, int) error) error {
	if ctx.Err() != nil {
		return fmt.Errorf("%w: %w", ErrInterrupted, ctx.Err())
	}

	// Jobs see the caller's values but not its cancellation, matching the
	// pool strategy: interruption releases the caller, not the goroutines.
	g, gctx := errgroup.WithContext(context.WithoutCancel(ctx))
	for i := range n {
		g.Go(func() error {
			err := safe.Do(func() error {
				return job(gctx, i)
			})
			if err != nil {
				return fmt.Errorf("chunk %d: %w", i, err)
			}
			return nil
		})
	}

	done := make(chan error, 1)
	go func() {
		done <- g.Wait()
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrInterrupted, ctx.Err())
	}
}

func (goroutineStrategy) name() string { return strategyGoroutines }

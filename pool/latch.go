package pool

import (
	"context"
	"fmt"
	"sync"
)

// latch is the completion counter of one batch. It starts at the batch size
// and is decremented exactly once per task; done is closed when it reaches
// zero.
type latch struct {
	mu        sync.Mutex
	remaining int
	done      chan struct{}
}

func newLatch(n int) *latch {
	l := &latch{
		remaining: n,
		done:      make(chan struct{}),
	}
	if n == 0 {
		close(l.done)
	}
	return l
}

func (l *latch) countDown() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.remaining == 0 {
		panic("pool: completion counter decremented past zero")
	}
	l.remaining--
	if l.remaining == 0 {
		close(l.done)
	}
}

// wait blocks until the counter reaches zero or ctx is done.
// Completion wins when both are ready.
func (l *latch) wait(ctx context.Context) error {
	select {
	case <-l.done:
		return nil
	default:
	}

	select {
	case <-l.done:
		return nil
	case <-ctx.Done():
		return interrupted(ctx)
	}
}

func (l *latch) pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.remaining
}

func interrupted(ctx context.Context) error {
	return fmt.Errorf("%w: %w", ErrInterrupted, ctx.Err())
}

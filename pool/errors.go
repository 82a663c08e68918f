package pool

import (
	"errors"

	"github.com/utkarsh5026/parlist/internal/safe"
)

var (
	// ErrPoolClosed is returned when submitting to, or closing, a pool that
	// has already been closed.
	ErrPoolClosed = errors.New("pool: pool is closed")

	// ErrInterrupted is returned when the caller's context is cancelled while
	// it waits for a batch. Tasks that were already submitted keep running.
	ErrInterrupted = errors.New("pool: interrupted while waiting for completion")

	// ErrInvalidArgument reports a non-positive worker or thread count, or a
	// nil pool or task.
	ErrInvalidArgument = errors.New("pool: invalid argument")

	// ErrTaskPanicked wraps a panic recovered from a user-supplied function.
	ErrTaskPanicked = safe.ErrPanicked
)

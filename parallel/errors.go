package parallel

import "github.com/utkarsh5026/parlist/pool"

// Sentinel errors shared with package pool, so callers need a single import
// to inspect failures with errors.Is.
var (
	ErrInvalidArgument = pool.ErrInvalidArgument
	ErrInterrupted     = pool.ErrInterrupted
	ErrTaskPanicked    = pool.ErrTaskPanicked
	ErrPoolClosed      = pool.ErrPoolClosed
)

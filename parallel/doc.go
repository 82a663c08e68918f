// Package parallel implements list-wide operations on top of one chunked
// primitive, Process.
//
// Process splits the input into at most threads contiguous chunks (see Split),
// runs a per-chunk function on every chunk concurrently, and combines the
// ordered partial results. The derived operations are thin specializations:
//
//	Join     concatenates the string form of every element
//	Filter   keeps the elements matching a predicate, in order
//	Map      transforms every element, in order
//	Maximum  returns the greatest element under a comparator
//	Minimum  returns the least element under a comparator
//	All      reports whether every element matches a predicate
//	Any      reports whether at least one element matches a predicate
//
// # Strategies
//
// A Runner decides how chunks are executed. A Runner built with WithPool runs
// every chunk as one task of a single pool.MapErr batch, sharing the pool's
// workers with every other caller. Without a pool, each call starts one
// goroutine per chunk and joins them before returning. Both strategies produce
// the same results for the same input. A nil *Runner uses goroutines.
//
//	p, err := pool.New(runtime.NumCPU())
//	if err != nil {
//	    return err
//	}
//	defer p.Close()
//
//	r := parallel.New(parallel.WithPool(p))
//	biggest, ok, err := parallel.Maximum(ctx, r, 4, values, cmp.Compare[int])
//
// # Errors
//
// A non-positive thread count fails with ErrInvalidArgument before anything is
// dispatched. Cancelling ctx while chunks run returns ErrInterrupted; chunks
// already running are not stopped. A panic in a user function fails the call
// with ErrTaskPanicked. User functions are invoked from several goroutines at
// once and must be safe for that.
package parallel

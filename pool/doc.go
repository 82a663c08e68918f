// Package pool provides a fixed-size worker pool with one shared FIFO task
// queue, and a batch coordinator that maps a function over a slice on that
// pool.
//
// # Basic Usage
//
//	p, err := pool.New(4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer p.Close()
//
//	lengths, err := pool.Map(ctx, p, []string{"a", "bb", "ccc"}, func(s string) int {
//	    return len(s)
//	})
//	// lengths: [1 2 3]
//
// # Workers and the Queue
//
// New starts the requested number of worker goroutines. Each worker blocks
// only while the queue is empty; Submit appends a task and wakes one idle
// worker. Tasks leave the queue in submission order, but completion order
// across workers is unspecified.
//
// Close stops accepting new tasks, lets the workers drain what is already
// queued, and returns once every worker has exited. A pool is not reusable
// after Close.
//
// # Batches
//
// Map and MapErr create one task per element, each writing only its own slot
// of a pre-sized result slice, and wait on a per-batch completion counter.
// Several batches may share one pool concurrently without interfering with
// each other's results.
//
// Functions passed to Map run concurrently on different goroutines and must
// be safe for that. The pool cannot enforce this.
//
// # Error Handling
//
// Invalid arguments are rejected before anything is queued. A failing or
// panicking element function fails the whole batch: the first error is
// returned, unstarted tasks of the batch are skipped, and no partial results
// are exposed. Cancelling the caller's context returns ErrInterrupted but does
// not stop tasks that were already submitted.
//
// # Configuration Options
//
//   - WithName(name): label used in log output (default: random UUID)
//   - WithLogger(logger): zap logger for lifecycle events (default: no-op)
//   - WithRateLimit(tasksPerSecond, burst): throttle task starts
//   - WithCPUAffinity(): lock workers to OS threads and pin them to cores
package pool

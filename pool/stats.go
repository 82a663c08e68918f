package pool

// Stats is a point-in-time snapshot of pool counters.
type Stats struct {
	Workers   int   // fixed worker count
	Live      int   // worker goroutines that have not exited yet
	Submitted int64 // tasks accepted by Submit
	Completed int64 // tasks that finished running
	Pending   int   // tasks waiting in the queue
}

// Stats returns current pool counters. The fields are read independently,
// so the snapshot is not atomic as a whole.
func (p *Pool) Stats() Stats {
	return Stats{
		Workers:   p.workers,
		Live:      int(p.live.Load()),
		Submitted: p.submitted.Load(),
		Completed: p.completed.Load(),
		Pending:   p.queue.Len(),
	}
}

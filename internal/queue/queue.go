// Package queue provides the blocking FIFO used by the worker pool.
//
// A Queue is a growable ring buffer guarded by a single mutex with an
// associated condition variable. Consumers block in Pop only while the queue
// is empty and open; producers signal one waiter after every Push.
package queue

import (
	"errors"
	"sync"
)

// ErrClosed is returned by Push once Close has been called.
var ErrClosed = errors.New("queue is closed")

const minCapacity = 16

// Queue is an unbounded, multi-producer multi-consumer FIFO queue.
// The zero value is not usable; create queues with New.
type Queue[T any] struct {
	mu     sync.Mutex
	cond   *sync.Cond
	buf    []T
	head   int // index of the oldest element
	size   int // number of elements currently stored
	closed bool
}

// New creates an empty queue with room for at least capacity elements
// before the first reallocation.
func New[T any](capacity int) *Queue[T] {
	q := &Queue[T]{
		buf: make([]T, max(capacity, minCapacity)),
	}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Push appends v to the tail of the queue and wakes one blocked consumer.
// It fails with ErrClosed after Close.
func (q *Queue[T]) Push(v T) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrClosed
	}

	if q.size == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.size)%len(q.buf)] = v
	q.size++
	q.cond.Signal()
	return nil
}

// Pop removes and returns the element at the head of the queue, blocking
// while the queue is empty and still open.
//
// Once the queue is closed Pop keeps returning the remaining elements and
// reports ok == false only after the queue has been fully drained.
func (q *Queue[T]) Pop() (v T, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.size == 0 && !q.closed {
		q.cond.Wait()
	}

	if q.size == 0 {
		return v, false
	}

	var zero T
	v = q.buf[q.head]
	q.buf[q.head] = zero // drop the reference so the task can be collected
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	return v, true
}

// TryPop is the non-blocking form of Pop.
func (q *Queue[T]) TryPop() (v T, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.size == 0 {
		return v, false
	}

	var zero T
	v = q.buf[q.head]
	q.buf[q.head] = zero
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	return v, true
}

// Close marks the queue as closed and wakes every blocked consumer.
// Elements already queued stay available to Pop. Close reports false if the
// queue had already been closed.
func (q *Queue[T]) Close() bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}
	q.closed = true
	q.cond.Broadcast()
	return true
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.size
}

// Closed reports whether Close has been called.
func (q *Queue[T]) Closed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}

// grow doubles the ring buffer, unrolling it so head starts at index 0.
// Callers must hold q.mu.
func (q *Queue[T]) grow() {
	next := make([]T, len(q.buf)*2)
	n := copy(next, q.buf[q.head:])
	copy(next[n:], q.buf[:q.head])
	q.buf = next
	q.head = 0
}

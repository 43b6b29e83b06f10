package diskcache

import (
	"context"
	"sync"
)

// serialQueue runs submitted jobs one at a time, in submission order, on a
// single goroutine. Submission never blocks: pending jobs are kept in an
// unbounded slice.
type serialQueue struct {
	mu     sync.Mutex
	jobs   []func()
	closed bool
	wake   chan struct{} // cap 1
	done   chan struct{} // closed when the worker exits
}

func newSerialQueue() *serialQueue {
	q := &serialQueue{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	go q.run()
	return q
}

// newClosedQueue returns a queue that rejects every job.
func newClosedQueue() *serialQueue {
	q := &serialQueue{closed: true, done: make(chan struct{})}
	close(q.done)
	return q
}

func (q *serialQueue) run() {
	defer close(q.done)
	for {
		q.mu.Lock()
		for len(q.jobs) == 0 {
			if q.closed {
				q.mu.Unlock()
				return
			}
			q.mu.Unlock()
			<-q.wake
			q.mu.Lock()
		}
		fn := q.jobs[0]
		q.jobs[0] = nil
		q.jobs = q.jobs[1:]
		q.mu.Unlock()

		fn()
	}
}

// submit enqueues fn. It returns false once the queue is closed.
func (q *serialQueue) submit(fn func()) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.jobs = append(q.jobs, fn)
	q.mu.Unlock()
	q.signal()
	return true
}

func (q *serialQueue) signal() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// do runs fn on the worker and waits for it.
func (q *serialQueue) do(fn func()) bool {
	ran := make(chan struct{})
	if !q.submit(func() { fn(); close(ran) }) {
		return false
	}
	<-ran
	return true
}

// barrier waits until every job submitted before the call has run.
func (q *serialQueue) barrier(ctx context.Context) error {
	reached := make(chan struct{})
	if !q.submit(func() { close(reached) }) {
		return ErrClosed
	}
	select {
	case <-reached:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// depth returns the number of jobs waiting to run.
func (q *serialQueue) depth() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.jobs)
}

// close stops intake and waits for the remaining jobs to drain.
func (q *serialQueue) close() {
	q.mu.Lock()
	already := q.closed
	q.closed = true
	q.mu.Unlock()
	if !already {
		q.signal()
	}
	<-q.done
}

// Completion reports the outcome of one Store call.
type Completion struct {
	done chan struct{}
	err  error
}

func newCompletion() *Completion {
	return &Completion{done: make(chan struct{})}
}

// resolved returns a Completion that is already finished with err.
func resolved(err error) *Completion {
	c := newCompletion()
	c.finish(err)
	return c
}

func (c *Completion) finish(err error) {
	c.err = err
	close(c.done)
}

// Done is closed once the request was written, dropped or failed.
func (c *Completion) Done() <-chan struct{} { return c.done }

// Err returns nil until Done is closed, then the request's error, if any.
func (c *Completion) Err() error {
	select {
	case <-c.done:
		return c.err
	default:
		return nil
	}
}

// Wait blocks until the request finished or ctx is done.
func (c *Completion) Wait(ctx context.Context) error {
	select {
	case <-c.done:
		return c.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

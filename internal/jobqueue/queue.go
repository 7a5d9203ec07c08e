// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package jobqueue

import (
	"errors"
	"sync"

	"github.com/matt-FFFFFF/jobsh/internal/job"
)

// DefaultCapacity is the queue capacity used when none is configured.
const DefaultCapacity = 5

var (
	// ErrShuttingDown is returned by Enqueue when shutdown was requested
	// before the job could be inserted.
	ErrShuttingDown = errors.New("queue is shutting down")
	// ErrClosed is returned by Dequeue when shutdown was requested and all
	// queued jobs have been drained.
	ErrClosed = errors.New("queue is closed")
)

// Queue is a bounded ring buffer of jobs with strict FIFO ordering.
// A single mutex guards the buffer, the size counter and the running flag,
// so all three are always observed as one consistent snapshot.
type Queue struct {
	mu       sync.Mutex
	notFull  *sync.Cond
	notEmpty *sync.Cond
	buf      []*job.Job
	head     int
	size     int
	running  bool
}

// New creates a Queue with the given capacity. A capacity of zero or less
// applies DefaultCapacity.
func New(capacity int) *Queue {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	q := &Queue{
		buf:     make([]*job.Job, capacity),
		running: true,
	}
	q.notFull = sync.NewCond(&q.mu)
	q.notEmpty = sync.NewCond(&q.mu)

	return q
}

// Enqueue inserts a job at the tail, blocking while the queue is full.
// It returns ErrShuttingDown, without inserting, if shutdown was requested
// before space became available. On success exactly one blocked dequeuer
// is woken.
func (q *Queue) Enqueue(j *job.Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.size == len(q.buf) && q.running {
		q.notFull.Wait()
	}

	if !q.running {
		return ErrShuttingDown
	}

	q.buf[(q.head+q.size)%len(q.buf)] = j
	q.size++
	q.notEmpty.Signal()

	return nil
}

// Dequeue removes and returns the oldest job, blocking while the queue is
// empty. After shutdown it keeps returning queued jobs until the buffer is
// drained, then returns ErrClosed. On success exactly one blocked enqueuer
// is woken.
func (q *Queue) Dequeue() (*job.Job, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.size == 0 && q.running {
		q.notEmpty.Wait()
	}

	if q.size == 0 {
		return nil, ErrClosed
	}

	j := q.buf[q.head]
	q.buf[q.head] = nil
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	q.notFull.Signal()

	return j, nil
}

// Shutdown requests cooperative shutdown. It is idempotent and wakes every
// caller blocked in Enqueue or Dequeue so they can observe the request.
func (q *Queue) Shutdown() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.running {
		return
	}

	q.running = false
	q.notFull.Broadcast()
	q.notEmpty.Broadcast()
}

// Len returns the number of queued jobs.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.size
}

// Cap returns the fixed capacity of the queue.
func (q *Queue) Cap() int {
	return len(q.buf)
}

// Full reports whether the queue is at capacity. The answer may be stale by
// the time the caller acts on it; it exists for informational notices only.
func (q *Queue) Full() bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.size == len(q.buf)
}

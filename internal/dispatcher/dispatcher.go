// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dispatcher

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/matt-FFFFFF/jobsh/internal/ctxlog"
	"github.com/matt-FFFFFF/jobsh/internal/jobqueue"
	"github.com/matt-FFFFFF/jobsh/internal/report"
	"github.com/matt-FFFFFF/jobsh/internal/spawn"
)

// State describes what the dispatcher is currently doing.
type State int32

const (
	// StateIdle means the dispatcher has not started or is between jobs.
	StateIdle State = iota
	// StateWaitingForJob means the dispatcher is blocked on an empty queue.
	StateWaitingForJob
	// StateWaitingForChild means a child process is running.
	StateWaitingForChild
	// StateStopped means the queue closed and the dispatcher exited.
	StateStopped
)

// String implements the Stringer interface for State.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWaitingForJob:
		return "waiting-for-job"
	case StateWaitingForChild:
		return "waiting-for-child"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Dispatcher consumes jobs from a queue and executes them serially through a
// Spawner. Failures to create a child are reported and the loop continues;
// only a closed, drained queue stops it.
type Dispatcher struct {
	queue    *jobqueue.Queue
	spawner  spawn.Spawner
	reporter report.Reporter
	state    atomic.Int32
}

// New creates a Dispatcher. The reporter receives a notice for every
// dispatch, completion and failure.
func New(q *jobqueue.Queue, s spawn.Spawner, r report.Reporter) *Dispatcher {
	return &Dispatcher{
		queue:    q,
		spawner:  s,
		reporter: r,
	}
}

// State returns the dispatcher's current state.
func (d *Dispatcher) State() State {
	return State(d.state.Load())
}

// Run consumes jobs until the queue is closed and drained. It blocks; run it
// in its own goroutine. A child that is already running when shutdown is
// requested is waited on to completion.
func (d *Dispatcher) Run(ctx context.Context) {
	logger := ctxlog.Logger(ctx).With("component", "dispatcher")
	logger.Debug("dispatcher started")

	for {
		d.state.Store(int32(StateWaitingForJob))

		j, err := d.queue.Dequeue()
		if errors.Is(err, jobqueue.ErrClosed) {
			d.state.Store(int32(StateStopped))
			logger.Debug("queue closed, dispatcher stopped")

			return
		}

		d.reporter.Report(report.Event{
			Type:      report.EventDispatching,
			JobID:     j.ID,
			Args:      j.Args,
			Timestamp: time.Now(),
		})

		d.state.Store(int32(StateWaitingForChild))

		res, err := d.spawner.Spawn(ctx, j.Args)
		if err != nil {
			// Non-fatal: the job is abandoned and the loop continues.
			logger.Debug("spawn failed", "jobID", j.ID, "error", err)
			d.reporter.Report(report.Event{
				Type:      report.EventFailed,
				JobID:     j.ID,
				Args:      j.Args,
				Err:       err,
				Timestamp: time.Now(),
			})

			d.state.Store(int32(StateIdle))

			continue
		}

		d.reporter.Report(report.Event{
			Type:      report.EventCompleted,
			JobID:     j.ID,
			Args:      j.Args,
			ExitCode:  res.ExitCode,
			Timestamp: time.Now(),
		})

		d.state.Store(int32(StateIdle))
	}
}

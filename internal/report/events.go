// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package report

import (
	"time"
)

// Event is a single job lifecycle notice.
type Event struct {
	Type      EventType // What happened
	JobID     int       // Id of the job the event refers to, zero if none
	Args      []string  // Argument vector of the job, if known
	ExitCode  int       // For EventCompleted
	Err       error     // For EventFailed and EventInvalid
	Timestamp time.Time // When the event occurred
}

// EventType represents the type of job lifecycle event.
type EventType int

const (
	// EventQueued indicates a job was inserted into the queue.
	EventQueued EventType = iota
	// EventQueueFull indicates the producer is blocked waiting for space.
	EventQueueFull
	// EventDispatching indicates the dispatcher has taken a job and is
	// about to spawn its child process.
	EventDispatching
	// EventCompleted indicates the child process exited.
	EventCompleted
	// EventFailed indicates the child process could not be created or the
	// executable could not be resolved.
	EventFailed
	// EventRejected indicates an enqueue was refused because shutdown was
	// requested.
	EventRejected
	// EventInvalid indicates an input line could not be turned into a job.
	EventInvalid
)

// String implements the Stringer interface for EventType.
func (et EventType) String() string {
	switch et {
	case EventQueued:
		return "queued"
	case EventQueueFull:
		return "queue-full"
	case EventDispatching:
		return "dispatching"
	case EventCompleted:
		return "completed"
	case EventFailed:
		return "failed"
	case EventRejected:
		return "rejected"
	case EventInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Reporter consumes job lifecycle events. Implementations must be safe for
// concurrent use: the intake loop and the dispatcher report from different
// goroutines.
type Reporter interface {
	Report(Event)
}

// Tee returns a Reporter that forwards every event to each of the given
// reporters in order.
func Tee(reporters ...Reporter) Reporter {
	return teeReporter(reporters)
}

type teeReporter []Reporter

func (t teeReporter) Report(e Event) {
	for _, r := range t {
		r.Report(e)
	}
}

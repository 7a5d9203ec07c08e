// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package sched

import (
	"errors"
	"fmt"
)

var (
	// ErrNoProcesses is returned when a schedule is requested for an empty process set.
	ErrNoProcesses = errors.New("process set is empty")
	// ErrInvalidProcess is returned when a process has a negative arrival time or a non-positive burst time.
	ErrInvalidProcess = errors.New("invalid process")
	// ErrInvalidQuantum is returned when the round robin time quantum is not positive.
	ErrInvalidQuantum = errors.New("time quantum must be positive")
)

// Process describes a synthetic process before scheduling.
// Lower priority numbers indicate higher priority.
type Process struct {
	PID      int `yaml:"pid" json:"pid"`
	Arrival  int `yaml:"arrival" json:"arrival_time"`
	Burst    int `yaml:"burst" json:"burst_time"`
	Priority int `yaml:"priority" json:"priority"`
}

// Stats holds the timing results of a single scheduled process.
type Stats struct {
	PID        int `json:"pid"`
	Arrival    int `json:"arrival_time"`
	Burst      int `json:"burst_time"`
	Priority   int `json:"priority"`
	Completion int `json:"completion_time"`
	Turnaround int `json:"turnaround_time"`
	Waiting    int `json:"waiting_time"`
	Response   int `json:"response_time"`
}

// Validate checks that every process in the set is well-formed.
func Validate(processes []Process) error {
	if len(processes) == 0 {
		return ErrNoProcesses
	}

	for _, p := range processes {
		if p.Arrival < 0 || p.Burst <= 0 {
			return fmt.Errorf("%w: pid %d (arrival %d, burst %d)", ErrInvalidProcess, p.PID, p.Arrival, p.Burst)
		}
	}

	return nil
}

// Sample returns the demonstration process set.
func Sample() []Process {
	return []Process{
		{PID: 1, Arrival: 0, Burst: 5, Priority: 2},
		{PID: 2, Arrival: 1, Burst: 3, Priority: 1},
		{PID: 3, Arrival: 2, Burst: 8, Priority: 3},
		{PID: 4, Arrival: 3, Burst: 6, Priority: 2},
		{PID: 5, Arrival: 4, Burst: 4, Priority: 1},
	}
}

// task is the mutable per-process state used during simulation.
type task struct {
	Process
	remaining  int
	start      int // -1 until first scheduled
	completion int
}

func newTasks(processes []Process) []*task {
	out := make([]*task, 0, len(processes))
	for _, p := range processes {
		out = append(out, &task{
			Process:   p,
			remaining: p.Burst,
			start:     -1,
		})
	}

	return out
}

func (t *task) label() string {
	return fmt.Sprintf("P%d", t.PID)
}

func (t *task) stats() Stats {
	turnaround := t.completion - t.Arrival

	return Stats{
		PID:        t.PID,
		Arrival:    t.Arrival,
		Burst:      t.Burst,
		Priority:   t.Priority,
		Completion: t.completion,
		Turnaround: turnaround,
		Waiting:    turnaround - t.Burst,
		Response:   t.start - t.Arrival,
	}
}

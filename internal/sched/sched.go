// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package sched

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
)

// ErrUnknownAlgorithm is returned when an algorithm name cannot be parsed.
var ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")

// Algorithm names a CPU scheduling algorithm.
type Algorithm string

const (
	// FCFS is first come first serve.
	FCFS Algorithm = "fcfs"
	// SJF is shortest job first, non-preemptive.
	SJF Algorithm = "sjf"
	// SRTF is shortest remaining time first, preemptive.
	SRTF Algorithm = "srtf"
	// RoundRobin runs each process for a fixed time quantum.
	RoundRobin Algorithm = "rr"
	// Priority is non-preemptive priority scheduling, lower number first.
	Priority Algorithm = "priority"
)

// DefaultQuantum is the round robin time quantum used when none is given.
const DefaultQuantum = 2

// IdleLabel marks Gantt chart slices where no process was running.
const IdleLabel = "IDLE"

// Algorithms returns all supported algorithms in display order.
func Algorithms() []Algorithm {
	return []Algorithm{FCFS, SJF, SRTF, RoundRobin, Priority}
}

// ParseAlgorithm parses an algorithm name.
func ParseAlgorithm(s string) (Algorithm, error) {
	for _, a := range Algorithms() {
		if s == string(a) {
			return a, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Title returns the human-readable name of the algorithm.
func (a Algorithm) Title() string {
	switch a {
	case FCFS:
		return "First Come First Serve (FCFS)"
	case SJF:
		return "Shortest Job First (SJF)"
	case SRTF:
		return "Shortest Remaining Time First (SRTF)"
	case RoundRobin:
		return "Round Robin (RR)"
	case Priority:
		return "Priority Scheduling"
	default:
		return string(a)
	}
}

// Slice is one segment of a Gantt chart.
type Slice struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Label string `json:"label"`
}

// Metrics are the aggregate timing results of a schedule, averaged over all
// processes and rounded to two decimal places.
type Metrics struct {
	AvgTurnaround  float64 `json:"avg_turnaround_time"`
	AvgWaiting     float64 `json:"avg_waiting_time"`
	AvgResponse    float64 `json:"avg_response_time"`
	TotalProcesses int     `json:"total_processes"`
}

// Result is the outcome of running one algorithm over a process set.
// Stats are ordered by completion.
type Result struct {
	Algorithm Algorithm `json:"algorithm"`
	Stats     []Stats   `json:"processes"`
	Metrics   Metrics   `json:"metrics"`
	Gantt     []Slice   `json:"gantt"`
}

// Run schedules the process set with the given algorithm. The quantum is only
// used by RoundRobin; zero or less applies DefaultQuantum.
func Run(a Algorithm, processes []Process, quantum int) (*Result, error) {
	if err := Validate(processes); err != nil {
		return nil, err
	}

	if quantum <= 0 {
		quantum = DefaultQuantum
	}

	tasks := newTasks(processes)

	var (
		gantt []Slice
		done  []*task
	)

	switch a {
	case FCFS:
		gantt, done = runFCFS(tasks)
	case SJF:
		gantt, done = runSJF(tasks)
	case SRTF:
		gantt, done = runSRTF(tasks)
	case RoundRobin:
		gantt, done = runRoundRobin(tasks, quantum)
	case Priority:
		gantt, done = runPriority(tasks)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, a)
	}

	stats := make([]Stats, 0, len(done))
	for _, t := range done {
		stats = append(stats, t.stats())
	}

	return &Result{
		Algorithm: a,
		Stats:     stats,
		Metrics:   computeMetrics(stats),
		Gantt:     gantt,
	}, nil
}

func computeMetrics(stats []Stats) Metrics {
	n := len(stats)
	if n == 0 {
		return Metrics{}
	}

	var turnaround, waiting, response int
	for _, s := range stats {
		turnaround += s.Turnaround
		waiting += s.Waiting
		response += s.Response
	}

	return Metrics{
		AvgTurnaround:  round2(float64(turnaround) / float64(n)),
		AvgWaiting:     round2(float64(waiting) / float64(n)),
		AvgResponse:    round2(float64(response) / float64(n)),
		TotalProcesses: n,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// appendSlice extends the last Gantt slice when the label is unchanged,
// otherwise appends a new one.
func appendSlice(gantt []Slice, start, end int, label string) []Slice {
	if n := len(gantt); n > 0 && gantt[n-1].Label == label && gantt[n-1].End == start {
		gantt[n-1].End = end
		return gantt
	}

	return append(gantt, Slice{Start: start, End: end, Label: label})
}

func sortByArrival(tasks []*task) {
	slices.SortStableFunc(tasks, func(a, b *task) int {
		return cmp.Or(
			cmp.Compare(a.Arrival, b.Arrival),
			cmp.Compare(a.PID, b.PID),
		)
	})
}

// admitArrived moves tasks that have arrived by now from pending to the ready
// queue, preserving arrival order. It returns the updated pending and ready
// slices.
func admitArrived(pending, ready []*task, now int) ([]*task, []*task) {
	for len(pending) > 0 && pending[0].Arrival <= now {
		ready = append(ready, pending[0])
		pending = pending[1:]
	}

	return pending, ready
}

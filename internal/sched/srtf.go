// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package sched

import (
	"cmp"
	"slices"
)

// runSRTF simulates in unit time steps, always running the ready process with
// the least remaining time. Preemptive.
func runSRTF(tasks []*task) ([]Slice, []*task) {
	sortByArrival(tasks)

	var (
		gantt   []Slice
		ready   []*task
		current *task
		now     int
		pending = tasks
	)

	done := make([]*task, 0, len(tasks))

	byRemaining := func(a, b *task) int {
		return cmp.Or(
			cmp.Compare(a.remaining, b.remaining),
			cmp.Compare(a.Arrival, b.Arrival),
			cmp.Compare(a.PID, b.PID),
		)
	}

	for len(pending) > 0 || len(ready) > 0 || current != nil {
		pending, ready = admitArrived(pending, ready, now)

		// Preempt when a ready task has less remaining time.
		if current != nil && len(ready) > 0 {
			shortest := slices.MinFunc(ready, byRemaining)
			if shortest.remaining < current.remaining {
				ready = append(ready, current)
				current = nil
			}
		}

		if current == nil && len(ready) > 0 {
			slices.SortStableFunc(ready, byRemaining)
			current = ready[0]
			ready = ready[1:]

			if current.start == -1 {
				current.start = now
			}
		}

		if current == nil {
			gantt = appendSlice(gantt, now, now+1, IdleLabel)
			now++

			continue
		}

		gantt = appendSlice(gantt, now, now+1, current.label())
		current.remaining--
		now++

		if current.remaining == 0 {
			current.completion = now
			done = append(done, current)
			current = nil
		}
	}

	return gantt, done
}

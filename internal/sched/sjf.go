// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package sched

import (
	"cmp"
	"slices"
)

// runSJF executes the ready process with the shortest burst time to
// completion. Non-preemptive.
func runSJF(tasks []*task) ([]Slice, []*task) {
	return runNonPreemptive(tasks, func(a, b *task) int {
		return cmp.Or(
			cmp.Compare(a.Burst, b.Burst),
			cmp.Compare(a.Arrival, b.Arrival),
			cmp.Compare(a.PID, b.PID),
		)
	})
}

// runNonPreemptive drives SJF and Priority: both pick one ready task by a
// comparison function and run it to completion.
func runNonPreemptive(tasks []*task, pick func(a, b *task) int) ([]Slice, []*task) {
	sortByArrival(tasks)

	var (
		gantt   []Slice
		ready   []*task
		now     int
		pending = tasks
	)

	done := make([]*task, 0, len(tasks))

	for len(pending) > 0 || len(ready) > 0 {
		pending, ready = admitArrived(pending, ready, now)

		if len(ready) == 0 {
			next := pending[0].Arrival
			gantt = appendSlice(gantt, now, next, IdleLabel)
			now = next

			continue
		}

		slices.SortStableFunc(ready, pick)
		t := ready[0]
		ready = ready[1:]

		t.start = now
		gantt = appendSlice(gantt, now, now+t.Burst, t.label())
		now += t.Burst

		t.completion = now
		t.remaining = 0
		done = append(done, t)
	}

	return gantt, done
}

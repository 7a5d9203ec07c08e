// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package sched

// runFCFS executes processes strictly in arrival order.
func runFCFS(tasks []*task) ([]Slice, []*task) {
	sortByArrival(tasks)

	var (
		gantt []Slice
		now   int
	)

	done := make([]*task, 0, len(tasks))

	for _, t := range tasks {
		if now < t.Arrival {
			gantt = appendSlice(gantt, now, t.Arrival, IdleLabel)
			now = t.Arrival
		}

		t.start = now
		gantt = appendSlice(gantt, now, now+t.Burst, t.label())
		now += t.Burst

		t.completion = now
		t.remaining = 0
		done = append(done, t)
	}

	return gantt, done
}

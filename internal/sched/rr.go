// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package sched

// runRoundRobin executes ready processes in FIFO order, each for at most
// quantum time units. Processes arriving during a slice are admitted before
// the preempted process rejoins the tail of the ready queue.
func runRoundRobin(tasks []*task, quantum int) ([]Slice, []*task) {
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

		t := ready[0]
		ready = ready[1:]

		if t.start == -1 {
			t.start = now
		}

		run := min(quantum, t.remaining)
		gantt = appendSlice(gantt, now, now+run, t.label())
		t.remaining -= run
		now += run

		pending, ready = admitArrived(pending, ready, now)

		if t.remaining == 0 {
			t.completion = now
			done = append(done, t)

			continue
		}

		ready = append(ready, t)
	}

	return gantt, done
}

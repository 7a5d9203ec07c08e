// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package sched

import (
	"cmp"
)

// runPriority executes the ready process with the highest priority (lowest
// number) to completion. Non-preemptive.
func runPriority(tasks []*task) ([]Slice, []*task) {
	return runNonPreemptive(tasks, func(a, b *task) int {
		return cmp.Or(
			cmp.Compare(a.Priority, b.Priority),
			cmp.Compare(a.Arrival, b.Arrival),
			cmp.Compare(a.PID, b.PID),
		)
	})
}

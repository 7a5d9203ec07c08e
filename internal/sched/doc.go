// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package sched implements classic CPU scheduling algorithms over a set of
// synthetic processes: first come first serve, shortest job first, shortest
// remaining time first, round robin and priority. Each run produces a Gantt
// chart together with per-process and aggregate timing metrics.
package sched

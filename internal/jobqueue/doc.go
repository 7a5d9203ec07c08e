// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package jobqueue provides the fixed-capacity FIFO buffer that coordinates
// the intake loop with the single dispatcher. Enqueue blocks while the queue
// is full and Dequeue blocks while it is empty; both observe the cooperative
// shutdown signal so that no caller blocks forever.
package jobqueue

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package dispatcher provides the single consumer of the job queue. It
// dequeues jobs one at a time, spawns each as a child process, waits for the
// child to exit and reports the outcome. Dispatch is strictly serial: a new
// job is not dequeued until the previous child has exited.
package dispatcher

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package spawn provides the "spawn a process and await its exit code"
// capability the dispatcher depends on. The OS implementation resolves the
// executable on PATH and runs it with the parent's standard streams; tests
// substitute a fake via the Spawner interface.
package spawn

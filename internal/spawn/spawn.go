// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package spawn

import (
	"context"
	"errors"
)

var (
	// ErrEmptyArgv is returned when the argument vector has no executable name.
	ErrEmptyArgv = errors.New("argv must contain at least one non-empty token")
	// ErrNotFound is returned when the executable cannot be resolved on PATH.
	ErrNotFound = errors.New("executable not found")
	// ErrCouldNotStartProcess is returned when the child process could not be created.
	ErrCouldNotStartProcess = errors.New("could not start process")
)

// Result is the outcome of a completed child process.
type Result struct {
	ExitCode int // Exit status of the child
	Pid      int // Process id of the child
}

// Spawner launches a child process from an argument vector and blocks until
// it exits.
type Spawner interface {
	Spawn(ctx context.Context, argv []string) (Result, error)
}

// Func adapts a function to the Spawner interface.
type Func func(ctx context.Context, argv []string) (Result, error)

// Spawn implements the Spawner interface for Func.
func (f Func) Spawn(ctx context.Context, argv []string) (Result, error) {
	return f(ctx, argv)
}

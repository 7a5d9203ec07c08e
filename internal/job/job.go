// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package job

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
)

const (
	// FirstID is the id assigned to the first job submitted.
	FirstID = 100
	// DefaultMaxArgs is the default limit on tokens per command line.
	DefaultMaxArgs = 9
)

var (
	// ErrEmptyCommand is returned when a command line contains no tokens.
	ErrEmptyCommand = errors.New("command line contains no tokens")
	// ErrTooManyArgs is returned when a command line exceeds the token limit.
	ErrTooManyArgs = errors.New("command line exceeds the argument limit")
)

// Job is a single requested command invocation. It is immutable after
// creation: Args[0] is the executable name, the remainder its arguments.
type Job struct {
	ID   int
	Args []string
}

// New creates a Job, rejecting empty argument vectors.
func New(id int, args []string) (*Job, error) {
	if len(args) == 0 || args[0] == "" {
		return nil, ErrEmptyCommand
	}

	return &Job{ID: id, Args: args}, nil
}

// String implements the Stringer interface for Job.
func (j *Job) String() string {
	return fmt.Sprintf("job %d: %s", j.ID, strings.Join(j.Args, " "))
}

// Parse tokenizes a command line on whitespace. A line that is empty or only
// whitespace returns ErrEmptyCommand. A line with more than maxArgs tokens
// returns ErrTooManyArgs; it is never silently truncated. A maxArgs of zero
// or less applies DefaultMaxArgs.
func Parse(line string, maxArgs int) ([]string, error) {
	if maxArgs <= 0 {
		maxArgs = DefaultMaxArgs
	}

	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil, ErrEmptyCommand
	}

	if len(tokens) > maxArgs {
		return nil, fmt.Errorf("%w: %d tokens, limit is %d", ErrTooManyArgs, len(tokens), maxArgs)
	}

	return tokens, nil
}

// Counter issues monotonically increasing job ids, starting at FirstID.
// It is safe for concurrent use.
type Counter struct {
	next atomic.Int64
}

// NewCounter creates a Counter seeded at FirstID.
func NewCounter() *Counter {
	c := &Counter{}
	c.next.Store(FirstID)

	return c
}

// Next returns the next id and advances the counter.
func (c *Counter) Next() int {
	return int(c.next.Add(1) - 1)
}

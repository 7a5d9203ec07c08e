// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package intake

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/matt-FFFFFF/jobsh/internal/ctxlog"
	"github.com/matt-FFFFFF/jobsh/internal/job"
	"github.com/matt-FFFFFF/jobsh/internal/jobqueue"
	"github.com/matt-FFFFFF/jobsh/internal/report"
)

// ExitCommand is the reserved token that requests shutdown.
const ExitCommand = "exit"

// LineSource produces candidate command lines. ReadLine returns io.EOF when
// no more input is available.
type LineSource interface {
	ReadLine() (string, error)
}

// Loop reads command lines, builds jobs with fresh monotonic ids and
// enqueues them.
type Loop struct {
	queue    *jobqueue.Queue
	reporter report.Reporter
	counter  *job.Counter
	maxArgs  int
}

// New creates a Loop. maxArgs of zero or less applies job.DefaultMaxArgs.
func New(q *jobqueue.Queue, r report.Reporter, maxArgs int) *Loop {
	return &Loop{
		queue:    q,
		reporter: r,
		counter:  job.NewCounter(),
		maxArgs:  maxArgs,
	}
}

// Run consumes lines from src until the exit command, end of input, context
// cancellation, or a rejected enqueue. It always requests queue shutdown
// before returning so the dispatcher can drain and stop.
func (l *Loop) Run(ctx context.Context, src LineSource) error {
	logger := ctxlog.Logger(ctx).With("component", "intake")
	defer l.queue.Shutdown()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := src.ReadLine()
		if errors.Is(err, io.EOF) {
			logger.Debug("end of input")
			return nil
		}

		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if line == ExitCommand {
			logger.Debug("exit command received")
			return nil
		}

		args, err := job.Parse(line, l.maxArgs)
		if err != nil {
			// Bad input drops the line, never the loop.
			l.reporter.Report(report.Event{
				Type:      report.EventInvalid,
				Err:       err,
				Timestamp: time.Now(),
			})

			continue
		}

		j, err := job.New(l.counter.Next(), args)
		if err != nil {
			l.reporter.Report(report.Event{
				Type:      report.EventInvalid,
				Err:       err,
				Timestamp: time.Now(),
			})

			continue
		}

		if l.queue.Full() {
			l.reporter.Report(report.Event{
				Type:      report.EventQueueFull,
				Timestamp: time.Now(),
			})
		}

		if err := l.queue.Enqueue(j); err != nil {
			l.reporter.Report(report.Event{
				Type:      report.EventRejected,
				JobID:     j.ID,
				Args:      j.Args,
				Timestamp: time.Now(),
			})

			return nil
		}

		l.reporter.Report(report.Event{
			Type:      report.EventQueued,
			JobID:     j.ID,
			Args:      j.Args,
			Timestamp: time.Now(),
		})
	}
}

// ReaderSource adapts an io.Reader to the LineSource interface, yielding one
// line per call.
type ReaderSource struct {
	scanner *bufio.Scanner
}

// NewReaderSource creates a ReaderSource over r. It is intended for scripts
// and tests, not terminals.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{scanner: bufio.NewScanner(r)}
}

// ReadLine implements the LineSource interface for ReaderSource.
func (r *ReaderSource) ReadLine() (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}

		return "", io.EOF
	}

	return r.scanner.Text(), nil
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package signalbroker delivers termination signals to the shell's shutdown
// path. New registers the signal channel; Watch turns the first signal into a
// cooperative shutdown request and a repeated signal into a hard stop.
package signalbroker

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/matt-FFFFFF/jobsh/internal/ctxlog"
)

// termSignals are the signals watched when the caller names none.
var termSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
	syscall.SIGQUIT,
}

// New registers a buffered channel for the given signals, defaulting to the
// termination set.
func New(ctx context.Context, sigs ...os.Signal) chan os.Signal {
	if len(sigs) == 0 {
		sigs = termSignals
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, sigs...)
	ctxlog.Debug(ctx, "signalbroker", "detail", "watching signals", "signals", sigs)

	return ch
}

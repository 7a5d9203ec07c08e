// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"
	"os/signal"
	"sync"

	"github.com/matt-FFFFFF/jobsh/internal/ctxlog"
)

// Watch consumes signals from sigCh until a signal type repeats or the
// channel is closed. The first signal runs the onFirst callbacks exactly
// once; the shell passes the queue's Shutdown here so intake and dispatcher
// wind down while a running child finishes. A second signal of an
// already-seen type stops signal delivery, closes sigCh and cancels the
// context for a hard stop.
func Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc, onFirst ...func()) {
	seen := make(map[os.Signal]struct{})

	var once sync.Once

	for sig := range sigCh {
		if _, repeated := seen[sig]; repeated {
			ctxlog.Logger(ctx).Info("watchdog", "detail", "received repeated signal, forcefully terminating", "signal", sig.String())

			// Unregister before closing so a late signal cannot be
			// delivered to a closed channel.
			signal.Stop(sigCh)
			close(sigCh)
			cancel()

			return
		}

		ctxlog.Logger(ctx).Info("watchdog", "detail", "received signal, requesting shutdown", "signal", sig.String())

		once.Do(func() {
			for _, fn := range onFirst {
				fn()
			}
		})

		seen[sig] = struct{}{}
	}
}

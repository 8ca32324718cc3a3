// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/prun/internal/ctxlog"
)

// Watch monitors the signal channel until it is closed or ctx is done.
// The first signal of a given type calls stop. The second signal of the same type cancels the context.
// A nil stop is allowed.
func Watch(ctx context.Context, sigCh chan os.Signal, stop func(context.Context), cancel context.CancelFunc) {
	seen := make(map[os.Signal]struct{})

	for {
		select {
		case <-ctx.Done():
			return
		case sig, ok := <-sigCh:
			if !ok {
				return
			}

			if _, dup := seen[sig]; dup {
				ctxlog.Info(ctx, "watchdog", "detail", "received second signal of type, forcefully terminating", "signal", sig.String())
				cancel()

				return
			}

			ctxlog.Info(ctx, "watchdog", "detail", "received first signal of type, stopping processes", "signal", sig.String())

			seen[sig] = struct{}{}

			if stop != nil {
				stop(ctx)
			}
		}
	}
}

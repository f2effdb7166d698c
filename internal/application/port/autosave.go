package port

import (
	"context"
	"time"
)

// AutoSaveScheduler runs a save callback periodically on the UI thread.
type AutoSaveScheduler interface {
	// Start (re)arms the schedule. A running schedule is replaced.
	Start(ctx context.Context, interval time.Duration, save func(ctx context.Context) error)

	// Stop cancels the schedule. Safe to call when not running.
	Stop()

	// Running reports whether a schedule is armed.
	Running() bool
}

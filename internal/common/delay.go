package common

import (
	"context"
	"time"
)

// SimulateLatency blocks for d or until ctx is cancelled, whichever comes
// first. Stores call it before touching their tables, so a cancelled call
// never leaves a partial mutation behind. A zero duration is a no-op.
func SimulateLatency(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

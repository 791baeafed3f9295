// Package clock provides time helpers shared by the background workers.
package clock

import (
	"context"
	"time"
)

// Sleeper blocks for d or until ctx is done. Workers take one so tests can drive loops without real time.
type Sleeper func(ctx context.Context, d time.Duration) error

// SleepWithContext waits for d or returns ctx.Err() once the context is done.
// A non-positive d only checks the context.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

package worker

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/blockinsight7000-mocknode/internal/clock"
)

// sleepTimes lets a loop run allowed iterations and cancels the context on the next sleep.
func sleepTimes(cancel context.CancelFunc, allowed int32) (clock.Sleeper, *atomic.Int32) {
	var calls atomic.Int32
	return func(ctx context.Context, _ time.Duration) error {
		if calls.Add(1) > allowed {
			cancel()
			return ctx.Err()
		}
		return nil
	}, &calls
}

func noSleep(context.Context, time.Duration) error { return nil }

func btcAmount(v int64) btcutil.Amount { return btcutil.Amount(v) }

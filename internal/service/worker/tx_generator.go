package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-mocknode/internal/clock"
	"go.uber.org/zap"
)

// TxGenerator injects a synthetic transaction every interval.
type TxGenerator struct {
	logger   *zap.Logger
	injector TxInjector
	metrics  Metrics
	sleep    clock.Sleeper
	interval time.Duration
}

// NewTxGenerator builds a TxGenerator. The interval is validated when Run starts.
func NewTxGenerator(injector TxInjector, metrics Metrics, interval time.Duration, logger *zap.Logger) (*TxGenerator, error) {
	if injector == nil {
		return nil, errors.New("tx injector is required")
	}
	if metrics == nil {
		return nil, errors.New("tx generator metrics is required")
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &TxGenerator{
		logger:   logger.Named("txGenerator"),
		injector: injector,
		metrics:  metrics,
		sleep:    clock.SleepWithContext,
		interval: interval,
	}, nil
}

// Run generates transactions until the context is canceled.
func (g *TxGenerator) Run(ctx context.Context) error {
	if g.interval <= 0 {
		return fmt.Errorf("%w: tx interval %s", ErrInvalidConfig, g.interval)
	}
	g.logger.Info("tx generator started", zap.Duration("interval", g.interval))

	for {
		if err := g.sleep(ctx, g.interval); err != nil {
			return err
		}
		if err := g.run(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			g.logger.Warn("generated tx rejected", zap.Error(err))
		}
	}
}

func (g *TxGenerator) run(ctx context.Context) error {
	started := time.Now()
	txid, submitted, err := g.injector.GenerateTx(ctx)
	if err != nil {
		g.metrics.ObserveIteration(outcomeFailed, err, started)
		return err
	}
	if !submitted {
		g.logger.Debug("generated tx has no outputs, skipping")
		g.metrics.ObserveIteration(outcomeDiscarded, nil, started)
		return nil
	}

	g.logger.Debug("generated tx submitted", zap.Stringer("txid", txid))
	g.metrics.ObserveIteration(outcomeSubmitted, nil, started)
	return nil
}

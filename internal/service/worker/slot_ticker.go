package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-mocknode/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-mocknode/internal/model"
	"go.uber.org/zap"
)

// SlotTicker commits pending transactions once per slot.
type SlotTicker struct {
	logger       *zap.Logger
	producer     BlockProducer
	metrics      Metrics
	sleep        clock.Sleeper
	slotDuration time.Duration
}

// NewSlotTicker builds a SlotTicker. The slot duration is validated when Run starts.
func NewSlotTicker(producer BlockProducer, metrics Metrics, slotDuration time.Duration, logger *zap.Logger) (*SlotTicker, error) {
	if producer == nil {
		return nil, errors.New("block producer is required")
	}
	if metrics == nil {
		return nil, errors.New("slot ticker metrics is required")
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &SlotTicker{
		logger:       logger.Named("slotTicker"),
		producer:     producer,
		metrics:      metrics,
		sleep:        clock.SleepWithContext,
		slotDuration: slotDuration,
	}, nil
}

// Run ticks until the context is canceled.
func (t *SlotTicker) Run(ctx context.Context) error {
	if t.slotDuration <= 0 {
		return fmt.Errorf("%w: slot duration %s", ErrInvalidConfig, t.slotDuration)
	}
	t.logger.Info("slot ticker started", zap.Duration("slot_duration", t.slotDuration))

	for {
		if err := t.sleep(ctx, t.slotDuration); err != nil {
			return err
		}
		if err := t.run(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			t.logger.Warn("slot tick failed", zap.Error(err))
		}
	}
}

func (t *SlotTicker) run(ctx context.Context) error {
	started := time.Now()
	events, err := t.producer.ProcessBlock(ctx)
	if err != nil {
		t.metrics.ObserveIteration(outcomeFailed, err, started)
		return err
	}

	produced := 0
	for _, ev := range events {
		if ev.Kind == model.EventBlockProduced {
			produced++
			t.logger.Debug("block produced", zap.Uint64("slot", ev.Slot), zap.Int("txs", len(ev.TxIDs)))
		}
	}
	outcome := outcomeIdle
	if produced > 0 {
		outcome = outcomeProduced
	}
	t.metrics.ObserveIteration(outcome, nil, started)
	return nil
}

package exporter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-mocknode/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-mocknode/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-mocknode/pkg/batcher"
	"github.com/goodnatureofminers/blockinsight7000-mocknode/pkg/workerpool"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultFlushTimeout = 30 * time.Second

type Config struct {
	// RunID tags every exported row; event sequence numbers restart with the process.
	RunID        uuid.UUID
	Interval     time.Duration
	FlushTimeout time.Duration
	Batch        batcher.Config
}

// Exporter periodically takes the event history and writes it in batches.
type Exporter struct {
	logger  *zap.Logger
	source  EventSource
	repo    Repository
	metrics Metrics
	sleep   clock.Sleeper
	cfg     Config
	batch   *batcher.Batcher[model.Event]
}

func New(source EventSource, repo Repository, metrics Metrics, cfg Config, logger *zap.Logger) (*Exporter, error) {
	if source == nil {
		return nil, errors.New("event source is required")
	}
	if repo == nil {
		return nil, errors.New("event repository is required")
	}
	if metrics == nil {
		return nil, errors.New("exporter metrics is required")
	}
	if cfg.RunID == uuid.Nil {
		return nil, errors.New("export run id is required")
	}
	if cfg.Interval <= 0 {
		return nil, fmt.Errorf("export interval must be positive, got %s", cfg.Interval)
	}
	if cfg.FlushTimeout <= 0 {
		cfg.FlushTimeout = defaultFlushTimeout
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	e := &Exporter{
		logger:  logger.Named("exporter"),
		source:  source,
		repo:    repo,
		metrics: metrics,
		sleep:   clock.SleepWithContext,
		cfg:     cfg,
	}

	b, err := batcher.New(cfg.Batch, e.flush, e.logger)
	if err != nil {
		return nil, fmt.Errorf("create event batcher: %w", err)
	}
	e.batch = b

	return e, nil
}

// Run drains the event log every interval until ctx is canceled. Events
// still in the log at shutdown are drained once more and flushed before Run returns.
func (e *Exporter) Run(ctx context.Context) error {
	e.batch.Start(context.WithoutCancel(ctx))
	defer e.batch.Stop()

	e.logger.Info("exporter started",
		zap.Stringer("run_id", e.cfg.RunID),
		zap.Duration("interval", e.cfg.Interval),
	)

	for {
		if err := e.sleep(ctx, e.cfg.Interval); err != nil {
			if drainErr := e.run(context.WithoutCancel(ctx)); drainErr != nil {
				e.logger.Warn("final drain failed", zap.Error(drainErr))
			}
			return err
		}
		if err := e.run(ctx); err != nil {
			if ctx.Err() != nil {
				continue
			}
			e.logger.Warn("event drain failed", zap.Error(err))
		}
	}
}

func (e *Exporter) run(ctx context.Context) error {
	events := e.source.ConsumeEventHistory()
	e.metrics.ObserveDrain(len(events))
	if len(events) == 0 {
		return nil
	}

	e.logger.Debug("events drained", zap.Int("count", len(events)), zap.Uint64("last_seq", events[len(events)-1].Seq))
	if err := e.batch.Add(ctx, events...); err != nil {
		return fmt.Errorf("queue %d events: %w", len(events), err)
	}
	return nil
}

func (e *Exporter) flush(ctx context.Context, events []model.Event) error {
	started := time.Now()
	ctx, cancel := context.WithTimeout(ctx, e.cfg.FlushTimeout)
	defer cancel()

	err := workerpool.Run(ctx,
		func(ctx context.Context) error {
			return e.repo.InsertEvents(ctx, e.cfg.RunID, events)
		},
		func(ctx context.Context) error {
			return e.repo.InsertTxInclusions(ctx, e.cfg.RunID, events)
		},
	)
	e.metrics.ObserveFlush(err, len(events), started)
	if err != nil {
		return fmt.Errorf("export %d events: %w", len(events), err)
	}
	return nil
}

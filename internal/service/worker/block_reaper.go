package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-mocknode/internal/clock"
	"go.uber.org/zap"
)

// BlockReaperConfig controls how often old blocks are dropped and how many survive.
type BlockReaperConfig struct {
	Interval     time.Duration
	BlocksToKeep int
}

func (c BlockReaperConfig) validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("%w: reaper interval %s", ErrInvalidConfig, c.Interval)
	}
	if c.BlocksToKeep < 0 {
		return fmt.Errorf("%w: blocks to keep %d", ErrInvalidConfig, c.BlocksToKeep)
	}
	return nil
}

// BlockReaper bounds the retained block history.
type BlockReaper struct {
	logger  *zap.Logger
	trimmer BlockTrimmer
	metrics Metrics
	sleep   clock.Sleeper
	cfg     BlockReaperConfig
}

// NewBlockReaper builds a BlockReaper. The config is validated when Run starts.
func NewBlockReaper(trimmer BlockTrimmer, metrics Metrics, cfg BlockReaperConfig, logger *zap.Logger) (*BlockReaper, error) {
	if trimmer == nil {
		return nil, errors.New("block trimmer is required")
	}
	if metrics == nil {
		return nil, errors.New("block reaper metrics is required")
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &BlockReaper{
		logger:  logger.Named("blockReaper"),
		trimmer: trimmer,
		metrics: metrics,
		sleep:   clock.SleepWithContext,
		cfg:     cfg,
	}, nil
}

// Run trims the history every interval until the context is canceled.
func (r *BlockReaper) Run(ctx context.Context) error {
	if err := r.cfg.validate(); err != nil {
		return err
	}
	r.logger.Info("block reaper started",
		zap.Duration("interval", r.cfg.Interval),
		zap.Int("blocks_to_keep", r.cfg.BlocksToKeep),
	)

	for {
		if err := r.sleep(ctx, r.cfg.Interval); err != nil {
			return err
		}
		if err := r.run(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			r.logger.Warn("reaper iteration failed", zap.Error(err))
		}
	}
}

func (r *BlockReaper) run(ctx context.Context) error {
	started := time.Now()
	dropped, err := r.trimmer.TrimBlocks(ctx, r.cfg.BlocksToKeep)
	if err != nil {
		r.metrics.ObserveIteration(outcomeFailed, err, started)
		return err
	}
	if dropped == 0 {
		r.metrics.ObserveIteration(outcomeIdle, nil, started)
		return nil
	}

	r.logger.Debug("old blocks dropped", zap.Int("dropped", dropped))
	r.metrics.ObserveIteration(outcomeTrimmed, nil, started)
	return nil
}

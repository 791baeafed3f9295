// Package batcher buffers items and hands them to a flush callback in rate limited batches.
package batcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrStopped is returned by Add once Stop has been called.
var ErrStopped = errors.New("batcher stopped")

// FlushFunc receives a batch that is owned by the callee.
type FlushFunc[T any] func(context.Context, []T) error

// Config controls batch size, the idle flush interval and the maximum flushes per second.
type Config struct {
	Size     int
	Interval time.Duration
	RPS      int
}

func (c Config) validate() error {
	switch {
	case c.Size <= 0:
		return errors.New("batch size must be positive")
	case c.Interval <= 0:
		return errors.New("flush interval must be positive")
	case c.RPS <= 0:
		return errors.New("flush rps must be positive")
	}
	return nil
}

// Batcher flushes either when Size items are buffered or Interval elapses.
type Batcher[T any] struct {
	cfg     Config
	flush   FlushFunc[T]
	itemsCh chan T
	rl      ratelimit.Limiter
	logger  *zap.Logger

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

func New[T any](cfg Config, flush FlushFunc[T], logger *zap.Logger) (*Batcher[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if flush == nil {
		return nil, errors.New("flush callback is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Batcher[T]{
		cfg:     cfg,
		flush:   flush,
		itemsCh: make(chan T, cfg.Size*2),
		rl:      ratelimit.New(cfg.RPS),
		logger:  logger,
		stop:    make(chan struct{}),
	}, nil
}

// Start launches the flushing loop. It must be called once.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop flushes whatever is buffered and waits for the loop to exit. It is safe to call more than once.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() { close(b.stop) })
	b.wg.Wait()
}

// Add queues items, blocking while the buffer is full.
func (b *Batcher[T]) Add(ctx context.Context, items ...T) error {
	for _, item := range items {
		select {
		case <-b.stop:
			return ErrStopped
		default:
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-b.stop:
			return ErrStopped
		case b.itemsCh <- item:
		}
	}
	return nil
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.cfg.Interval)
	defer ticker.Stop()

	buf := make([]T, 0, b.cfg.Size)

	flush := func(ctx context.Context) {
		if len(buf) == 0 {
			return
		}

		batch := make([]T, len(buf))
		copy(batch, buf)
		buf = buf[:0]

		b.rl.Take()
		if err := b.flush(ctx, batch); err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(batch)), zap.Error(err))
			return
		}
		b.logger.Debug("batch flushed", zap.Int("size", len(batch)))
	}

	drain := func() {
		for {
			select {
			case item := <-b.itemsCh:
				buf = append(buf, item)
			default:
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			drain()
			// the parent context is gone, the last flush gets a detached one
			flush(context.WithoutCancel(ctx))
			return

		case <-b.stop:
			drain()
			flush(ctx)
			return

		case item := <-b.itemsCh:
			buf = append(buf, item)
			if len(buf) >= b.cfg.Size {
				flush(ctx)
			}

		case <-ticker.C:
			flush(ctx)
		}
	}
}

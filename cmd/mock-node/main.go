package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/google/uuid"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-mocknode/internal/ledger"
	"github.com/goodnatureofminers/blockinsight7000-mocknode/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-mocknode/internal/node"
	"github.com/goodnatureofminers/blockinsight7000-mocknode/internal/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-mocknode/internal/service/exporter"
	"github.com/goodnatureofminers/blockinsight7000-mocknode/internal/service/worker"
	"github.com/goodnatureofminers/blockinsight7000-mocknode/internal/txgen"
	"github.com/goodnatureofminers/blockinsight7000-mocknode/pkg/batcher"
)

type config struct {
	SlotDuration   time.Duration `long:"slot-duration" env:"MOCKNODE_SLOT_DURATION" description:"interval between slot ticks" default:"1s"`
	TxInterval     time.Duration `long:"tx-interval" env:"MOCKNODE_TX_INTERVAL" description:"interval between synthetic transactions, 0 disables the generator" default:"0s"`
	ReaperInterval time.Duration `long:"reaper-interval" env:"MOCKNODE_REAPER_INTERVAL" description:"interval between block trims" default:"10s"`
	BlocksToKeep   int           `long:"blocks-to-keep" env:"MOCKNODE_BLOCKS_TO_KEEP" description:"number of most recent blocks retained by the reaper" default:"1000"`

	HTTPAddr    string `long:"http-addr" env:"MOCKNODE_HTTP_ADDR" description:"HTTP API listen address" default:":8001"`
	GRPCAddr    string `long:"grpc-addr" env:"MOCKNODE_GRPC_ADDR" description:"gRPC health listen address" default:":8000"`
	MetricsAddr string `long:"metrics-addr" env:"MOCKNODE_METRICS_ADDR" description:"prometheus listen address" default:":9100"`

	ClickhouseDSN  string        `long:"clickhouse-dsn" env:"MOCKNODE_CLICKHOUSE_DSN" description:"ClickHouse DSN, enables event export when set"`
	ExportInterval time.Duration `long:"export-interval" env:"MOCKNODE_EXPORT_INTERVAL" description:"interval between event log drains" default:"5s"`
	ExportBatch    int           `long:"export-batch" env:"MOCKNODE_EXPORT_BATCH" description:"events per ClickHouse write" default:"1000"`
	ExportRPS      int           `long:"export-rps" env:"MOCKNODE_EXPORT_RPS" description:"maximum ClickHouse writes per second" default:"10"`

	Seed           uint64  `long:"seed" env:"MOCKNODE_SEED" description:"seed of the transaction generator" default:"1"`
	GenesisOutputs int     `long:"genesis-outputs" env:"MOCKNODE_GENESIS_OUTPUTS" description:"number of spendable genesis outputs" default:"100"`
	GenesisValue   float64 `long:"genesis-value" env:"MOCKNODE_GENESIS_VALUE" description:"value of each genesis output in BTC" default:"50"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("mock node failed", zap.Error(err))
	}
}

type runner interface {
	Run(ctx context.Context) error
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	value, err := btcutil.NewAmount(cfg.GenesisValue)
	if err != nil {
		return fmt.Errorf("genesis value: %w", err)
	}
	genesis, err := ledger.Genesis(cfg.GenesisOutputs, value)
	if err != nil {
		return fmt.Errorf("build genesis: %w", err)
	}

	var source node.TxSource
	if cfg.TxInterval > 0 {
		src, err := txgen.New(txgen.Config{Seed: cfg.Seed})
		if err != nil {
			return fmt.Errorf("init tx source: %w", err)
		}
		source = src
	}

	n, err := node.New(ledger.New(genesis, nil), source, metrics.NewPipeline(), logger.Named("node"))
	if err != nil {
		return fmt.Errorf("init node: %w", err)
	}

	workers, closeWorkers, err := newWorkers(cfg, n, logger)
	if err != nil {
		return err
	}
	defer closeWorkers()

	startMetricsServer(ctx, cfg.MetricsAddr, logger)
	if err := startGRPCServer(ctx, cfg.GRPCAddr, n, logger); err != nil {
		return err
	}

	var wg sync.WaitGroup
	for name, w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("worker stopped", zap.String("worker", name), zap.Error(err))
			}
		}()
	}

	err = serveHTTP(ctx, cfg.HTTPAddr, n, logger)
	// an early listen failure must still stop the workers
	cancel()
	wg.Wait()
	return err
}

func newWorkers(cfg config, n *node.Node, logger *zap.Logger) (map[string]runner, func(), error) {
	workers := make(map[string]runner)
	closer := func() {}

	ticker, err := worker.NewSlotTicker(n, metrics.NewWorker("slot_ticker"), cfg.SlotDuration, logger)
	if err != nil {
		return nil, closer, fmt.Errorf("init slot ticker: %w", err)
	}
	workers["slot_ticker"] = ticker

	reaper, err := worker.NewBlockReaper(n, metrics.NewWorker("block_reaper"), worker.BlockReaperConfig{
		Interval:     cfg.ReaperInterval,
		BlocksToKeep: cfg.BlocksToKeep,
	}, logger)
	if err != nil {
		return nil, closer, fmt.Errorf("init block reaper: %w", err)
	}
	workers["block_reaper"] = reaper

	if cfg.TxInterval > 0 {
		generator, err := worker.NewTxGenerator(n, metrics.NewWorker("tx_generator"), cfg.TxInterval, logger)
		if err != nil {
			return nil, closer, fmt.Errorf("init tx generator: %w", err)
		}
		workers["tx_generator"] = generator
	} else {
		logger.Info("tx generator disabled")
	}

	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return nil, closer, fmt.Errorf("init clickhouse repository: %w", err)
		}
		closer = func() {
			if err := repo.Close(); err != nil {
				logger.Warn("close clickhouse repository", zap.Error(err))
			}
		}

		runID, err := uuid.NewV7()
		if err != nil {
			closer()
			return nil, func() {}, fmt.Errorf("generate export run id: %w", err)
		}

		exp, err := exporter.New(n, repo, metrics.NewExporter(), exporter.Config{
			RunID:    runID,
			Interval: cfg.ExportInterval,
			Batch: batcher.Config{
				Size:     cfg.ExportBatch,
				Interval: cfg.ExportInterval,
				RPS:      cfg.ExportRPS,
			},
		}, logger)
		if err != nil {
			closer()
			return nil, func() {}, fmt.Errorf("init exporter: %w", err)
		}
		workers["exporter"] = exp
	}

	return workers, closer, nil
}

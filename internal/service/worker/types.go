// Package worker contains the periodic background loops that drive the mock node.
package worker

import (
	"context"
	"errors"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-mocknode/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// ErrInvalidConfig is returned by Run when a worker is started with unusable settings.
var ErrInvalidConfig = errors.New("invalid worker config")

type (
	BlockProducer interface {
		ProcessBlock(ctx context.Context) ([]model.Event, error)
	}
	TxInjector interface {
		GenerateTx(ctx context.Context) (chainhash.Hash, bool, error)
	}
	BlockTrimmer interface {
		TrimBlocks(ctx context.Context, keep int) (int, error)
	}
	Metrics interface {
		ObserveIteration(outcome string, err error, started time.Time)
	}
)

const (
	outcomeProduced  = "produced"
	outcomeIdle      = "idle"
	outcomeSubmitted = "submitted"
	outcomeDiscarded = "discarded"
	outcomeTrimmed   = "trimmed"
	outcomeFailed    = "failed"
)

// Package transport exposes the mock node over HTTP and gRPC.
package transport

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-mocknode/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-mocknode/internal/node"
	"github.com/google/uuid"
)

type (
	Healthchecker interface {
		Healthcheck(ctx context.Context) error
	}

	Node interface {
		Healthchecker
		AddTx(ctx context.Context, tx *wire.MsgTx) (chainhash.Hash, error)
		AddBlock(ctx context.Context) error
		CurrentSlot() uint64
		BlocksSince(ctx context.Context, slot uint64) ([]model.Block, error)
		ConsumeEventHistory() []model.Event
		NewFollower(ctx context.Context) (uuid.UUID, error)
		FollowerBlocks(ctx context.Context, id uuid.UUID) ([]model.Block, error)
		Stats() node.Stats
	}
)

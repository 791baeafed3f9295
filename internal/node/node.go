// Package node holds the mock node state and the pipeline that serializes every access to it.
package node

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-mocknode/internal/ledger"
	"github.com/goodnatureofminers/blockinsight7000-mocknode/internal/model"
	"go.uber.org/zap"
)

// State is the whole mutable node state. It is only touched with Node.mu held.
type State struct {
	Chain     *ledger.Chain
	Followers *followers
	History   []model.Event
}

// Node owns the state and runs operations against it one at a time.
type Node struct {
	mu    sync.Mutex
	state State
	seq   uint64

	// slot mirrors state.Chain.Slot() after every run for lock-free reads.
	slot atomic.Uint64

	source  TxSource
	metrics PipelineMetrics
	logger  *zap.Logger
	now     func() time.Time
}

// New builds a Node around chain. source may be nil when synthetic transactions are disabled.
func New(chain *ledger.Chain, source TxSource, metrics PipelineMetrics, logger *zap.Logger) (*Node, error) {
	if chain == nil {
		return nil, errors.New("chain is required")
	}
	if metrics == nil {
		return nil, errors.New("pipeline metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	n := &Node{
		state: State{
			Chain:     chain,
			Followers: newFollowers(),
		},
		source:  source,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
	}
	n.slot.Store(chain.Slot())
	return n, nil
}

// Run executes op under the node lock, then commits whatever is pending, appends all produced
// events to the history and returns them with the operation result. The commit happens even
// when op fails or only reads; a failed op leaves the state as it was before the op.
func (n *Node) Run(ctx context.Context, op Operation) (Result, []model.Event, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, nil, err
	}

	waitStarted := time.Now()
	n.mu.Lock()
	defer n.mu.Unlock()
	n.metrics.ObserveLockWait(op.Kind.String(), time.Since(waitStarted))

	started := time.Now()
	res, events, err := n.interpret(op)
	if err != nil {
		n.logger.Debug("operation failed", zap.Stringer("op", op.Kind), zap.Error(err))
	}
	events = append(events, n.commit()...)
	events = n.record(events)
	n.slot.Store(n.state.Chain.Slot())

	n.metrics.ObserveOperation(op.Kind.String(), err, len(events), started)
	return res, events, err
}

func (n *Node) interpret(op Operation) (Result, []model.Event, error) {
	chain := n.state.Chain

	switch op.Kind {
	case ProcessBlock:
		events := n.commit()
		return Result{Slot: chain.Slot()}, events, nil

	case SubmitTx:
		return n.submit(op)

	case CurrentSlot:
		return Result{Slot: chain.Slot()}, nil, nil

	case BlocksSince:
		events := n.commit()
		return Result{Slot: chain.Slot(), Blocks: chain.BlocksSince(op.Slot)}, events, nil

	case TrimBlocks:
		if op.Keep < 0 {
			return Result{}, nil, ErrInvalidKeep
		}
		dropped := chain.Truncate(op.Keep)
		if dropped > 0 {
			n.logger.Debug("blocks trimmed", zap.Int("dropped", dropped), zap.Int("kept", op.Keep))
		}
		return Result{Slot: chain.Slot(), Dropped: dropped}, nil, nil

	case GenerateTx:
		if n.source == nil {
			return Result{}, nil, ErrNoTxSource
		}
		tx := n.source.Generate(chain.Spendable())
		if tx == nil || len(tx.TxOut) == 0 {
			return Result{Slot: chain.Slot(), Discarded: true}, nil, nil
		}
		return n.submit(Operation{Kind: SubmitTx, Tx: tx})

	case NewFollower:
		id, err := n.state.Followers.add()
		if err != nil {
			return Result{}, nil, err
		}
		return Result{Slot: chain.Slot(), Follower: id}, nil, nil

	case FollowerBlocks:
		events := n.commit()
		blocks, err := n.state.Followers.next(op.Follower, chain)
		if err != nil {
			return Result{}, events, err
		}
		return Result{Slot: chain.Slot(), Blocks: blocks, Follower: op.Follower}, events, nil

	default:
		return Result{}, nil, ErrUnknownOperation
	}
}

func (n *Node) submit(op Operation) (Result, []model.Event, error) {
	chain := n.state.Chain
	txid, err := chain.Submit(op.Tx)
	if err != nil {
		return Result{TxID: txid}, nil, err
	}
	return Result{Slot: chain.Slot(), TxID: txid}, []model.Event{model.NewTxQueued(txid, chain.Slot(), n.now())}, nil
}

func (n *Node) commit() []model.Event {
	blk, ok := n.state.Chain.Commit()
	if !ok {
		return nil
	}
	n.logger.Debug("block produced",
		zap.Uint64("slot", blk.Slot),
		zap.Stringer("hash", blk.Hash()),
		zap.Int("txs", len(blk.Msg.Transactions)),
	)
	return []model.Event{model.NewBlockProduced(blk, n.now())}
}

func (n *Node) record(events []model.Event) []model.Event {
	for i := range events {
		n.seq++
		events[i].Seq = n.seq
	}
	n.state.History = append(n.state.History, events...)
	return events
}

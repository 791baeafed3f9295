package node

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-mocknode/internal/model"
	"github.com/google/uuid"
)

// Healthcheck reports liveness. It never touches the state.
func (n *Node) Healthcheck(context.Context) error {
	return nil
}

// AddTx queues tx. The trailing commit of the same run usually seals it into a block.
func (n *Node) AddTx(ctx context.Context, tx *wire.MsgTx) (chainhash.Hash, error) {
	res, _, err := n.Run(ctx, Operation{Kind: SubmitTx, Tx: tx})
	return res.TxID, err
}

// AddBlock forces a commit of the pending pool.
func (n *Node) AddBlock(ctx context.Context) error {
	_, err := n.ProcessBlock(ctx)
	return err
}

// ProcessBlock commits the pending pool and returns the events of the run.
func (n *Node) ProcessBlock(ctx context.Context) ([]model.Event, error) {
	_, events, err := n.Run(ctx, Operation{Kind: ProcessBlock})
	return events, err
}

// CurrentSlot returns the slot as of the latest completed run without taking the lock.
func (n *Node) CurrentSlot() uint64 {
	return n.slot.Load()
}

// BlocksSince flushes pending transactions and returns blocks produced at or after slot, oldest first.
func (n *Node) BlocksSince(ctx context.Context, slot uint64) ([]model.Block, error) {
	res, _, err := n.Run(ctx, Operation{Kind: BlocksSince, Slot: slot})
	return res.Blocks, err
}

// TrimBlocks drops all but the keep newest blocks and returns how many were dropped.
func (n *Node) TrimBlocks(ctx context.Context, keep int) (int, error) {
	res, _, err := n.Run(ctx, Operation{Kind: TrimBlocks, Keep: keep})
	return res.Dropped, err
}

// GenerateTx asks the transaction source for a candidate and submits it when it has outputs.
// submitted is false when the candidate was discarded or rejected.
func (n *Node) GenerateTx(ctx context.Context) (txid chainhash.Hash, submitted bool, err error) {
	res, _, err := n.Run(ctx, Operation{Kind: GenerateTx})
	if err != nil || res.Discarded {
		return res.TxID, false, err
	}
	return res.TxID, true, nil
}

// NewFollower registers a follower that starts from the oldest retained block.
func (n *Node) NewFollower(ctx context.Context) (uuid.UUID, error) {
	res, _, err := n.Run(ctx, Operation{Kind: NewFollower})
	return res.Follower, err
}

// FollowerBlocks returns blocks the follower has not seen yet and moves its cursor to the current slot.
func (n *Node) FollowerBlocks(ctx context.Context, id uuid.UUID) ([]model.Block, error) {
	res, _, err := n.Run(ctx, Operation{Kind: FollowerBlocks, Follower: id})
	return res.Blocks, err
}

// ConsumeEventHistory returns the accumulated events and clears the log.
func (n *Node) ConsumeEventHistory() []model.Event {
	n.mu.Lock()
	defer n.mu.Unlock()

	events := n.state.History
	n.state.History = nil
	return events
}

// Stats is a consistent snapshot of node counters.
type Stats struct {
	Slot      uint64
	Blocks    int
	Pending   int
	Unspent   int
	Followers int
	Events    int
}

// Stats reads counters under the lock without running the pipeline.
func (n *Node) Stats() Stats {
	n.mu.Lock()
	defer n.mu.Unlock()

	chain := n.state.Chain
	return Stats{
		Slot:      chain.Slot(),
		Blocks:    chain.BlockCount(),
		Pending:   chain.PendingCount(),
		Unspent:   chain.UnspentCount(),
		Followers: n.state.Followers.len(),
		Events:    len(n.state.History),
	}
}

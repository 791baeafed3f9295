package model

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// EventKind describes what happened to the chain.
type EventKind string

var (
	// EventTxQueued marks a transaction accepted into the pending pool.
	EventTxQueued EventKind = "tx_queued"
	// EventBlockProduced marks a block committed from the pending pool.
	EventBlockProduced EventKind = "block_produced"
)

// Event is an immutable entry of the node event log.
type Event struct {
	// Seq is assigned when the event is appended to the log and grows with commit order.
	Seq       uint64
	Kind      EventKind
	Slot      uint64
	TxID      chainhash.Hash
	BlockHash chainhash.Hash
	TxIDs     []chainhash.Hash
	Recorded  time.Time
}

// NewTxQueued builds an event for a transaction that entered the pending pool during slot.
func NewTxQueued(txid chainhash.Hash, slot uint64, at time.Time) Event {
	return Event{
		Kind:     EventTxQueued,
		Slot:     slot,
		TxID:     txid,
		Recorded: at,
	}
}

// NewBlockProduced builds an event for a freshly committed block.
func NewBlockProduced(b Block, at time.Time) Event {
	return Event{
		Kind:      EventBlockProduced,
		Slot:      b.Slot,
		BlockHash: b.Hash(),
		TxIDs:     b.TxIDs(),
		Recorded:  at,
	}
}

package node

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-mocknode/internal/model"
	"github.com/google/uuid"
)

var (
	// ErrUnknownOperation is returned for an operation kind the pipeline does not interpret.
	ErrUnknownOperation = errors.New("unknown operation")
	// ErrNoTxSource is returned by GenerateTx when the node has no transaction source.
	ErrNoTxSource = errors.New("transaction source is not configured")
	// ErrInvalidKeep is returned when a block trim asks to keep a negative number of blocks.
	ErrInvalidKeep = errors.New("blocks to keep must not be negative")
)

// Kind enumerates the operations the pipeline interprets.
type Kind int

const (
	ProcessBlock Kind = iota
	SubmitTx
	CurrentSlot
	BlocksSince
	TrimBlocks
	GenerateTx
	NewFollower
	FollowerBlocks
)

var kindNames = [...]string{
	ProcessBlock:   "process_block",
	SubmitTx:       "submit_tx",
	CurrentSlot:    "current_slot",
	BlocksSince:    "blocks_since",
	TrimBlocks:     "trim_blocks",
	GenerateTx:     "generate_tx",
	NewFollower:    "new_follower",
	FollowerBlocks: "follower_blocks",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Operation is a single request to the pipeline. Only the fields used by Kind are read.
type Operation struct {
	Kind     Kind
	Tx       *wire.MsgTx // SubmitTx
	Slot     uint64      // BlocksSince
	Keep     int         // TrimBlocks
	Follower uuid.UUID   // FollowerBlocks
}

// Result carries the value produced by an operation.
type Result struct {
	Slot      uint64
	Blocks    []model.Block
	TxID      chainhash.Hash
	Dropped   int
	Follower  uuid.UUID
	Discarded bool
}

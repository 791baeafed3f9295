// Package model defines domain models shared by the mock node components.
package model

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// Block is a committed block together with the slot it was produced in.
// Blocks are never mutated after the ledger hands them out.
type Block struct {
	Slot uint64
	Msg  *wire.MsgBlock
}

// Hash returns the block header hash.
func (b Block) Hash() chainhash.Hash {
	return b.Msg.Header.BlockHash()
}

// TxIDs returns ids of the block transactions in block order.
func (b Block) TxIDs() []chainhash.Hash {
	ids := make([]chainhash.Hash, 0, len(b.Msg.Transactions))
	for _, tx := range b.Msg.Transactions {
		ids = append(ids, tx.TxHash())
	}
	return ids
}

// Contains reports whether the block includes a transaction with the given id.
func (b Block) Contains(txid chainhash.Hash) bool {
	for _, tx := range b.Msg.Transactions {
		if tx.TxHash() == txid {
			return true
		}
	}
	return false
}

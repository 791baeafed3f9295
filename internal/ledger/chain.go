// Package ledger implements the in-memory UTXO chain model of the mock node.
//
// Chain is not safe for concurrent use. The node serializes every access to it.
package ledger

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-mocknode/internal/model"
)

const blockVersion int32 = 1

var zeroHash chainhash.Hash

// Spendable is a confirmed output that no pending transaction consumes.
type Spendable struct {
	OutPoint wire.OutPoint
	Value    btcutil.Amount
	PkScript []byte
}

// Chain holds the slot, the committed blocks (newest first), the pending pool and the unspent set.
type Chain struct {
	slot    uint64
	blocks  []model.Block
	tip     chainhash.Hash
	pending []*wire.MsgTx

	pendingIDs     map[chainhash.Hash]struct{}
	spentByPending map[wire.OutPoint]chainhash.Hash
	utxo           map[wire.OutPoint]*wire.TxOut
	// unspent mirrors utxo ordered by outpoint.
	unspent []Spendable

	now func() time.Time
}

// New creates a chain at slot 0 with no blocks and the genesis outputs unspent.
func New(genesis *wire.MsgTx, now func() time.Time) *Chain {
	if now == nil {
		now = time.Now
	}
	c := &Chain{
		pendingIDs:     make(map[chainhash.Hash]struct{}),
		spentByPending: make(map[wire.OutPoint]chainhash.Hash),
		utxo:           make(map[wire.OutPoint]*wire.TxOut),
		now:            now,
	}
	if genesis != nil {
		c.addOutputs(genesis)
	}
	return c
}

// Slot returns the current slot.
func (c *Chain) Slot() uint64 {
	return c.slot
}

// Blocks returns the retained blocks, newest first.
func (c *Chain) Blocks() []model.Block {
	out := make([]model.Block, len(c.blocks))
	copy(out, c.blocks)
	return out
}

// Pending returns the pending pool in submission order.
func (c *Chain) Pending() []*wire.MsgTx {
	out := make([]*wire.MsgTx, len(c.pending))
	copy(out, c.pending)
	return out
}

// BlockCount returns the number of retained blocks.
func (c *Chain) BlockCount() int {
	return len(c.blocks)
}

// PendingCount returns the size of the pending pool.
func (c *Chain) PendingCount() int {
	return len(c.pending)
}

// UnspentCount returns the size of the unspent output set.
func (c *Chain) UnspentCount() int {
	return len(c.utxo)
}

// Spendable lists unspent outputs not consumed by the pending pool, ordered by outpoint.
func (c *Chain) Spendable() []Spendable {
	out := make([]Spendable, 0, len(c.unspent))
	for _, s := range c.unspent {
		if _, spent := c.spentByPending[s.OutPoint]; spent {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Submit validates tx against the unspent set and the pending pool and queues a private copy of it.
// A rejected transaction leaves the chain unchanged.
func (c *Chain) Submit(tx *wire.MsgTx) (chainhash.Hash, error) {
	if tx == nil {
		return chainhash.Hash{}, fmt.Errorf("%w: nil transaction", ErrMalformedTx)
	}
	txid := tx.TxHash()
	if err := c.validate(tx); err != nil {
		return txid, fmt.Errorf("submit tx %s: %w", txid, err)
	}

	queued := tx.Copy()
	c.pending = append(c.pending, queued)
	c.pendingIDs[txid] = struct{}{}
	for _, in := range queued.TxIn {
		c.spentByPending[in.PreviousOutPoint] = txid
	}
	return txid, nil
}

// Commit folds the pending pool into a new block and advances the slot in one step.
// It reports false and leaves the chain untouched when nothing is pending.
func (c *Chain) Commit() (model.Block, bool) {
	if len(c.pending) == 0 {
		return model.Block{}, false
	}

	txs := make([]*btcutil.Tx, 0, len(c.pending))
	for _, tx := range c.pending {
		txs = append(txs, btcutil.NewTx(tx))
	}
	merkle := blockchain.CalcMerkleRoot(txs, false)
	prev := c.tip

	header := wire.NewBlockHeader(blockVersion, &prev, &merkle, 0, uint32(c.slot))
	header.Timestamp = time.Unix(c.now().Unix(), 0)
	msg := wire.NewMsgBlock(header)
	for _, tx := range c.pending {
		// AddTransaction only appends; its error is always nil.
		_ = msg.AddTransaction(tx)
		c.spend(tx)
		c.addOutputs(tx)
	}

	blk := model.Block{Slot: c.slot, Msg: msg}
	c.blocks = append([]model.Block{blk}, c.blocks...)
	c.tip = blk.Hash()
	c.slot++

	c.pending = nil
	c.pendingIDs = make(map[chainhash.Hash]struct{})
	c.spentByPending = make(map[wire.OutPoint]chainhash.Hash)
	return blk, true
}

// Truncate keeps the keep newest blocks and returns how many were dropped.
func (c *Chain) Truncate(keep int) int {
	if keep < 0 {
		keep = 0
	}
	if keep >= len(c.blocks) {
		return 0
	}
	dropped := len(c.blocks) - keep
	kept := make([]model.Block, keep)
	copy(kept, c.blocks[:keep])
	c.blocks = kept
	return dropped
}

// BlocksSince returns retained blocks produced at or after slot, oldest first.
func (c *Chain) BlocksSince(slot uint64) []model.Block {
	out := make([]model.Block, 0, len(c.blocks))
	for i := len(c.blocks) - 1; i >= 0; i-- {
		if c.blocks[i].Slot >= slot {
			out = append(out, c.blocks[i])
		}
	}
	return out
}

func (c *Chain) validate(tx *wire.MsgTx) error {
	if err := blockchain.CheckTransactionSanity(btcutil.NewTx(tx)); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedTx, err)
	}
	if blockchain.IsCoinBaseTx(tx) {
		return ErrCoinbase
	}
	if _, ok := c.pendingIDs[tx.TxHash()]; ok {
		return ErrDuplicateTx
	}

	var inputs int64
	for _, in := range tx.TxIn {
		prev := in.PreviousOutPoint
		if spender, ok := c.spentByPending[prev]; ok {
			return fmt.Errorf("%w: %s spent by %s", ErrDoubleSpend, prev, spender)
		}
		out, ok := c.utxo[prev]
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingInput, prev)
		}
		inputs += out.Value
	}

	var outputs int64
	for _, out := range tx.TxOut {
		outputs += out.Value
	}
	if outputs > inputs {
		return fmt.Errorf("%w: %d > %d", ErrInsufficientInput, outputs, inputs)
	}
	return nil
}

func (c *Chain) spend(tx *wire.MsgTx) {
	for _, in := range tx.TxIn {
		op := in.PreviousOutPoint
		delete(c.utxo, op)
		if i, found := c.searchUnspent(op); found {
			c.unspent = slices.Delete(c.unspent, i, i+1)
		}
	}
}

func (c *Chain) addOutputs(tx *wire.MsgTx) {
	txid := tx.TxHash()
	for i, out := range tx.TxOut {
		op := wire.OutPoint{Hash: txid, Index: uint32(i)}
		c.utxo[op] = out
		entry := Spendable{OutPoint: op, Value: btcutil.Amount(out.Value), PkScript: out.PkScript}
		if at, found := c.searchUnspent(op); found {
			c.unspent[at] = entry
		} else {
			c.unspent = slices.Insert(c.unspent, at, entry)
		}
	}
}

func (c *Chain) searchUnspent(op wire.OutPoint) (int, bool) {
	return slices.BinarySearchFunc(c.unspent, op, func(s Spendable, target wire.OutPoint) int {
		return compareOutPoints(s.OutPoint, target)
	})
}

func compareOutPoints(a, b wire.OutPoint) int {
	if c := bytes.Compare(a.Hash[:], b.Hash[:]); c != 0 {
		return c
	}
	return cmp.Compare(a.Index, b.Index)
}

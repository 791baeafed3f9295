// Package txgen produces synthetic transactions spending outputs of the mock ledger.
package txgen

import (
	"errors"
	"math/rand/v2"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-mocknode/internal/ledger"
)

const (
	defaultMaxOutputs = 3
	defaultFee        = btcutil.Amount(1_000)
	defaultDust       = btcutil.Amount(546)
)

// Config tunes generated transactions. Zero values fall back to defaults.
type Config struct {
	Seed       uint64
	MaxOutputs int
	Fee        btcutil.Amount
	Dust       btcutil.Amount
}

// Source builds random transactions. It is not safe for concurrent use.
type Source struct {
	rng        *rand.Rand
	maxOutputs int
	fee        btcutil.Amount
	dust       btcutil.Amount
	script     []byte
}

// New constructs a Source seeded from cfg.Seed so runs are reproducible.
func New(cfg Config) (*Source, error) {
	if cfg.MaxOutputs < 0 {
		return nil, errors.New("max outputs must not be negative")
	}
	if cfg.Fee < 0 || cfg.Dust < 0 {
		return nil, errors.New("fee and dust must not be negative")
	}
	if cfg.MaxOutputs == 0 {
		cfg.MaxOutputs = defaultMaxOutputs
	}
	if cfg.Fee == 0 {
		cfg.Fee = defaultFee
	}
	if cfg.Dust == 0 {
		cfg.Dust = defaultDust
	}

	return &Source{
		rng:        rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
		maxOutputs: cfg.MaxOutputs,
		fee:        cfg.Fee,
		dust:       cfg.Dust,
		script:     ledger.AnyoneCanSpend(),
	}, nil
}

// Generate spends one random output into up to maxOutputs outputs after paying the fee.
// When nothing can be spent above dust the returned transaction has no outputs.
func (s *Source) Generate(spendable []ledger.Spendable) *wire.MsgTx {
	tx := wire.NewMsgTx(wire.TxVersion)
	if len(spendable) == 0 {
		return tx
	}

	pick := spendable[s.rng.IntN(len(spendable))]
	tx.AddTxIn(wire.NewTxIn(&pick.OutPoint, nil, nil))

	available := pick.Value - s.fee
	if available < s.dust {
		return tx
	}

	parts := 1 + s.rng.IntN(s.maxOutputs)
	if limit := int64(available / s.dust); int64(parts) > limit {
		parts = int(limit)
	}
	share := available / btcutil.Amount(parts)
	for i := 0; i < parts; i++ {
		value := share
		if i == parts-1 {
			value = available - share*btcutil.Amount(parts-1)
		}
		tx.AddTxOut(wire.NewTxOut(int64(value), s.script))
	}
	return tx
}

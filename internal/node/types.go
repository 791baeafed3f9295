package node

import (
	"time"

	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-mocknode/internal/ledger"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// TxSource produces candidate transactions from the currently spendable outputs.
	TxSource interface {
		Generate(spendable []ledger.Spendable) *wire.MsgTx
	}

	// PipelineMetrics records pipeline runs.
	PipelineMetrics interface {
		ObserveOperation(operation string, err error, events int, started time.Time)
		ObserveLockWait(operation string, waited time.Duration)
	}
)

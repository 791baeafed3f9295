package ledger

import (
	"fmt"
	"math"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

// AnyoneCanSpend returns an OP_TRUE output script. Scripts are not executed by the ledger,
// the script only keeps generated transactions well-formed for external tooling.
func AnyoneCanSpend() []byte {
	script, err := txscript.NewScriptBuilder().AddOp(txscript.OP_TRUE).Script()
	if err != nil {
		// a single opcode never exceeds script limits
		panic(fmt.Sprintf("build OP_TRUE script: %v", err))
	}
	return script
}

// Genesis builds the coinbase-shaped transaction whose outputs seed the unspent set.
func Genesis(outputs int, value btcutil.Amount) (*wire.MsgTx, error) {
	if outputs <= 0 {
		return nil, fmt.Errorf("genesis outputs must be positive, got %d", outputs)
	}
	if value <= 0 || value > btcutil.MaxSatoshi {
		return nil, fmt.Errorf("genesis output value %d out of range", value)
	}

	tx := wire.NewMsgTx(wire.TxVersion)
	tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&zeroHash, math.MaxUint32), []byte("mocknode genesis"), nil))
	script := AnyoneCanSpend()
	for i := 0; i < outputs; i++ {
		tx.AddTxOut(wire.NewTxOut(int64(value), script))
	}
	return tx, nil
}

package clickhouse

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-mocknode/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-mocknode/pkg/safe"
	"github.com/google/uuid"
)

// Seq restarts with every process, so rows are keyed by the run that produced them.
type eventRow struct {
	RunID     uuid.UUID
	Seq       uint64
	Kind      string
	Slot      uint64
	TxID      string
	BlockHash string
	TxIDs     []string
	Recorded  int64
}

type inclusionRow struct {
	RunID     uuid.UUID
	TxID      string
	Slot      uint64
	BlockHash string
	Position  uint32
	Seq       uint64
}

func toEventRow(runID uuid.UUID, ev model.Event) eventRow {
	ids := make([]string, 0, len(ev.TxIDs))
	for _, id := range ev.TxIDs {
		ids = append(ids, id.String())
	}
	return eventRow{
		RunID:     runID,
		Seq:       ev.Seq,
		Kind:      string(ev.Kind),
		Slot:      ev.Slot,
		TxID:      hashOrEmpty(ev.TxID),
		BlockHash: hashOrEmpty(ev.BlockHash),
		TxIDs:     ids,
		Recorded:  ev.Recorded.UnixMilli(),
	}
}

// toInclusionRows flattens produced blocks into one row per included transaction.
func toInclusionRows(runID uuid.UUID, events []model.Event) ([]inclusionRow, error) {
	var rows []inclusionRow
	for _, ev := range events {
		if ev.Kind != model.EventBlockProduced {
			continue
		}
		for i, id := range ev.TxIDs {
			pos, err := safe.Uint32(i)
			if err != nil {
				return nil, fmt.Errorf("block %s position: %w", ev.BlockHash, err)
			}
			rows = append(rows, inclusionRow{
				RunID:     runID,
				TxID:      id.String(),
				Slot:      ev.Slot,
				BlockHash: ev.BlockHash.String(),
				Position:  pos,
				Seq:       ev.Seq,
			})
		}
	}
	return rows, nil
}

func hashOrEmpty(h chainhash.Hash) string {
	if h == (chainhash.Hash{}) {
		return ""
	}
	return h.String()
}

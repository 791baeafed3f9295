package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-mocknode/internal/model"
	"github.com/google/uuid"
)

// InsertTxInclusions stores one row per transaction of every produced block in events.
func (r *Repository) InsertTxInclusions(ctx context.Context, runID uuid.UUID, events []model.Event) error {
	start := time.Now()
	var (
		rows []inclusionRow
		err  error
	)
	defer func() {
		r.metrics.Observe("insert_tx_inclusions", len(rows), err, start)
	}()

	rows, err = toInclusionRows(runID, events)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}

	const query = `
INSERT INTO mocknode_tx_inclusions (
	run_id,
	tx_id,
	slot,
	block_hash,
	position,
	seq
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare tx inclusions batch: %w", err)
	}

	for _, row := range rows {
		if err = batch.Append(
			row.RunID,
			row.TxID,
			row.Slot,
			row.BlockHash,
			row.Position,
			row.Seq,
		); err != nil {
			return fmt.Errorf("append tx inclusion: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert tx inclusions: %w", err)
	}
	return nil
}

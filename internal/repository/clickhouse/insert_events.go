package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-mocknode/internal/model"
	"github.com/google/uuid"
)

// InsertEvents stores event log entries of the given run.
func (r *Repository) InsertEvents(ctx context.Context, runID uuid.UUID, events []model.Event) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_events", len(events), err, start)
	}()

	if len(events) == 0 {
		return nil
	}

	const query = `
INSERT INTO mocknode_events (
	run_id,
	seq,
	kind,
	slot,
	tx_id,
	block_hash,
	tx_ids,
	recorded_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare events batch: %w", err)
	}

	for _, ev := range events {
		row := toEventRow(runID, ev)
		if err = batch.Append(
			row.RunID,
			row.Seq,
			row.Kind,
			row.Slot,
			row.TxID,
			row.BlockHash,
			row.TxIDs,
			time.UnixMilli(row.Recorded).UTC(),
		); err != nil {
			return fmt.Errorf("append event: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert events: %w", err)
	}
	return nil
}

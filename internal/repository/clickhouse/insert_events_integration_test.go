package clickhouse

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/golang/mock/gomock"
	"github.com/goodnatureofminers/blockinsight7000-mocknode/internal/model"
	"github.com/google/uuid"
)

func sampleEvents(now time.Time) []model.Event {
	return []model.Event{
		{Seq: 1, Kind: model.EventTxQueued, Slot: 0, TxID: hashOf(1), Recorded: now},
		{Seq: 2, Kind: model.EventTxQueued, Slot: 0, TxID: hashOf(2), Recorded: now},
		{
			Seq:       3,
			Kind:      model.EventBlockProduced,
			Slot:      0,
			BlockHash: hashOf(9),
			TxIDs:     []chainhash.Hash{hashOf(1), hashOf(2)},
			Recorded:  now,
		},
	}
}

func (s *RepositorySuite) newRunID() uuid.UUID {
	id, err := uuid.NewV7()
	s.Require().NoError(err)
	return id
}

func (s *RepositorySuite) TestInsertEvents() {
	runID := s.newRunID()
	events := sampleEvents(time.Now().UTC())

	s.metrics.EXPECT().Observe("insert_events", len(events), gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertEvents(s.testCtx, runID, events))
	s.Equal(uint64(len(events)), s.countRows("mocknode_events"))

	rows, err := s.repo.conn.Query(s.testCtx, `
SELECT kind, length(tx_ids)
FROM mocknode_events
WHERE run_id = ? AND seq = ?`, runID, uint64(3))
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(rows.Close())
	}()

	var (
		kind  string
		count uint64
	)
	s.Require().True(rows.Next())
	s.Require().NoError(rows.Scan(&kind, &count))
	s.Equal("block_produced", kind)
	s.Equal(uint64(2), count)
}

func (s *RepositorySuite) TestInsertEventsEmpty() {
	s.metrics.EXPECT().Observe("insert_events", 0, gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertEvents(s.testCtx, s.newRunID(), nil))
	s.Equal(uint64(0), s.countRows("mocknode_events"))
}

func (s *RepositorySuite) TestInsertTxInclusions() {
	events := sampleEvents(time.Now().UTC())

	s.metrics.EXPECT().Observe("insert_tx_inclusions", 2, gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertTxInclusions(s.testCtx, s.newRunID(), events))
	s.Equal(uint64(2), s.countRows("mocknode_tx_inclusions"))
}

func (s *RepositorySuite) TestInsertAcrossRunsKeepsBothRuns() {
	events := sampleEvents(time.Now().UTC())

	s.metrics.EXPECT().Observe("insert_events", len(events), gomock.Nil(), gomock.Any()).Times(2)
	s.metrics.EXPECT().Observe("insert_tx_inclusions", 2, gomock.Nil(), gomock.Any()).Times(2)

	for _, runID := range []uuid.UUID{s.newRunID(), s.newRunID()} {
		s.Require().NoError(s.repo.InsertEvents(s.testCtx, runID, events))
		s.Require().NoError(s.repo.InsertTxInclusions(s.testCtx, runID, events))
	}

	s.Equal(uint64(2*len(events)), s.countRows("mocknode_events"))
	s.Equal(uint64(4), s.countRows("mocknode_tx_inclusions"))
}

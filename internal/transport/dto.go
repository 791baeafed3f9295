package transport

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-mocknode/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-mocknode/internal/node"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type (
	submitTxRequest struct {
		Tx string `json:"tx"`
	}

	submitTxResponse struct {
		TxID string `json:"txid"`
		Slot uint64 `json:"slot"`
	}

	slotResponse struct {
		Slot uint64 `json:"slot"`
	}

	blockResponse struct {
		Slot       uint64    `json:"slot"`
		Hash       string    `json:"hash"`
		PrevHash   string    `json:"prev_hash"`
		MerkleRoot string    `json:"merkle_root"`
		Timestamp  time.Time `json:"timestamp"`
		TxIDs      []string  `json:"txids"`
		Raw        string    `json:"raw"`
	}

	blocksResponse struct {
		Blocks []blockResponse `json:"blocks"`
	}

	eventResponse struct {
		Seq       uint64    `json:"seq"`
		Kind      string    `json:"kind"`
		Slot      uint64    `json:"slot"`
		TxID      string    `json:"txid,omitempty"`
		BlockHash string    `json:"block_hash,omitempty"`
		TxIDs     []string  `json:"txids,omitempty"`
		Recorded  time.Time `json:"recorded"`
	}

	eventsResponse struct {
		Events []eventResponse `json:"events"`
	}

	followerResponse struct {
		ID   string `json:"id"`
		Slot uint64 `json:"slot"`
	}

	statsResponse struct {
		Slot      uint64 `json:"slot"`
		Blocks    int    `json:"blocks"`
		Pending   int    `json:"pending"`
		Unspent   int    `json:"unspent"`
		Followers int    `json:"followers"`
		Events    int    `json:"events"`
	}

	statusResponse struct {
		Status string `json:"status"`
	}

	errorResponse struct {
		Error string `json:"error"`
	}
)

func decodeTx(raw string) (*wire.MsgTx, error) {
	if raw == "" {
		return nil, fmt.Errorf("%w: tx is empty", errBadRequest)
	}
	b, err := hex.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: tx is not hex: %v", errBadRequest, err)
	}
	tx := wire.NewMsgTx(wire.TxVersion)
	if err := tx.Deserialize(bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("%w: decode tx: %v", errBadRequest, err)
	}
	return tx, nil
}

func hashStrings(ids []chainhash.Hash) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

func toBlockResponse(b model.Block) (blockResponse, error) {
	var buf bytes.Buffer
	if err := b.Msg.Serialize(&buf); err != nil {
		return blockResponse{}, fmt.Errorf("serialize block %d: %w", b.Slot, err)
	}
	header := b.Msg.Header
	return blockResponse{
		Slot:       b.Slot,
		Hash:       b.Hash().String(),
		PrevHash:   header.PrevBlock.String(),
		MerkleRoot: header.MerkleRoot.String(),
		Timestamp:  header.Timestamp.UTC(),
		TxIDs:      hashStrings(b.TxIDs()),
		Raw:        hex.EncodeToString(buf.Bytes()),
	}, nil
}

func toBlocksResponse(blocks []model.Block) (blocksResponse, error) {
	out := blocksResponse{Blocks: make([]blockResponse, 0, len(blocks))}
	for _, b := range blocks {
		resp, err := toBlockResponse(b)
		if err != nil {
			return blocksResponse{}, err
		}
		out.Blocks = append(out.Blocks, resp)
	}
	return out, nil
}

func toEventsResponse(events []model.Event) eventsResponse {
	out := eventsResponse{Events: make([]eventResponse, 0, len(events))}
	for _, ev := range events {
		resp := eventResponse{
			Seq:      ev.Seq,
			Kind:     string(ev.Kind),
			Slot:     ev.Slot,
			Recorded: ev.Recorded.UTC(),
		}
		switch ev.Kind {
		case model.EventTxQueued:
			resp.TxID = ev.TxID.String()
		case model.EventBlockProduced:
			resp.BlockHash = ev.BlockHash.String()
			resp.TxIDs = hashStrings(ev.TxIDs)
		}
		out.Events = append(out.Events, resp)
	}
	return out
}

func toStatsResponse(s node.Stats) statsResponse {
	return statsResponse{
		Slot:      s.Slot,
		Blocks:    s.Blocks,
		Pending:   s.Pending,
		Unspent:   s.Unspent,
		Followers: s.Followers,
		Events:    s.Events,
	}
}

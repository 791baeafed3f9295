package node

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-mocknode/internal/ledger"
	"github.com/goodnatureofminers/blockinsight7000-mocknode/internal/model"
	"github.com/google/uuid"
)

// ErrUnknownFollower is returned when blocks are requested for a follower that was never created.
var ErrUnknownFollower = errors.New("unknown follower")

// followers tracks, per follower, the first slot it has not seen yet.
type followers struct {
	cursors map[uuid.UUID]uint64
	newID   func() (uuid.UUID, error)
}

func newFollowers() *followers {
	return &followers{
		cursors: make(map[uuid.UUID]uint64),
		newID:   uuid.NewV7,
	}
}

func (f *followers) add() (uuid.UUID, error) {
	id, err := f.newID()
	if err != nil {
		return uuid.Nil, fmt.Errorf("new follower id: %w", err)
	}
	f.cursors[id] = 0
	return id, nil
}

func (f *followers) next(id uuid.UUID, chain *ledger.Chain) ([]model.Block, error) {
	cursor, ok := f.cursors[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFollower, id)
	}
	blocks := chain.BlocksSince(cursor)
	f.cursors[id] = chain.Slot()
	return blocks, nil
}

func (f *followers) len() int {
	return len(f.cursors)
}

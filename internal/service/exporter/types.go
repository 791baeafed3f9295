// Package exporter drains the node event log into ClickHouse.
package exporter

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-mocknode/internal/model"
	"github.com/google/uuid"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	EventSource interface {
		ConsumeEventHistory() []model.Event
	}
	Repository interface {
		InsertEvents(ctx context.Context, runID uuid.UUID, events []model.Event) error
		InsertTxInclusions(ctx context.Context, runID uuid.UUID, events []model.Event) error
	}
	Metrics interface {
		ObserveDrain(events int)
		ObserveFlush(err error, events int, started time.Time)
	}
)

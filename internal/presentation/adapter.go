// Package presentation decouples the opening coordinator from whatever renders
// the spin. The coordinator commits the outcome first, then notifies the
// adapter exactly once; the animation is a replay of a decided result, and a
// skipped or crashed animation changes nothing.
package presentation

import (
	"context"
	"time"

	"github.com/casedrop/casedrop/internal/domain"
	"github.com/casedrop/casedrop/internal/event"
)

// Adapter receives committed draw outcomes before any animation runs.
type Adapter interface {
	OnDrawResolved(ctx context.Context, txn domain.OpeningTransaction) error
}

// EventBusAdapter publishes committed outcomes on the event bus, where the
// reveal renderer and the metrics collector pick them up.
type EventBusAdapter struct {
	bus event.Bus
}

// NewEventBusAdapter creates an adapter backed by the given bus.
func NewEventBusAdapter(bus event.Bus) *EventBusAdapter {
	return &EventBusAdapter{bus: bus}
}

func (a *EventBusAdapter) OnDrawResolved(ctx context.Context, txn domain.OpeningTransaction) error {
	return a.bus.Publish(ctx, event.Event{
		Version: event.SchemaVersion,
		Type:    event.OpeningResolved,
		Payload: event.OpeningResolvedPayloadV1{
			TransactionID: txn.ID,
			UserID:        txn.UserID,
			Outcome:       txn.DrawnOutcome,
			Timestamp:     time.Now().Unix(),
		},
	})
}

// NopAdapter ignores notifications. Used in tests and headless tooling.
type NopAdapter struct{}

func (NopAdapter) OnDrawResolved(context.Context, domain.OpeningTransaction) error { return nil }

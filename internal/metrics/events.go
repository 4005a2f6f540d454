package metrics

import (
	"context"

	"github.com/casedrop/casedrop/internal/event"
	"github.com/casedrop/casedrop/internal/logger"
)

// EventMetricsCollector subscribes to the business events and records metrics.
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector.
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all event types the collector cares about.
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.OpeningStarted,
		event.OpeningResolved,
		event.CardKept,
		event.CardSold,
		event.CardsSoldBulk,
		event.BalanceAdjusted,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch payload := evt.Payload.(type) {
	case event.OpeningStartedPayloadV1:
		CasesOpened.WithLabelValues(payload.CaseID).Inc()
		CentsDebited.Add(float64(payload.Debited))
	case event.OpeningResolvedPayloadV1:
		DropsByRarity.WithLabelValues(string(payload.Outcome.Rarity)).Inc()
	case event.CardKeptPayloadV1:
		CardsKept.Inc()
	case event.CardSoldPayloadV1:
		CardsSold.WithLabelValues(SellSourceResolve).Inc()
		CentsCredited.Add(float64(payload.Credited))
	case event.CardsSoldBulkPayloadV1:
		CardsSold.WithLabelValues(SellSourceBulk).Add(float64(len(payload.CardIDs)))
		CentsCredited.Add(float64(payload.Credited))
	case event.BalanceAdjustedPayloadV1:
		// Counted via EventsPublished only; deltas are signed and do not fit
		// a monotonic counter.
	default:
		logger.FromContext(ctx).Debug(LogMsgUnexpectedPayload, "type", evt.Type)
	}

	return nil
}

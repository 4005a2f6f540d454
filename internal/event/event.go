// Package event provides the in-process event bus the storefront uses for
// one-way notifications: the presentation layer's reveal handoff and the audit
// trail around balance and inventory mutations.
package event

import (
	"context"
	"fmt"
	"sync"

	"github.com/casedrop/casedrop/internal/domain"
)

// Type represents the type of an event
type Type string

// Event types published by the core services.
const (
	OpeningStarted  Type = "opening.started"
	OpeningResolved Type = "opening.resolved"
	CardKept        Type = "card.kept"
	CardSold        Type = "card.sold"
	CardsSoldBulk   Type = "cards.sold_bulk"
	BalanceAdjusted Type = "balance.adjusted"
	RoleChanged     Type = "role.changed"
)

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// SchemaVersion is the current event schema version.
const SchemaVersion = "1.0"

// Typed event payloads for type safety

// OpeningStartedPayloadV1 is emitted after a successful begin-open commit.
type OpeningStartedPayloadV1 struct {
	TransactionID string       `json:"transaction_id"`
	UserID        string       `json:"user_id"`
	CaseID        string       `json:"case_id"`
	Debited       domain.Cents `json:"debited"`
	Timestamp     int64        `json:"timestamp"`
}

// OpeningResolvedPayloadV1 carries the fixed outcome to the presentation layer.
// It is published exactly once per opening, before any animation runs.
type OpeningResolvedPayloadV1 struct {
	TransactionID string             `json:"transaction_id"`
	UserID        string             `json:"user_id"`
	Outcome       domain.CardOutcome `json:"outcome"`
	Timestamp     int64              `json:"timestamp"`
}

// CardKeptPayloadV1 is emitted when a pending opening resolves to keep.
type CardKeptPayloadV1 struct {
	TransactionID string `json:"transaction_id"`
	UserID        string `json:"user_id"`
	CardID        string `json:"card_id"`
	Timestamp     int64  `json:"timestamp"`
}

// CardSoldPayloadV1 is emitted for single sells (resolve-sell and profile sell).
type CardSoldPayloadV1 struct {
	UserID    string       `json:"user_id"`
	CardID    string       `json:"card_id"`
	Credited  domain.Cents `json:"credited"`
	Timestamp int64        `json:"timestamp"`
}

// CardsSoldBulkPayloadV1 is emitted once per bulk sell with the aggregate credit.
type CardsSoldBulkPayloadV1 struct {
	UserID    string       `json:"user_id"`
	CardIDs   []string     `json:"card_ids"`
	Credited  domain.Cents `json:"credited"`
	Timestamp int64        `json:"timestamp"`
}

// BalanceAdjustedPayloadV1 is emitted for admin balance adjustments.
type BalanceAdjustedPayloadV1 struct {
	UserID     string       `json:"user_id"`
	Delta      domain.Cents `json:"delta"`
	NewBalance domain.Cents `json:"new_balance"`
	Timestamp  int64        `json:"timestamp"`
}

// RoleChangedPayloadV1 is emitted when an admin changes a user's role.
type RoleChangedPayloadV1 struct {
	UserID    string      `json:"user_id"`
	Role      domain.Role `json:"role"`
	Timestamp int64       `json:"timestamp"`
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers synchronously. Handler errors
// are collected, not short-circuited: one misbehaving subscriber must not
// starve the rest.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d handler error(s) for %s: %v", len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

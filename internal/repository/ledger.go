package repository

import (
	"context"

	"github.com/casedrop/casedrop/internal/domain"
)

// Ledger defines the interface for balance and inventory persistence. Balance
// writes are single atomic statements; the stored total serializes on the
// user's row, so concurrent deltas apply one after another without lost
// updates.
type Ledger interface {
	// ApplyDelta adds a signed amount to the user's balance and returns the
	// new total. The only sanctioned balance mutation.
	ApplyDelta(ctx context.Context, userID string, delta domain.Cents) (domain.Cents, error)
	GetBalance(ctx context.Context, userID string) (domain.Cents, error)

	AddItem(ctx context.Context, userID string, item domain.InventoryItem) error
	RemoveItem(ctx context.Context, userID, itemID string) error
	GetInventory(ctx context.Context, userID string) ([]domain.OwnedCard, error)
	// GetItems fetches the given inventory items with their catalog cards.
	// Items not owned by the user are absent from the result.
	GetItems(ctx context.Context, userID string, itemIDs []string) ([]domain.OwnedCard, error)

	BeginTx(ctx context.Context) (LedgerTx, error)
}

// LedgerTx is the transactional subset used by bulk operations: the aggregate
// credit and the removals commit together or not at all.
type LedgerTx interface {
	Tx
	ApplyDelta(ctx context.Context, userID string, delta domain.Cents) (domain.Cents, error)
	// RemoveItems deletes the given items and returns how many rows went away.
	RemoveItems(ctx context.Context, userID string, itemIDs []string) (int, error)
}

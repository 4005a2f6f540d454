package repository

import (
	"context"

	"github.com/casedrop/casedrop/internal/domain"
)

// Opening defines the interface for opening-transaction persistence. The
// begin-open sequence (pending check, guarded debit, pending insert) and each
// resolution path run inside one OpeningTx so they commit or vanish as a unit.
type Opening interface {
	GetPendingByID(ctx context.Context, txID string) (*domain.OpeningTransaction, error)
	GetPendingByUser(ctx context.Context, userID string) (*domain.OpeningTransaction, error)
	BeginTx(ctx context.Context) (OpeningTx, error)
}

// OpeningTx is one atomic unit of opening work.
type OpeningTx interface {
	Tx
	// HasPending reports whether the user already has a pending opening,
	// locking the user's row so a concurrent begin-open waits.
	HasPending(ctx context.Context, userID string) (bool, error)
	// DebitIfSufficient atomically debits amount if the balance covers it.
	// Returns domain.ErrInsufficientFunds otherwise, leaving the balance alone.
	DebitIfSufficient(ctx context.Context, userID string, amount domain.Cents) error
	// Credit adds amount to the balance and returns the new total.
	Credit(ctx context.Context, userID string, amount domain.Cents) (domain.Cents, error)
	InsertPending(ctx context.Context, opening domain.OpeningTransaction) error
	// DeletePending removes the pending row, returning false when it was
	// already gone (resolved by the other path).
	DeletePending(ctx context.Context, txID string) (bool, error)
	AddInventoryItem(ctx context.Context, userID string, item domain.InventoryItem) error
}

package ledger

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/casedrop/casedrop/internal/domain"
	"github.com/casedrop/casedrop/internal/repository"
)

// MockRepository mocks repository.Ledger.
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ApplyDelta(ctx context.Context, userID string, delta domain.Cents) (domain.Cents, error) {
	args := m.Called(ctx, userID, delta)
	return args.Get(0).(domain.Cents), args.Error(1)
}

func (m *MockRepository) GetBalance(ctx context.Context, userID string) (domain.Cents, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Cents), args.Error(1)
}

func (m *MockRepository) AddItem(ctx context.Context, userID string, item domain.InventoryItem) error {
	args := m.Called(ctx, userID, item)
	return args.Error(0)
}

func (m *MockRepository) RemoveItem(ctx context.Context, userID, itemID string) error {
	args := m.Called(ctx, userID, itemID)
	return args.Error(0)
}

func (m *MockRepository) GetInventory(ctx context.Context, userID string) ([]domain.OwnedCard, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OwnedCard), args.Error(1)
}

func (m *MockRepository) GetItems(ctx context.Context, userID string, itemIDs []string) ([]domain.OwnedCard, error) {
	args := m.Called(ctx, userID, itemIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OwnedCard), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.LedgerTx), args.Error(1)
}

// MockLedgerTx mocks repository.LedgerTx.
type MockLedgerTx struct {
	mock.Mock
}

func (m *MockLedgerTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLedgerTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLedgerTx) ApplyDelta(ctx context.Context, userID string, delta domain.Cents) (domain.Cents, error) {
	args := m.Called(ctx, userID, delta)
	return args.Get(0).(domain.Cents), args.Error(1)
}

func (m *MockLedgerTx) RemoveItems(ctx context.Context, userID string, itemIDs []string) (int, error) {
	args := m.Called(ctx, userID, itemIDs)
	return args.Int(0), args.Error(1)
}

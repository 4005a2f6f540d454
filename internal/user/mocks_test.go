package user

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/casedrop/casedrop/internal/domain"
	"github.com/casedrop/casedrop/internal/ledger"
)

// MockRepository mocks repository.User.
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockRepository) UpdateRole(ctx context.Context, userID string, role domain.Role) error {
	args := m.Called(ctx, userID, role)
	return args.Error(0)
}

func (m *MockRepository) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockLedger mocks the ledger service surface the user service touches.
type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) GetBalance(ctx context.Context, userID string) (domain.Cents, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Cents), args.Error(1)
}

func (m *MockLedger) AdjustBalance(ctx context.Context, userID string, delta domain.Cents) (domain.Cents, error) {
	args := m.Called(ctx, userID, delta)
	return args.Get(0).(domain.Cents), args.Error(1)
}

func (m *MockLedger) GetInventory(ctx context.Context, userID string, query ledger.InventoryQuery) ([]domain.OwnedCard, error) {
	args := m.Called(ctx, userID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OwnedCard), args.Error(1)
}

func (m *MockLedger) SellItems(ctx context.Context, userID string, itemIDs []string) (*ledger.BulkSellResult, error) {
	args := m.Called(ctx, userID, itemIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.BulkSellResult), args.Error(1)
}

func (m *MockLedger) DeleteItems(ctx context.Context, userID string, itemIDs []string) (*ledger.BulkDeleteResult, error) {
	args := m.Called(ctx, userID, itemIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.BulkDeleteResult), args.Error(1)
}

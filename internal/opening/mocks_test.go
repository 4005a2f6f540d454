package opening

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/casedrop/casedrop/internal/catalog"
	"github.com/casedrop/casedrop/internal/domain"
	"github.com/casedrop/casedrop/internal/repository"
)

// MockRepository mocks repository.Opening.
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetPendingByID(ctx context.Context, txID string) (*domain.OpeningTransaction, error) {
	args := m.Called(ctx, txID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OpeningTransaction), args.Error(1)
}

func (m *MockRepository) GetPendingByUser(ctx context.Context, userID string) (*domain.OpeningTransaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OpeningTransaction), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.OpeningTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.OpeningTx), args.Error(1)
}

// MockOpeningTx mocks repository.OpeningTx.
type MockOpeningTx struct {
	mock.Mock
}

func (m *MockOpeningTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOpeningTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOpeningTx) HasPending(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOpeningTx) DebitIfSufficient(ctx context.Context, userID string, amount domain.Cents) error {
	args := m.Called(ctx, userID, amount)
	return args.Error(0)
}

func (m *MockOpeningTx) Credit(ctx context.Context, userID string, amount domain.Cents) (domain.Cents, error) {
	args := m.Called(ctx, userID, amount)
	return args.Get(0).(domain.Cents), args.Error(1)
}

func (m *MockOpeningTx) InsertPending(ctx context.Context, opening domain.OpeningTransaction) error {
	args := m.Called(ctx, opening)
	return args.Error(0)
}

func (m *MockOpeningTx) DeletePending(ctx context.Context, txID string) (bool, error) {
	args := m.Called(ctx, txID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOpeningTx) AddInventoryItem(ctx context.Context, userID string, item domain.InventoryItem) error {
	args := m.Called(ctx, userID, item)
	return args.Error(0)
}

// MockCatalog mocks the catalog reads the coordinator needs.
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) GetCase(ctx context.Context, caseID string) (*domain.CaseDefinition, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CaseDefinition), args.Error(1)
}

func (m *MockCatalog) ListCases(ctx context.Context) ([]domain.CaseDefinition, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CaseDefinition), args.Error(1)
}

func (m *MockCatalog) GetCard(ctx context.Context, cardID string) (*domain.Card, error) {
	args := m.Called(ctx, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

func (m *MockCatalog) ListCards(ctx context.Context) ([]domain.Card, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Card), args.Error(1)
}

func (m *MockCatalog) ListCollections(ctx context.Context) ([]domain.Collection, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Collection), args.Error(1)
}

func (m *MockCatalog) UpsertCard(ctx context.Context, card domain.Card) (*domain.Card, error) {
	args := m.Called(ctx, card)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

func (m *MockCatalog) DeleteCard(ctx context.Context, cardID string) error {
	args := m.Called(ctx, cardID)
	return args.Error(0)
}

func (m *MockCatalog) UpsertCase(ctx context.Context, def domain.CaseDefinition) (*domain.CaseDefinition, error) {
	args := m.Called(ctx, def)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CaseDefinition), args.Error(1)
}

func (m *MockCatalog) DeleteCase(ctx context.Context, caseID string) error {
	args := m.Called(ctx, caseID)
	return args.Error(0)
}

func (m *MockCatalog) UpsertCollection(ctx context.Context, col domain.Collection) (*domain.Collection, error) {
	args := m.Called(ctx, col)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Collection), args.Error(1)
}

func (m *MockCatalog) DeleteCollection(ctx context.Context, collectionID string) error {
	args := m.Called(ctx, collectionID)
	return args.Error(0)
}

func (m *MockCatalog) CacheStats() catalog.CacheStats {
	args := m.Called()
	return args.Get(0).(catalog.CacheStats)
}

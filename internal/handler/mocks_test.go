package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/casedrop/casedrop/internal/catalog"
	"github.com/casedrop/casedrop/internal/domain"
	"github.com/casedrop/casedrop/internal/ledger"
	"github.com/casedrop/casedrop/internal/opening"
)

// MockOpeningService mocks opening.Service for handler tests.
type MockOpeningService struct {
	mock.Mock
}

func (m *MockOpeningService) BeginOpen(ctx context.Context, userID, caseID string) (*domain.OpeningResult, error) {
	args := m.Called(ctx, userID, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OpeningResult), args.Error(1)
}

func (m *MockOpeningService) ResolveKeep(ctx context.Context, txID string) (*opening.KeepResult, error) {
	args := m.Called(ctx, txID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*opening.KeepResult), args.Error(1)
}

func (m *MockOpeningService) ResolveSell(ctx context.Context, txID string) (*opening.SellResult, error) {
	args := m.Called(ctx, txID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*opening.SellResult), args.Error(1)
}

func (m *MockOpeningService) GetPending(ctx context.Context, userID string) (*domain.OpeningResult, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OpeningResult), args.Error(1)
}

// MockCatalogService mocks catalog.Service for handler tests.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) GetCase(ctx context.Context, caseID string) (*domain.CaseDefinition, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CaseDefinition), args.Error(1)
}

func (m *MockCatalogService) ListCases(ctx context.Context) ([]domain.CaseDefinition, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CaseDefinition), args.Error(1)
}

func (m *MockCatalogService) GetCard(ctx context.Context, cardID string) (*domain.Card, error) {
	args := m.Called(ctx, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

func (m *MockCatalogService) ListCards(ctx context.Context) ([]domain.Card, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Card), args.Error(1)
}

func (m *MockCatalogService) ListCollections(ctx context.Context) ([]domain.Collection, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Collection), args.Error(1)
}

func (m *MockCatalogService) UpsertCard(ctx context.Context, card domain.Card) (*domain.Card, error) {
	args := m.Called(ctx, card)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

func (m *MockCatalogService) DeleteCard(ctx context.Context, cardID string) error {
	args := m.Called(ctx, cardID)
	return args.Error(0)
}

func (m *MockCatalogService) UpsertCase(ctx context.Context, def domain.CaseDefinition) (*domain.CaseDefinition, error) {
	args := m.Called(ctx, def)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CaseDefinition), args.Error(1)
}

func (m *MockCatalogService) DeleteCase(ctx context.Context, caseID string) error {
	args := m.Called(ctx, caseID)
	return args.Error(0)
}

func (m *MockCatalogService) UpsertCollection(ctx context.Context, col domain.Collection) (*domain.Collection, error) {
	args := m.Called(ctx, col)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Collection), args.Error(1)
}

func (m *MockCatalogService) DeleteCollection(ctx context.Context, collectionID string) error {
	args := m.Called(ctx, collectionID)
	return args.Error(0)
}

func (m *MockCatalogService) CacheStats() catalog.CacheStats {
	args := m.Called()
	return args.Get(0).(catalog.CacheStats)
}

// MockLedgerService mocks ledger.Service for handler tests.
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetBalance(ctx context.Context, userID string) (domain.Cents, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Cents), args.Error(1)
}

func (m *MockLedgerService) AdjustBalance(ctx context.Context, userID string, delta domain.Cents) (domain.Cents, error) {
	args := m.Called(ctx, userID, delta)
	return args.Get(0).(domain.Cents), args.Error(1)
}

func (m *MockLedgerService) GetInventory(ctx context.Context, userID string, query ledger.InventoryQuery) ([]domain.OwnedCard, error) {
	args := m.Called(ctx, userID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OwnedCard), args.Error(1)
}

func (m *MockLedgerService) SellItems(ctx context.Context, userID string, itemIDs []string) (*ledger.BulkSellResult, error) {
	args := m.Called(ctx, userID, itemIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.BulkSellResult), args.Error(1)
}

func (m *MockLedgerService) DeleteItems(ctx context.Context, userID string, itemIDs []string) (*ledger.BulkDeleteResult, error) {
	args := m.Called(ctx, userID, itemIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.BulkDeleteResult), args.Error(1)
}

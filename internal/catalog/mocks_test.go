package catalog

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/casedrop/casedrop/internal/domain"
)

// MockRepository mocks repository.Catalog for service tests.
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetCase(ctx context.Context, caseID string) (*domain.CaseDefinition, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CaseDefinition), args.Error(1)
}

func (m *MockRepository) ListCases(ctx context.Context) ([]domain.CaseDefinition, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CaseDefinition), args.Error(1)
}

func (m *MockRepository) UpsertCase(ctx context.Context, def domain.CaseDefinition) error {
	args := m.Called(ctx, def)
	return args.Error(0)
}

func (m *MockRepository) DeleteCase(ctx context.Context, caseID string) error {
	args := m.Called(ctx, caseID)
	return args.Error(0)
}

func (m *MockRepository) GetCard(ctx context.Context, cardID string) (*domain.Card, error) {
	args := m.Called(ctx, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

func (m *MockRepository) GetCardsByIDs(ctx context.Context, cardIDs []string) ([]domain.Card, error) {
	args := m.Called(ctx, cardIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Card), args.Error(1)
}

func (m *MockRepository) ListCards(ctx context.Context) ([]domain.Card, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Card), args.Error(1)
}

func (m *MockRepository) UpsertCard(ctx context.Context, card domain.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockRepository) DeleteCard(ctx context.Context, cardID string) error {
	args := m.Called(ctx, cardID)
	return args.Error(0)
}

func (m *MockRepository) ListCollections(ctx context.Context) ([]domain.Collection, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Collection), args.Error(1)
}

func (m *MockRepository) UpsertCollection(ctx context.Context, col domain.Collection) error {
	args := m.Called(ctx, col)
	return args.Error(0)
}

func (m *MockRepository) DeleteCollection(ctx context.Context, collectionID string) error {
	args := m.Called(ctx, collectionID)
	return args.Error(0)
}

package repository

import (
	"context"

	"github.com/casedrop/casedrop/internal/domain"
)

// Catalog defines the interface for catalog persistence. Reads return
// immutable snapshots; the core never mutates them. Writes come only from the
// admin surface and the boot-time seed sync.
type Catalog interface {
	GetCase(ctx context.Context, caseID string) (*domain.CaseDefinition, error)
	ListCases(ctx context.Context) ([]domain.CaseDefinition, error)
	UpsertCase(ctx context.Context, def domain.CaseDefinition) error
	DeleteCase(ctx context.Context, caseID string) error

	GetCard(ctx context.Context, cardID string) (*domain.Card, error)
	GetCardsByIDs(ctx context.Context, cardIDs []string) ([]domain.Card, error)
	ListCards(ctx context.Context) ([]domain.Card, error)
	UpsertCard(ctx context.Context, card domain.Card) error
	DeleteCard(ctx context.Context, cardID string) error

	ListCollections(ctx context.Context) ([]domain.Collection, error)
	UpsertCollection(ctx context.Context, col domain.Collection) error
	DeleteCollection(ctx context.Context, collectionID string) error
}

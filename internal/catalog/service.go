// Package catalog is the provider of immutable case and card snapshots. It
// validates outcome tables on every write, so a malformed table is an
// operator-facing load-time failure, never a per-draw surprise.
package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/casedrop/casedrop/internal/domain"
	"github.com/casedrop/casedrop/internal/logger"
	"github.com/casedrop/casedrop/internal/repository"
)

// Service defines the catalog interface consumed by the storefront, the
// opening coordinator, and the admin CRUD surface.
type Service interface {
	GetCase(ctx context.Context, caseID string) (*domain.CaseDefinition, error)
	ListCases(ctx context.Context) ([]domain.CaseDefinition, error)
	GetCard(ctx context.Context, cardID string) (*domain.Card, error)
	ListCards(ctx context.Context) ([]domain.Card, error)
	ListCollections(ctx context.Context) ([]domain.Collection, error)

	UpsertCard(ctx context.Context, card domain.Card) (*domain.Card, error)
	DeleteCard(ctx context.Context, cardID string) error
	UpsertCase(ctx context.Context, def domain.CaseDefinition) (*domain.CaseDefinition, error)
	DeleteCase(ctx context.Context, caseID string) error
	UpsertCollection(ctx context.Context, col domain.Collection) (*domain.Collection, error)
	DeleteCollection(ctx context.Context, collectionID string) error

	CacheStats() CacheStats
}

// CacheStats is the admin view of the case cache.
type CacheStats struct {
	Entries int `json:"entries"`
}

type service struct {
	repo  repository.Catalog
	cache *caseCache
}

// NewService creates a new catalog service.
func NewService(repo repository.Catalog) Service {
	return &service{
		repo:  repo,
		cache: newCaseCache(DefaultCacheSize, DefaultCacheTTL),
	}
}

func (s *service) GetCase(ctx context.Context, caseID string) (*domain.CaseDefinition, error) {
	if def, ok := s.cache.Get(caseID); ok {
		return def, nil
	}
	logger.FromContext(ctx).Debug(LogMsgCaseCacheMiss, "case_id", caseID)

	def, err := s.repo.GetCase(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetCase, err)
	}
	if def == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrCaseNotFound, caseID)
	}

	s.cache.Set(caseID, def)
	return def, nil
}

func (s *service) ListCases(ctx context.Context) ([]domain.CaseDefinition, error) {
	cases, err := s.repo.ListCases(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListCases, err)
	}
	return cases, nil
}

func (s *service) GetCard(ctx context.Context, cardID string) (*domain.Card, error) {
	card, err := s.repo.GetCard(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetCard, err)
	}
	if card == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrCardNotFound, cardID)
	}
	return card, nil
}

func (s *service) ListCards(ctx context.Context) ([]domain.Card, error) {
	return s.repo.ListCards(ctx)
}

func (s *service) ListCollections(ctx context.Context) ([]domain.Collection, error) {
	return s.repo.ListCollections(ctx)
}

func (s *service) UpsertCard(ctx context.Context, card domain.Card) (*domain.Card, error) {
	if card.Name == "" {
		return nil, fmt.Errorf("%w: card name required", domain.ErrInvalidInput)
	}
	if !card.Rarity.Valid() {
		return nil, fmt.Errorf("%w: unknown rarity %q", domain.ErrInvalidInput, card.Rarity)
	}
	if card.Price < 0 {
		return nil, fmt.Errorf("%w: negative price", domain.ErrInvalidInput)
	}
	if card.ID == "" {
		card.ID = uuid.NewString()
	}

	if err := s.repo.UpsertCard(ctx, card); err != nil {
		return nil, err
	}

	// A card edit changes every case that contains it
	s.purgeCache(ctx)
	return &card, nil
}

func (s *service) DeleteCard(ctx context.Context, cardID string) error {
	if err := s.repo.DeleteCard(ctx, cardID); err != nil {
		return err
	}
	s.purgeCache(ctx)
	return nil
}

func (s *service) UpsertCase(ctx context.Context, def domain.CaseDefinition) (*domain.CaseDefinition, error) {
	if def.Name == "" {
		return nil, fmt.Errorf("%w: case name required", domain.ErrInvalidInput)
	}
	if def.Price < 0 {
		return nil, fmt.Errorf("%w: negative price", domain.ErrInvalidInput)
	}
	if def.ID == "" {
		def.ID = uuid.NewString()
	}
	if err := def.ValidateOutcomeTable(); err != nil {
		return nil, err
	}

	if err := s.repo.UpsertCase(ctx, def); err != nil {
		return nil, err
	}

	s.cache.Remove(def.ID)
	return &def, nil
}

func (s *service) DeleteCase(ctx context.Context, caseID string) error {
	if err := s.repo.DeleteCase(ctx, caseID); err != nil {
		return err
	}
	s.cache.Remove(caseID)
	return nil
}

func (s *service) UpsertCollection(ctx context.Context, col domain.Collection) (*domain.Collection, error) {
	if col.Name == "" {
		return nil, fmt.Errorf("%w: collection name required", domain.ErrInvalidInput)
	}
	if col.ID == "" {
		col.ID = uuid.NewString()
	}
	if err := s.repo.UpsertCollection(ctx, col); err != nil {
		return nil, err
	}
	return &col, nil
}

func (s *service) DeleteCollection(ctx context.Context, collectionID string) error {
	return s.repo.DeleteCollection(ctx, collectionID)
}

func (s *service) CacheStats() CacheStats {
	return CacheStats{Entries: s.cache.Len()}
}

func (s *service) purgeCache(ctx context.Context) {
	s.cache.Purge()
	logger.FromContext(ctx).Debug(LogMsgCaseCachePurged, "at", time.Now())
}

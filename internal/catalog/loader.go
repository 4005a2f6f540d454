package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/casedrop/casedrop/internal/domain"
	"github.com/casedrop/casedrop/internal/logger"
	"github.com/casedrop/casedrop/internal/repository"
)

// CatalogFile is the on-disk seed format synced to the database at boot.
// Weights live on the case's outcome entries, not on the cards: the same card
// can appear in several cases with different drop chances.
type CatalogFile struct {
	Collections []CollectionEntry `json:"collections"`
	Cards       []CardEntry       `json:"cards"`
	Cases       []CaseEntry       `json:"cases"`
}

// CollectionEntry seeds one collection.
type CollectionEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CardEntry seeds one card. Price is a decimal dollar string.
type CardEntry struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Rarity       string `json:"rarity"`
	Price        string `json:"price"`
	CollectionID string `json:"collection_id,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
}

// CaseEntry seeds one case with its ordered outcome table.
type CaseEntry struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Price    string         `json:"price"`
	ImageURL string         `json:"image_url,omitempty"`
	Outcomes []OutcomeEntry `json:"outcomes"`
}

// OutcomeEntry references a seeded card and its weight within this case.
type OutcomeEntry struct {
	CardID string  `json:"card_id"`
	Weight float64 `json:"weight"`
}

// Loader loads and validates the catalog seed file.
type Loader struct{}

// NewLoader creates a catalog loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses the catalog file at path.
func (l *Loader) Load(path string) (*CatalogFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToReadCatalog, err)
	}

	var file CatalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToParseCatalog, err)
	}
	return &file, nil
}

// Validate checks the seed before anything touches the database: ids present,
// rarities known, prices parseable, outcome references resolvable, and every
// case's weight table well-formed. Failing loudly here is the primary defense
// the draw-time fallback backs up.
func (l *Loader) Validate(file *CatalogFile) error {
	cardIDs := make(map[string]bool, len(file.Cards))
	collectionIDs := make(map[string]bool, len(file.Collections))

	for _, col := range file.Collections {
		if col.ID == "" || col.Name == "" {
			return fmt.Errorf("%w: collection needs id and name", domain.ErrInvalidInput)
		}
		if collectionIDs[col.ID] {
			return fmt.Errorf("%w: duplicate collection id %q", domain.ErrInvalidInput, col.ID)
		}
		collectionIDs[col.ID] = true
	}

	for _, card := range file.Cards {
		if card.ID == "" || card.Name == "" {
			return fmt.Errorf("%w: card needs id and name", domain.ErrInvalidInput)
		}
		if cardIDs[card.ID] {
			return fmt.Errorf("%w: duplicate card id %q", domain.ErrInvalidInput, card.ID)
		}
		cardIDs[card.ID] = true

		if _, err := domain.ParseRarityTier(card.Rarity); err != nil {
			return fmt.Errorf("card %q: %w", card.ID, err)
		}
		if _, err := domain.ParseCents(card.Price); err != nil {
			return fmt.Errorf("card %q: %w", card.ID, err)
		}
		if card.CollectionID != "" && !collectionIDs[card.CollectionID] {
			return fmt.Errorf("%w: card %q references unknown collection %q",
				domain.ErrInvalidInput, card.ID, card.CollectionID)
		}
	}

	for _, c := range file.Cases {
		if c.ID == "" || c.Name == "" {
			return fmt.Errorf("%w: case needs id and name", domain.ErrInvalidInput)
		}
		if _, err := domain.ParseCents(c.Price); err != nil {
			return fmt.Errorf("case %q: %w", c.ID, err)
		}

		def := domain.CaseDefinition{ID: c.ID}
		for _, o := range c.Outcomes {
			if !cardIDs[o.CardID] {
				return fmt.Errorf("%w: case %q references unknown card %q",
					domain.ErrMalformedOutcomeTable, c.ID, o.CardID)
			}
			def.Outcomes = append(def.Outcomes, domain.CardOutcome{ID: o.CardID, Weight: o.Weight})
		}
		if err := def.ValidateOutcomeTable(); err != nil {
			return err
		}
	}

	return nil
}

// SyncResult summarizes a catalog sync.
type SyncResult struct {
	Collections int
	Cards       int
	Cases       int
}

// SyncToDatabase upserts the validated seed into the catalog repository,
// leaf-first so references resolve.
func (l *Loader) SyncToDatabase(ctx context.Context, file *CatalogFile, repo repository.Catalog) (*SyncResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCatalogSyncStart)

	result := &SyncResult{}

	for _, col := range file.Collections {
		if err := repo.UpsertCollection(ctx, domain.Collection{
			ID:          col.ID,
			Name:        col.Name,
			Description: col.Description,
		}); err != nil {
			return nil, fmt.Errorf("%s: collection %q: %w", ErrContextFailedToSyncCatalog, col.ID, err)
		}
		result.Collections++
	}

	for _, card := range file.Cards {
		price, err := domain.ParseCents(card.Price)
		if err != nil {
			return nil, fmt.Errorf("%s: card %q: %w", ErrContextFailedToSyncCatalog, card.ID, err)
		}
		if err := repo.UpsertCard(ctx, domain.Card{
			ID:           card.ID,
			Name:         card.Name,
			Rarity:       domain.RarityTier(card.Rarity),
			Price:        price,
			CollectionID: card.CollectionID,
			ImageURL:     card.ImageURL,
		}); err != nil {
			return nil, fmt.Errorf("%s: card %q: %w", ErrContextFailedToSyncCatalog, card.ID, err)
		}
		result.Cards++
	}

	for _, c := range file.Cases {
		price, err := domain.ParseCents(c.Price)
		if err != nil {
			return nil, fmt.Errorf("%s: case %q: %w", ErrContextFailedToSyncCatalog, c.ID, err)
		}
		def := domain.CaseDefinition{
			ID:       c.ID,
			Name:     c.Name,
			Price:    price,
			ImageURL: c.ImageURL,
		}
		for _, o := range c.Outcomes {
			def.Outcomes = append(def.Outcomes, domain.CardOutcome{ID: o.CardID, Weight: o.Weight})
		}
		if err := repo.UpsertCase(ctx, def); err != nil {
			return nil, fmt.Errorf("%s: case %q: %w", ErrContextFailedToSyncCatalog, c.ID, err)
		}
		result.Cases++
	}

	log.Info(LogMsgCatalogSyncDone,
		"collections", result.Collections,
		"cards", result.Cards,
		"cases", result.Cases)
	return result, nil
}

package catalog

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/casedrop/casedrop/internal/domain"
)

func validCatalogFile() *CatalogFile {
	return &CatalogFile{
		Collections: []CollectionEntry{
			{ID: "col-chess", Name: "Chess Masters"},
		},
		Cards: []CardEntry{
			{ID: "card-common", Name: "Rusty Pawn", Rarity: "common", Price: "0.50", CollectionID: "col-chess"},
			{ID: "card-silver", Name: "Silver Knight", Rarity: "silver", Price: "4.00", CollectionID: "col-chess"},
			{ID: "card-gold", Name: "Gold Rook", Rarity: "gold", Price: "25.00", CollectionID: "col-chess"},
			{ID: "card-diamond", Name: "Diamond Queen", Rarity: "diamond", Price: "120.00", CollectionID: "col-chess"},
			{ID: "card-legendary", Name: "Legendary King", Rarity: "legendary", Price: "990.01", CollectionID: "col-chess"},
		},
		Cases: []CaseEntry{
			{
				ID:    "case-starter",
				Name:  "Starter Case",
				Price: "9.99",
				Outcomes: []OutcomeEntry{
					{CardID: "card-common", Weight: 79},
					{CardID: "card-silver", Weight: 15},
					{CardID: "card-gold", Weight: 4},
					{CardID: "card-diamond", Weight: 1.7},
					{CardID: "card-legendary", Weight: 0.3},
				},
			},
		},
	}
}

func writeCatalogFile(t *testing.T, file *CatalogFile) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	data, err := json.Marshal(file)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoaderLoad(t *testing.T) {
	loader := NewLoader()

	t.Run("round trip", func(t *testing.T) {
		path := writeCatalogFile(t, validCatalogFile())

		file, err := loader.Load(path)
		require.NoError(t, err)
		assert.Len(t, file.Cards, 5)
		assert.Len(t, file.Cases, 1)
		assert.Equal(t, 79.0, file.Cases[0].Outcomes[0].Weight)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loader.Load(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrContextFailedToReadCatalog)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		_, err := loader.Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrContextFailedToParseCatalog)
	})
}

func TestLoaderValidate(t *testing.T) {
	loader := NewLoader()

	t.Run("valid seed", func(t *testing.T) {
		assert.NoError(t, loader.Validate(validCatalogFile()))
	})

	t.Run("unknown rarity", func(t *testing.T) {
		file := validCatalogFile()
		file.Cards[0].Rarity = "mythic"
		assert.ErrorIs(t, loader.Validate(file), domain.ErrInvalidInput)
	})

	t.Run("bad price", func(t *testing.T) {
		file := validCatalogFile()
		file.Cards[0].Price = "0.505"
		assert.Error(t, loader.Validate(file))
	})

	t.Run("duplicate card id", func(t *testing.T) {
		file := validCatalogFile()
		file.Cards = append(file.Cards, file.Cards[0])
		assert.ErrorIs(t, loader.Validate(file), domain.ErrInvalidInput)
	})

	t.Run("card references unknown collection", func(t *testing.T) {
		file := validCatalogFile()
		file.Cards[0].CollectionID = "col-ghost"
		assert.ErrorIs(t, loader.Validate(file), domain.ErrInvalidInput)
	})

	t.Run("case references unknown card", func(t *testing.T) {
		file := validCatalogFile()
		file.Cases[0].Outcomes[0].CardID = "card-ghost"
		assert.ErrorIs(t, loader.Validate(file), domain.ErrMalformedOutcomeTable)
	})

	t.Run("weights must sum to one hundred", func(t *testing.T) {
		file := validCatalogFile()
		file.Cases[0].Outcomes[0].Weight = 50
		assert.ErrorIs(t, loader.Validate(file), domain.ErrMalformedOutcomeTable)
	})
}

func TestLoaderSyncToDatabase(t *testing.T) {
	ctx := context.Background()
	loader := NewLoader()
	file := validCatalogFile()

	repo := new(MockRepository)
	repo.On("UpsertCollection", ctx, mock.AnythingOfType("domain.Collection")).Return(nil)
	repo.On("UpsertCard", ctx, mock.AnythingOfType("domain.Card")).Return(nil)
	repo.On("UpsertCase", ctx, mock.AnythingOfType("domain.CaseDefinition")).Return(nil)

	result, err := loader.SyncToDatabase(ctx, file, repo)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Collections)
	assert.Equal(t, 5, result.Cards)
	assert.Equal(t, 1, result.Cases)

	repo.AssertNumberOfCalls(t, "UpsertCard", 5)
}

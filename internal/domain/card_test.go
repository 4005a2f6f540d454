package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRarityTierOrder(t *testing.T) {
	tiers := []RarityTier{RarityCommon, RaritySilver, RarityGold, RarityDiamond, RarityLegendary}
	for i := 1; i < len(tiers); i++ {
		assert.Less(t, tiers[i-1].Order(), tiers[i].Order(),
			"%s must sort below %s", tiers[i-1], tiers[i])
	}

	assert.Equal(t, -1, RarityTier("mythic").Order(), "unknown tiers sort below common")
}

func TestParseRarityTier(t *testing.T) {
	r, err := ParseRarityTier("diamond")
	require.NoError(t, err)
	assert.Equal(t, RarityDiamond, r)

	_, err = ParseRarityTier("plastic")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func ownedCard(name string, rarity RarityTier, price Cents, collectionID string, acquired time.Time) OwnedCard {
	return OwnedCard{
		InventoryItem: InventoryItem{ID: "item-" + name, CardID: "card-" + name, AcquiredAt: acquired},
		Card:          Card{ID: "card-" + name, Name: name, Rarity: rarity, Price: price, CollectionID: collectionID},
	}
}

func TestSortOwnedCards(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	cards := []OwnedCard{
		ownedCard("Wind Sprite", RarityCommon, 499, "col-2", base),
		ownedCard("Fire Dragon", RarityLegendary, 19999, "col-1", base.Add(time.Hour)),
		ownedCard("Earth Golem", RaritySilver, 2499, "col-2", base.Add(2*time.Hour)),
		ownedCard("Water Elemental", RarityGold, 4999, "col-1", base.Add(3*time.Hour)),
	}

	t.Run("rarity sorts descending", func(t *testing.T) {
		sorted := append([]OwnedCard(nil), cards...)
		SortOwnedCards(sorted, InventorySortRarity)
		assert.Equal(t, "Fire Dragon", sorted[0].Card.Name)
		assert.Equal(t, "Wind Sprite", sorted[3].Card.Name)
	})

	t.Run("name sorts ascending", func(t *testing.T) {
		sorted := append([]OwnedCard(nil), cards...)
		SortOwnedCards(sorted, InventorySortName)
		assert.Equal(t, "Earth Golem", sorted[0].Card.Name)
		assert.Equal(t, "Wind Sprite", sorted[3].Card.Name)
	})

	t.Run("price sorts ascending", func(t *testing.T) {
		sorted := append([]OwnedCard(nil), cards...)
		SortOwnedCards(sorted, InventorySortPrice)
		assert.Equal(t, Cents(499), sorted[0].Card.Price)
		assert.Equal(t, Cents(19999), sorted[3].Card.Price)
	})

	t.Run("equal keys keep acquisition order", func(t *testing.T) {
		dupes := []OwnedCard{
			ownedCard("Twin", RarityCommon, 100, "", base.Add(time.Minute)),
			ownedCard("Twin", RarityCommon, 100, "", base),
		}
		SortOwnedCards(dupes, InventorySortName)
		assert.True(t, dupes[0].AcquiredAt.Before(dupes[1].AcquiredAt))
	})
}

func TestFilterOwnedCards(t *testing.T) {
	base := time.Now()
	cards := []OwnedCard{
		ownedCard("A", RarityCommon, 100, "col-1", base),
		ownedCard("B", RarityGold, 200, "col-1", base),
		ownedCard("C", RarityGold, 300, "col-2", base),
	}

	assert.Len(t, FilterOwnedCards(cards, "", ""), 3, "empty filter matches everything")
	assert.Len(t, FilterOwnedCards(cards, RarityGold, ""), 2)
	assert.Len(t, FilterOwnedCards(cards, RarityGold, "col-2"), 1)
	assert.Empty(t, FilterOwnedCards(cards, RarityLegendary, ""))
}

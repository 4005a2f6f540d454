package domain

import (
	"sort"
	"time"
)

// InventoryItem is one owned card instance. Two copies of the same card are two
// rows; each has its own acquisition timestamp.
type InventoryItem struct {
	ID         string    `json:"id"`
	CardID     string    `json:"card_id"`
	AcquiredAt time.Time `json:"acquired_at"`
}

// OwnedCard is an inventory item joined with its catalog card, the shape the
// profile page renders.
type OwnedCard struct {
	InventoryItem
	Card Card `json:"card"`
}

// Inventory sort keys accepted by the profile endpoints.
const (
	InventorySortName   = "name"
	InventorySortPrice  = "price"
	InventorySortRarity = "rarity"
)

// SortOwnedCards orders an inventory view. Rarity sorts descending (legendary
// first), matching the storefront default; name and price sort ascending.
// Equal keys fall back to acquisition time so the order is stable.
func SortOwnedCards(cards []OwnedCard, sortBy string) {
	sort.SliceStable(cards, func(i, j int) bool {
		a, b := cards[i], cards[j]
		switch sortBy {
		case InventorySortPrice:
			if a.Card.Price != b.Card.Price {
				return a.Card.Price < b.Card.Price
			}
		case InventorySortRarity:
			if a.Card.Rarity.Order() != b.Card.Rarity.Order() {
				return a.Card.Rarity.Order() > b.Card.Rarity.Order()
			}
		default:
			if a.Card.Name != b.Card.Name {
				return a.Card.Name < b.Card.Name
			}
		}
		return a.AcquiredAt.Before(b.AcquiredAt)
	})
}

// FilterOwnedCards narrows an inventory view by rarity and/or collection.
// Empty filter values match everything.
func FilterOwnedCards(cards []OwnedCard, rarity RarityTier, collectionID string) []OwnedCard {
	filtered := make([]OwnedCard, 0, len(cards))
	for _, c := range cards {
		if rarity != "" && c.Card.Rarity != rarity {
			continue
		}
		if collectionID != "" && c.Card.CollectionID != collectionID {
			continue
		}
		filtered = append(filtered, c)
	}
	return filtered
}

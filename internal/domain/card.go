package domain

import "fmt"

// RarityTier classifies a card for display emphasis and inventory sorting.
// Tiers form a total order: common < silver < gold < diamond < legendary.
type RarityTier string

const (
	RarityCommon    RarityTier = "common"
	RaritySilver    RarityTier = "silver"
	RarityGold      RarityTier = "gold"
	RarityDiamond   RarityTier = "diamond"
	RarityLegendary RarityTier = "legendary"
)

// rarityOrder maps each tier to its position in the total order.
var rarityOrder = map[RarityTier]int{
	RarityCommon:    0,
	RaritySilver:    1,
	RarityGold:      2,
	RarityDiamond:   3,
	RarityLegendary: 4,
}

// Order returns the tier's position in the total order (common=0 .. legendary=4).
// Unknown tiers sort below common.
func (r RarityTier) Order() int {
	if o, ok := rarityOrder[r]; ok {
		return o
	}
	return -1
}

// Valid reports whether the tier is one of the five known tiers.
func (r RarityTier) Valid() bool {
	_, ok := rarityOrder[r]
	return ok
}

// ParseRarityTier validates a rarity string from external input.
func ParseRarityTier(s string) (RarityTier, error) {
	r := RarityTier(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: unknown rarity %q", ErrInvalidInput, s)
	}
	return r, nil
}

// CardOutcome is one possible result of opening a case: an immutable catalog
// card plus the weight it carries inside a particular case's outcome table.
type CardOutcome struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Rarity       RarityTier `json:"rarity"`
	Price        Cents      `json:"price"`
	Weight       float64    `json:"weight"`
	CollectionID string     `json:"collection_id,omitempty"`
	ImageURL     string     `json:"image_url,omitempty"`
}

// Card is a catalog card outside the context of any case (no weight).
type Card struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Rarity       RarityTier `json:"rarity"`
	Price        Cents      `json:"price"`
	CollectionID string     `json:"collection_id,omitempty"`
	ImageURL     string     `json:"image_url,omitempty"`
}

// Outcome attaches a weight to the card, forming a case outcome entry.
func (c Card) Outcome(weight float64) CardOutcome {
	return CardOutcome{
		ID:           c.ID,
		Name:         c.Name,
		Rarity:       c.Rarity,
		Price:        c.Price,
		Weight:       weight,
		CollectionID: c.CollectionID,
		ImageURL:     c.ImageURL,
	}
}

// Collection groups cards for browsing and inventory filtering.
type Collection struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

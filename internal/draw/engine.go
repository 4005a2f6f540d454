// Package draw implements the weighted draw engine: pure inverse-CDF sampling
// over a case's ordered outcome table. The engine holds no mutable state and is
// safe for any number of concurrent callers; each call supplies its own sample.
package draw

import (
	"fmt"

	"github.com/casedrop/casedrop/internal/domain"
)

// SampleMax is the exclusive upper bound of a draw sample. Samples are uniform
// over [0, SampleMax), matching outcome weights expressed in percent.
const SampleMax = 100.0

// Engine selects outcomes from weighted tables.
type Engine struct {
	src Source
}

// NewEngine creates an engine drawing samples from src.
func NewEngine(src Source) *Engine {
	return &Engine{src: src}
}

// Draw samples the engine's source once and selects an outcome.
func (e *Engine) Draw(outcomes []domain.CardOutcome) (domain.CardOutcome, error) {
	return Select(outcomes, e.src.Sample())
}

// Select maps a sample r in [0, 100) onto the outcome table by walking a
// running cumulative sum in catalog order and returning the first outcome whose
// cumulative sum reaches r. Deterministic given (outcomes, r): ties at a
// boundary resolve to catalog order, never to value or id.
//
// If float accumulation leaves r above the final cumulative sum (weights not
// summing to exactly 100, or r at the boundary), the lowest-rarity outcome is
// returned instead of an error. Malformed tables are rejected at catalog load;
// this is the last-resort safety net for the draw path.
func Select(outcomes []domain.CardOutcome, r float64) (domain.CardOutcome, error) {
	if len(outcomes) == 0 {
		return domain.CardOutcome{}, fmt.Errorf("%w: empty outcome table", domain.ErrMalformedOutcomeTable)
	}

	cumulative := 0.0
	for _, o := range outcomes {
		cumulative += o.Weight
		if r <= cumulative {
			return o, nil
		}
	}

	return lowestRarity(outcomes), nil
}

// lowestRarity returns the first outcome with the lowest rarity tier in the
// table, the defensive default when a sample overshoots the cumulative sum.
func lowestRarity(outcomes []domain.CardOutcome) domain.CardOutcome {
	lowest := outcomes[0]
	for _, o := range outcomes[1:] {
		if o.Rarity.Order() < lowest.Rarity.Order() {
			lowest = o
		}
	}
	return lowest
}

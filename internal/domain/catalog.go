package domain

import (
	"fmt"
	"math"
)

// WeightSumTarget is the required total of a case's outcome weights, in percent.
const WeightSumTarget = 100.0

// WeightSumEpsilon is the tolerance for floating representation of weights
// that sum to 100 (e.g. 79 + 15 + 4 + 1.7 + 0.3).
const WeightSumEpsilon = 1e-6

// CaseDefinition is a purchasable case: a price and an ordered, weighted set of
// possible card outcomes. The outcome order is significant: it fixes the
// cumulative-sum order the draw engine walks, so it is part of the definition,
// not a presentation detail. Immutable once handed out by the catalog.
type CaseDefinition struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Price    Cents         `json:"price"`
	ImageURL string        `json:"image_url,omitempty"`
	Outcomes []CardOutcome `json:"outcomes"`
}

// ValidateOutcomeTable checks the catalog-authoring invariant on a case's
// outcome table: at least one outcome, every weight strictly positive, and the
// weights summing to 100 within epsilon. Enforced at catalog load and on admin
// writes, not at draw time.
func (c CaseDefinition) ValidateOutcomeTable() error {
	if len(c.Outcomes) == 0 {
		return fmt.Errorf("%w: case %q has no outcomes", ErrMalformedOutcomeTable, c.ID)
	}

	sum := 0.0
	for _, o := range c.Outcomes {
		if o.Weight <= 0 {
			return fmt.Errorf("%w: case %q outcome %q has non-positive weight %v",
				ErrMalformedOutcomeTable, c.ID, o.ID, o.Weight)
		}
		sum += o.Weight
	}

	if math.Abs(sum-WeightSumTarget) > WeightSumEpsilon {
		return fmt.Errorf("%w: case %q weights sum to %v, want %v",
			ErrMalformedOutcomeTable, c.ID, sum, WeightSumTarget)
	}
	return nil
}

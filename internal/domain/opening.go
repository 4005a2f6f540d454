package domain

import "time"

// OpeningState is the lifecycle state of an opening transaction.
type OpeningState string

const (
	// OpeningStatePending means the debit and draw are committed but the user
	// has not yet chosen keep or sell.
	OpeningStatePending OpeningState = "pending"
	// OpeningStateResolved is transient: a resolved opening is deleted in the
	// same transaction that resolves it.
	OpeningStateResolved OpeningState = "resolved"
)

// OpeningTransaction is one case-opening attempt. Created when a user opens a
// case; at that point the debit is applied and the outcome is fixed. It stays
// pending, surviving navigation and restarts, until the user resolves it to
// keep or sell. At most one pending opening exists per user.
type OpeningTransaction struct {
	ID            string       `json:"id"`
	UserID        string       `json:"user_id"`
	CaseID        string       `json:"case_id"`
	DebitedAmount Cents        `json:"debited_amount"`
	DrawnOutcome  CardOutcome  `json:"drawn_outcome"`
	State         OpeningState `json:"state"`
	CreatedAt     time.Time    `json:"created_at"`
}

// Reel is the decorative spin sequence handed to the presentation layer. The
// committed outcome sits at RevealIndex; every other entry is drawn
// independently and carries no semantic weight.
type Reel struct {
	Outcomes    []CardOutcome `json:"outcomes"`
	RevealIndex int           `json:"reveal_index"`
}

// OpeningResult is what BeginOpen returns to the caller: the committed
// transaction plus the cosmetic reel the animation plays out.
type OpeningResult struct {
	Transaction OpeningTransaction `json:"transaction"`
	Reel        Reel               `json:"reel"`
}

package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	// User errors
	ErrMsgUserNotFound      = "user not found"
	ErrMsgUserAlreadyExists = "user already exists"
	ErrMsgInvalidRole       = "invalid role"

	// Catalog errors
	ErrMsgCardNotFound          = "card not found"
	ErrMsgCaseNotFound          = "case not found"
	ErrMsgCollectionNotFound    = "collection not found"
	ErrMsgMalformedOutcomeTable = "malformed outcome table"

	// Opening errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgOpeningPending    = "an opening is already pending"
	ErrMsgNoPendingOpening  = "no pending opening"

	// Ledger errors
	ErrMsgItemNotOwned   = "item not owned"
	ErrMsgEmptySelection = "empty selection"

	// Input errors
	ErrMsgInvalidInput  = "invalid input"
	ErrMsgInvalidAmount = "invalid amount"
)

// Common domain errors.
// These are used consistently across all layers. Wrap with
// fmt.Errorf("%w: ...", domain.ErrXxx) for additional context.
var (
	// User errors
	ErrUserNotFound      = errors.New(ErrMsgUserNotFound)
	ErrUserAlreadyExists = errors.New(ErrMsgUserAlreadyExists)
	ErrInvalidRole       = errors.New(ErrMsgInvalidRole)

	// Catalog errors
	ErrCardNotFound          = errors.New(ErrMsgCardNotFound)
	ErrCaseNotFound          = errors.New(ErrMsgCaseNotFound)
	ErrCollectionNotFound    = errors.New(ErrMsgCollectionNotFound)
	ErrMalformedOutcomeTable = errors.New(ErrMsgMalformedOutcomeTable)

	// Opening errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrOpeningPending    = errors.New(ErrMsgOpeningPending)
	ErrNoPendingOpening  = errors.New(ErrMsgNoPendingOpening)

	// Ledger errors
	ErrItemNotOwned   = errors.New(ErrMsgItemNotOwned)
	ErrEmptySelection = errors.New(ErrMsgEmptySelection)

	// Validation errors
	ErrInvalidInput  = errors.New(ErrMsgInvalidInput)
	ErrInvalidAmount = errors.New(ErrMsgInvalidAmount)
)

package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/casedrop/casedrop/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."

	ErrMsgUserNotFoundError    = "User not found"
	ErrMsgUserExistsError      = "An account with that email already exists"
	ErrMsgCardNotFoundError    = "Card not found"
	ErrMsgCaseNotFoundError    = "Case not found"
	ErrMsgCollectionNotFound   = "Collection not found"
	ErrMsgNotEnoughMoneyError  = "Not enough money"
	ErrMsgOpeningPendingError  = "You already have an unresolved opening"
	ErrMsgNoPendingError       = "No pending opening to resolve"
	ErrMsgItemNotOwnedError    = "You don't own one or more of those cards"
	ErrMsgEmptySelectionError  = "Select at least one card"
	ErrMsgBadOutcomeTableError = "Case outcome table is invalid"
	ErrMsgInvalidRoleError     = "Invalid role"
	ErrMsgInvalidAmountError   = "Invalid amount"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses: status codes plus messages users can act on.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrUserAlreadyExists):
		return http.StatusConflict, ErrMsgUserExistsError
	case errors.Is(err, domain.ErrCardNotFound):
		return http.StatusNotFound, ErrMsgCardNotFoundError
	case errors.Is(err, domain.ErrCaseNotFound):
		return http.StatusNotFound, ErrMsgCaseNotFoundError
	case errors.Is(err, domain.ErrCollectionNotFound):
		return http.StatusNotFound, ErrMsgCollectionNotFound
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusPaymentRequired, ErrMsgNotEnoughMoneyError
	case errors.Is(err, domain.ErrOpeningPending):
		return http.StatusConflict, ErrMsgOpeningPendingError
	case errors.Is(err, domain.ErrNoPendingOpening):
		return http.StatusNotFound, ErrMsgNoPendingError
	case errors.Is(err, domain.ErrItemNotOwned):
		return http.StatusBadRequest, ErrMsgItemNotOwnedError
	case errors.Is(err, domain.ErrEmptySelection):
		return http.StatusBadRequest, ErrMsgEmptySelectionError
	case errors.Is(err, domain.ErrMalformedOutcomeTable):
		return http.StatusBadRequest, ErrMsgBadOutcomeTableError
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, ErrMsgInvalidRoleError
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, ErrMsgInvalidAmountError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	}

	// Wrapped errors with a domain error deeper in the chain
	unwrapped := errors.Unwrap(err)
	if unwrapped != nil && unwrapped != err {
		return mapServiceErrorToUserMessage(unwrapped)
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

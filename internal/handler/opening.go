package handler

import (
	"net/http"

	"github.com/casedrop/casedrop/internal/logger"
	"github.com/casedrop/casedrop/internal/opening"
)

type OpenCaseRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	CaseID string `json:"case_id" validate:"required,max=100"`
}

type ResolveRequest struct {
	TransactionID string `json:"transaction_id" validate:"required,uuid"`
}

// HandleOpenCase begins an opening: debit, draw, pending record, reel
// @Summary Open a case
// @Description Atomically debits the case price, draws the outcome, and returns the committed transaction with its reel
// @Tags opening
// @Accept json
// @Produce json
// @Param request body OpenCaseRequest true "Open request"
// @Success 200 {object} DataResponse
// @Failure 402 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /openings [post]
func HandleOpenCase(svc opening.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req OpenCaseRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Open case"); err != nil {
			return
		}

		result, err := svc.BeginOpen(r.Context(), req.UserID, req.CaseID)
		if err != nil {
			log.Warn(ErrMsgOpenCaseFailed, "error", err, "user_id", req.UserID, "case_id", req.CaseID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: result})
	}
}

// HandleResolveKeep moves the drawn card into the inventory
// @Summary Keep the drawn card
// @Tags opening
// @Accept json
// @Produce json
// @Param request body ResolveRequest true "Resolution"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Router /openings/keep [post]
func HandleResolveKeep(svc opening.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req ResolveRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Resolve keep"); err != nil {
			return
		}

		result, err := svc.ResolveKeep(r.Context(), req.TransactionID)
		if err != nil {
			log.Warn(ErrMsgResolveKeepFailed, "error", err, "transaction_id", req.TransactionID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: result})
	}
}

// HandleResolveSell credits the drawn card's price instead
// @Summary Sell the drawn card back
// @Tags opening
// @Accept json
// @Produce json
// @Param request body ResolveRequest true "Resolution"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Router /openings/sell [post]
func HandleResolveSell(svc opening.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req ResolveRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Resolve sell"); err != nil {
			return
		}

		result, err := svc.ResolveSell(r.Context(), req.TransactionID)
		if err != nil {
			log.Warn(ErrMsgResolveSellFailed, "error", err, "transaction_id", req.TransactionID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: result})
	}
}

// HandleGetPendingOpening returns the caller's unresolved opening, if any
// @Summary Get pending opening
// @Description Returns the pending opening with a rebuilt reel so the client can resume
// @Tags opening
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Router /openings/pending [get]
func HandleGetPendingOpening(svc opening.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		result, err := svc.GetPending(r.Context(), userID)
		if err != nil {
			log.Debug(ErrMsgGetPendingFailed, "error", err, "user_id", userID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: result})
	}
}

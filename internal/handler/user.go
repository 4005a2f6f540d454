package handler

import (
	"net/http"

	"github.com/casedrop/casedrop/internal/logger"
	"github.com/casedrop/casedrop/internal/user"
)

type RegisterRequest struct {
	Email string `json:"email" validate:"required,email,max=254"`
}

// HandleRegister creates an account with the starting balance
// @Summary Register
// @Description Create an account; grants the starting balance
// @Tags user
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration"
// @Success 201 {object} DataResponse
// @Failure 409 {object} ErrorResponse
// @Router /user/register [post]
func HandleRegister(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req RegisterRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Register"); err != nil {
			return
		}

		u, err := svc.Register(r.Context(), req.Email)
		if err != nil {
			log.Warn(ErrMsgRegisterFailed, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusCreated, DataResponse{Data: u})
	}
}

// HandleGetProfile returns the account with its live balance
// @Summary Get profile
// @Tags user
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Router /user/profile [get]
func HandleGetProfile(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		profile, err := svc.GetProfile(r.Context(), userID)
		if err != nil {
			log.Warn(ErrMsgGetProfileFailed, "error", err, "user_id", userID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: profile})
	}
}

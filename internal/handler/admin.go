package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/casedrop/casedrop/internal/catalog"
	"github.com/casedrop/casedrop/internal/domain"
	"github.com/casedrop/casedrop/internal/ledger"
	"github.com/casedrop/casedrop/internal/logger"
	"github.com/casedrop/casedrop/internal/user"
)

// AdminHandler bundles the admin surface: catalog CRUD and user management.
type AdminHandler struct {
	catalogService catalog.Service
	userService    user.Service
	ledgerService  ledger.Service
}

// NewAdminHandler creates the admin handler.
func NewAdminHandler(catalogSvc catalog.Service, userSvc user.Service, ledgerSvc ledger.Service) *AdminHandler {
	return &AdminHandler{
		catalogService: catalogSvc,
		userService:    userSvc,
		ledgerService:  ledgerSvc,
	}
}

type UpsertCardRequest struct {
	ID           string `json:"id" validate:"omitempty,max=100"`
	Name         string `json:"name" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Rarity       string `json:"rarity" validate:"required,rarity"`
	Price        string `json:"price" validate:"required,money"`
	CollectionID string `json:"collection_id" validate:"omitempty,max=100"`
	ImageURL     string `json:"image_url" validate:"omitempty,url,max=500"`
}

type CaseOutcomeRequest struct {
	CardID string  `json:"card_id" validate:"required,max=100"`
	Weight float64 `json:"weight" validate:"required,gt=0,lte=100"`
}

type UpsertCaseRequest struct {
	ID       string               `json:"id" validate:"omitempty,max=100"`
	Name     string               `json:"name" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Price    string               `json:"price" validate:"required,money"`
	ImageURL string               `json:"image_url" validate:"omitempty,url,max=500"`
	Outcomes []CaseOutcomeRequest `json:"outcomes" validate:"required,min=1,dive"`
}

type UpsertCollectionRequest struct {
	ID          string `json:"id" validate:"omitempty,max=100"`
	Name        string `json:"name" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Description string `json:"description" validate:"omitempty,max=1000"`
}

type AdjustBalanceRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	// Delta is a signed decimal dollar string, e.g. "-25.00".
	Delta string `json:"delta" validate:"required,money"`
}

type SetRoleRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	Role   string `json:"role" validate:"required,role"`
}

// HandleListCards lists the card catalog
// @Summary List cards
// @Tags admin
// @Produce json
// @Success 200 {object} DataResponse
// @Router /admin/cards [get]
func (h *AdminHandler) HandleListCards(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	cards, err := h.catalogService.ListCards(r.Context())
	if err != nil {
		log.Error(ErrMsgListCardsFailed, "error", err)
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: cards})
}

// HandleUpsertCard creates or updates a card
// @Summary Upsert card
// @Tags admin
// @Accept json
// @Produce json
// @Param request body UpsertCardRequest true "Card"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /admin/cards [post]
func (h *AdminHandler) HandleUpsertCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req UpsertCardRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Upsert card"); err != nil {
		return
	}

	price, err := domain.ParseCents(req.Price)
	if err != nil {
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}

	card, err := h.catalogService.UpsertCard(r.Context(), domain.Card{
		ID:           req.ID,
		Name:         req.Name,
		Rarity:       domain.RarityTier(req.Rarity),
		Price:        price,
		CollectionID: req.CollectionID,
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		log.Warn(ErrMsgCatalogWriteFailed, "error", err)
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: card})
}

// HandleDeleteCard deletes a card
// @Summary Delete card
// @Tags admin
// @Produce json
// @Param cardID path string true "Card ID"
// @Success 200 {object} SuccessResponse
// @Router /admin/cards/{cardID} [delete]
func (h *AdminHandler) HandleDeleteCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	cardID := chi.URLParam(r, "cardID")

	if err := h.catalogService.DeleteCard(r.Context(), cardID); err != nil {
		log.Warn(ErrMsgCatalogWriteFailed, "error", err, "card_id", cardID)
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Card deleted"})
}

// HandleUpsertCase creates or updates a case, revalidating its outcome table
// @Summary Upsert case
// @Tags admin
// @Accept json
// @Produce json
// @Param request body UpsertCaseRequest true "Case"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /admin/cases [post]
func (h *AdminHandler) HandleUpsertCase(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req UpsertCaseRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Upsert case"); err != nil {
		return
	}

	price, err := domain.ParseCents(req.Price)
	if err != nil {
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}

	def := domain.CaseDefinition{
		ID:       req.ID,
		Name:     req.Name,
		Price:    price,
		ImageURL: req.ImageURL,
	}
	for _, o := range req.Outcomes {
		def.Outcomes = append(def.Outcomes, domain.CardOutcome{ID: o.CardID, Weight: o.Weight})
	}

	saved, err := h.catalogService.UpsertCase(r.Context(), def)
	if err != nil {
		log.Warn(ErrMsgCatalogWriteFailed, "error", err)
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: saved})
}

// HandleDeleteCase deletes a case
// @Summary Delete case
// @Tags admin
// @Produce json
// @Param caseID path string true "Case ID"
// @Success 200 {object} SuccessResponse
// @Router /admin/cases/{caseID} [delete]
func (h *AdminHandler) HandleDeleteCase(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	caseID := chi.URLParam(r, "caseID")

	if err := h.catalogService.DeleteCase(r.Context(), caseID); err != nil {
		log.Warn(ErrMsgCatalogWriteFailed, "error", err, "case_id", caseID)
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Case deleted"})
}

// HandleUpsertCollection creates or updates a collection
// @Summary Upsert collection
// @Tags admin
// @Accept json
// @Produce json
// @Param request body UpsertCollectionRequest true "Collection"
// @Success 200 {object} DataResponse
// @Router /admin/collections [post]
func (h *AdminHandler) HandleUpsertCollection(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req UpsertCollectionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Upsert collection"); err != nil {
		return
	}

	col, err := h.catalogService.UpsertCollection(r.Context(), domain.Collection{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		log.Warn(ErrMsgCatalogWriteFailed, "error", err)
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: col})
}

// HandleDeleteCollection deletes a collection
// @Summary Delete collection
// @Tags admin
// @Produce json
// @Param collectionID path string true "Collection ID"
// @Success 200 {object} SuccessResponse
// @Router /admin/collections/{collectionID} [delete]
func (h *AdminHandler) HandleDeleteCollection(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	collectionID := chi.URLParam(r, "collectionID")

	if err := h.catalogService.DeleteCollection(r.Context(), collectionID); err != nil {
		log.Warn(ErrMsgCatalogWriteFailed, "error", err, "collection_id", collectionID)
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Collection deleted"})
}

// HandleListUsers lists all accounts
// @Summary List users
// @Tags admin
// @Produce json
// @Success 200 {object} DataResponse
// @Router /admin/users [get]
func (h *AdminHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		log.Error(ErrMsgListUsersFailed, "error", err)
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: users})
}

type AdjustBalanceResponse struct {
	NewBalance domain.Cents `json:"new_balance"`
}

// HandleAdjustBalance applies a signed delta to a user's balance
// @Summary Adjust balance
// @Description Operator override; routes through the same signed-delta ledger contract as every other balance change
// @Tags admin
// @Accept json
// @Produce json
// @Param request body AdjustBalanceRequest true "Adjustment"
// @Success 200 {object} DataResponse
// @Router /admin/users/balance [post]
func (h *AdminHandler) HandleAdjustBalance(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req AdjustBalanceRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Adjust balance"); err != nil {
		return
	}

	delta, err := domain.ParseCents(req.Delta)
	if err != nil {
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}
	if delta == 0 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidAmountError)
		return
	}

	newBalance, err := h.ledgerService.AdjustBalance(r.Context(), req.UserID, delta)
	if err != nil {
		log.Warn(ErrMsgAdjustFailed, "error", err, "user_id", req.UserID)
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: AdjustBalanceResponse{NewBalance: newBalance}})
}

// HandleSetRole changes a user's role
// @Summary Set role
// @Tags admin
// @Accept json
// @Produce json
// @Param request body SetRoleRequest true "Role change"
// @Success 200 {object} SuccessResponse
// @Router /admin/users/role [post]
func (h *AdminHandler) HandleSetRole(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req SetRoleRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set role"); err != nil {
		return
	}

	if err := h.userService.SetRole(r.Context(), req.UserID, domain.Role(req.Role)); err != nil {
		log.Warn(ErrMsgSetRoleFailed, "error", err, "user_id", req.UserID)
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Role updated"})
}

// HandleDeleteUser removes an account and everything it owns
// @Summary Delete user
// @Tags admin
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} SuccessResponse
// @Router /admin/users/{userID} [delete]
func (h *AdminHandler) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	userID := chi.URLParam(r, "userID")

	if err := h.userService.DeleteUser(r.Context(), userID); err != nil {
		log.Warn(ErrMsgDeleteUserFailed, "error", err, "user_id", userID)
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: "User deleted"})
}

// HandleGetCacheStats reports the case cache occupancy
// @Summary Cache stats
// @Tags admin
// @Produce json
// @Success 200 {object} DataResponse
// @Router /admin/cache/stats [get]
func (h *AdminHandler) HandleGetCacheStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, DataResponse{Data: h.catalogService.CacheStats()})
}

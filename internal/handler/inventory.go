package handler

import (
	"net/http"
	"strings"

	"github.com/casedrop/casedrop/internal/domain"
	"github.com/casedrop/casedrop/internal/ledger"
	"github.com/casedrop/casedrop/internal/logger"
)

type BulkItemsRequest struct {
	UserID  string   `json:"user_id" validate:"required,uuid"`
	ItemIDs []string `json:"item_ids" validate:"required,min=1,max=500,dive,uuid"`
}

// HandleGetInventory lists a user's owned cards
// @Summary Get inventory
// @Description List owned cards, sorted and filtered
// @Tags inventory
// @Produce json
// @Param user_id query string true "User ID"
// @Param sort query string false "Sort key: name, price, rarity"
// @Param rarity query string false "Filter by rarity tier"
// @Param collection_id query string false "Filter by collection"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /inventory [get]
func HandleGetInventory(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		// Rarity descending is the storefront default.
		query := ledger.InventoryQuery{
			SortBy:       GetOptionalQueryParam(r, "sort", domain.InventorySortRarity),
			CollectionID: r.URL.Query().Get("collection_id"),
		}
		if rarity := strings.ToLower(r.URL.Query().Get("rarity")); rarity != "" {
			tier, err := domain.ParseRarityTier(rarity)
			if err != nil {
				status, msg := mapServiceErrorToUserMessage(err)
				respondError(w, status, msg)
				return
			}
			query.Rarity = tier
		}

		cards, err := svc.GetInventory(r.Context(), userID, query)
		if err != nil {
			log.Error(ErrMsgGetInventoryFailed, "error", err, "user_id", userID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: cards})
	}
}

// HandleSellItems sells a selection of owned cards as one aggregate credit
// @Summary Bulk sell cards
// @Description Credits the sum of the selected cards' prices as a single balance delta, then removes the items
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body BulkItemsRequest true "Selection"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /inventory/sell [post]
func HandleSellItems(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req BulkItemsRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Sell items"); err != nil {
			return
		}

		result, err := svc.SellItems(r.Context(), req.UserID, req.ItemIDs)
		if err != nil {
			log.Warn(ErrMsgSellItemsFailed, "error", err, "user_id", req.UserID, "items", len(req.ItemIDs))
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: result})
	}
}

// HandleDeleteItems discards a selection of owned cards without credit
// @Summary Bulk delete cards
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body BulkItemsRequest true "Selection"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /inventory/delete [post]
func HandleDeleteItems(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req BulkItemsRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Delete items"); err != nil {
			return
		}

		result, err := svc.DeleteItems(r.Context(), req.UserID, req.ItemIDs)
		if err != nil {
			log.Warn(ErrMsgDeleteItemsFailed, "error", err, "user_id", req.UserID, "items", len(req.ItemIDs))
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: result})
	}
}

package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/casedrop/casedrop/internal/domain"
	"github.com/casedrop/casedrop/internal/ledger"
)

func TestHandleGetInventory(t *testing.T) {
	t.Run("defaults to rarity sort", func(t *testing.T) {
		svc := new(MockLedgerService)
		svc.On("GetInventory", mock.Anything, "user-1", ledger.InventoryQuery{
			SortBy: domain.InventorySortRarity,
		}).Return([]domain.OwnedCard{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/inventory?user_id=user-1", nil)
		rec := httptest.NewRecorder()

		HandleGetInventory(svc)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("passes filters through", func(t *testing.T) {
		svc := new(MockLedgerService)
		svc.On("GetInventory", mock.Anything, "user-1", ledger.InventoryQuery{
			SortBy:       domain.InventorySortPrice,
			Rarity:       domain.RarityGold,
			CollectionID: "col-chess",
		}).Return([]domain.OwnedCard{}, nil)

		req := httptest.NewRequest(http.MethodGet,
			"/inventory?user_id=user-1&sort=price&rarity=gold&collection_id=col-chess", nil)
		rec := httptest.NewRecorder()

		HandleGetInventory(svc)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("rejects unknown rarity", func(t *testing.T) {
		svc := new(MockLedgerService)

		req := httptest.NewRequest(http.MethodGet, "/inventory?user_id=user-1&rarity=mythic", nil)
		rec := httptest.NewRecorder()

		HandleGetInventory(svc)(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "GetInventory", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestHandleSellItems(t *testing.T) {
	userID := uuid.NewString()
	itemIDs := []string{uuid.NewString(), uuid.NewString(), uuid.NewString()}

	t.Run("aggregate sell", func(t *testing.T) {
		svc := new(MockLedgerService)
		svc.On("SellItems", mock.Anything, userID, itemIDs).Return(&ledger.BulkSellResult{
			ItemsSold:  3,
			Credited:   domain.MustParseCents("129.97"),
			NewBalance: domain.MustParseCents("1129.97"),
		}, nil)

		body, _ := json.Marshal(BulkItemsRequest{UserID: userID, ItemIDs: itemIDs})
		req := httptest.NewRequest(http.MethodPost, "/inventory/sell", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		HandleSellItems(svc)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "129.97")
	})

	t.Run("unowned item", func(t *testing.T) {
		svc := new(MockLedgerService)
		svc.On("SellItems", mock.Anything, userID, itemIDs).Return(nil, domain.ErrItemNotOwned)

		body, _ := json.Marshal(BulkItemsRequest{UserID: userID, ItemIDs: itemIDs})
		req := httptest.NewRequest(http.MethodPost, "/inventory/sell", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		HandleSellItems(svc)(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgItemNotOwnedError)
	})

	t.Run("empty selection fails validation", func(t *testing.T) {
		svc := new(MockLedgerService)

		body, _ := json.Marshal(BulkItemsRequest{UserID: userID, ItemIDs: []string{}})
		req := httptest.NewRequest(http.MethodPost, "/inventory/sell", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		HandleSellItems(svc)(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "SellItems", mock.Anything, mock.Anything, mock.Anything)
	})
}

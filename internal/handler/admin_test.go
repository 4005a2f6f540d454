package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/casedrop/casedrop/internal/domain"
)

func TestHandleListCards(t *testing.T) {
	t.Run("returns the card catalog", func(t *testing.T) {
		svc := new(MockCatalogService)
		svc.On("ListCards", mock.Anything).Return([]domain.Card{
			{ID: "card-footman", Name: "Rusted Footman", Rarity: domain.RarityCommon, Price: 25},
			{ID: "card-warlord", Name: "Obsidian Warlord", Rarity: domain.RarityGold, Price: 1875},
		}, nil)

		h := NewAdminHandler(svc, nil, nil)
		req := httptest.NewRequest(http.MethodGet, "/admin/cards", nil)
		rec := httptest.NewRecorder()

		h.HandleListCards(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data []domain.Card `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Data, 2)
		assert.Equal(t, "card-footman", resp.Data[0].ID)
		assert.Equal(t, domain.RarityGold, resp.Data[1].Rarity)
		svc.AssertExpectations(t)
	})

	t.Run("maps service failure", func(t *testing.T) {
		svc := new(MockCatalogService)
		svc.On("ListCards", mock.Anything).Return(nil, errors.New("connection refused"))

		h := NewAdminHandler(svc, nil, nil)
		req := httptest.NewRequest(http.MethodGet, "/admin/cards", nil)
		rec := httptest.NewRecorder()

		h.HandleListCards(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		svc.AssertExpectations(t)
	})
}

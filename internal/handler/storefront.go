package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/casedrop/casedrop/internal/catalog"
	"github.com/casedrop/casedrop/internal/domain"
	"github.com/casedrop/casedrop/internal/logger"
)

// CaseSummary is the storefront list entry: no outcome table, just the card.
type CaseSummary struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Price    domain.Cents `json:"price"`
	ImageURL string       `json:"image_url,omitempty"`
}

// CaseDetail is the case page: the summary plus the published outcome table
// with drop percentages.
type CaseDetail struct {
	CaseSummary
	Outcomes []domain.CardOutcome `json:"outcomes"`
}

// HandleListCases lists all cases in the storefront
// @Summary List cases
// @Description List all openable cases
// @Tags storefront
// @Produce json
// @Success 200 {object} DataResponse
// @Failure 500 {object} ErrorResponse
// @Router /cases [get]
func HandleListCases(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		cases, err := svc.ListCases(r.Context())
		if err != nil {
			log.Error(ErrMsgListCasesFailed, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		summaries := make([]CaseSummary, 0, len(cases))
		for _, c := range cases {
			summaries = append(summaries, CaseSummary{
				ID:       c.ID,
				Name:     c.Name,
				Price:    c.Price,
				ImageURL: c.ImageURL,
			})
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: summaries})
	}
}

// HandleGetCase returns one case with its outcome table
// @Summary Get case detail
// @Description Get a case with its outcome table and drop percentages
// @Tags storefront
// @Produce json
// @Param caseID path string true "Case ID"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Router /cases/{caseID} [get]
func HandleGetCase(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		caseID := chi.URLParam(r, "caseID")

		def, err := svc.GetCase(r.Context(), caseID)
		if err != nil {
			log.Warn(ErrMsgGetCaseFailed, "case_id", caseID, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		detail := CaseDetail{
			CaseSummary: CaseSummary{
				ID:       def.ID,
				Name:     def.Name,
				Price:    def.Price,
				ImageURL: def.ImageURL,
			},
			Outcomes: def.Outcomes,
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: detail})
	}
}

// HandleListCollections lists card collections
// @Summary List collections
// @Tags storefront
// @Produce json
// @Success 200 {object} DataResponse
// @Router /collections [get]
func HandleListCollections(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		collections, err := svc.ListCollections(r.Context())
		if err != nil {
			log.Error(ErrMsgListCasesFailed, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: collections})
	}
}

package handler

import (
	"net/http"
	"time"

	"fxconvert/internal/domain"
)

type GetRatesResponse struct {
	Base        string                           `json:"base" example:"MYR"`
	LastUpdated *time.Time                       `json:"last_updated,omitempty" example:"2025-01-02T15:04:05Z"`
	FetchedAt   time.Time                        `json:"fetched_at" example:"2025-01-02T15:05:00Z"`
	Rates       map[string]domain.NormalizedRate `json:"rates"`
}

// GetRates godoc
// @Summary Current rate table
// @Description Normalized buying, selling and middle rates per currency, in base currency per 1 unit
// @Tags Rates
// @Produce json
// @Success 200 {object} GetRatesResponse
// @Failure 503 {object} errorResponse
// @Router /rates [get]
func (h *Handler) GetRates(w http.ResponseWriter, _ *http.Request) {
	table, err := h.service.Table()
	if err != nil {
		h.writeServiceError(w, "GetRates", err)
		return
	}

	res := GetRatesResponse{
		Base:      table.Base,
		FetchedAt: table.FetchedAt,
		Rates:     table.Rates,
	}
	if !table.LastUpdated.IsZero() {
		lastUpdated := table.LastUpdated
		res.LastUpdated = &lastUpdated
	}
	writeJSON(w, http.StatusOK, res)
}

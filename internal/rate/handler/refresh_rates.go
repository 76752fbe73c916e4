package handler

import (
	"net/http"
	"time"
)

type RefreshRatesResponse struct {
	Base        string     `json:"base" example:"MYR"`
	Currencies  int        `json:"currencies" example:"28"`
	LastUpdated *time.Time `json:"last_updated,omitempty" example:"2025-01-02T15:04:05Z"`
}

// RefreshRates godoc
// @Summary Refresh rates now
// @Description Fetches the feed and replaces the rate table. On failure the previous table stays in use.
// @Tags Rates
// @Produce json
// @Success 200 {object} RefreshRatesResponse
// @Failure 502 {object} errorResponse
// @Router /rates/refresh [post]
func (h *Handler) RefreshRates(w http.ResponseWriter, r *http.Request) {
	table, err := h.service.Refresh(r.Context())
	if err != nil {
		h.writeServiceError(w, "RefreshRates", err)
		return
	}

	res := RefreshRatesResponse{
		Base:       table.Base,
		Currencies: len(table.Rates),
	}
	if !table.LastUpdated.IsZero() {
		lastUpdated := table.LastUpdated
		res.LastUpdated = &lastUpdated
	}
	writeJSON(w, http.StatusOK, res)
}

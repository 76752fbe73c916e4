package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

type GetUnitRateResponse struct {
	From     string  `json:"from" example:"USD"`
	To       string  `json:"to" example:"MYR"`
	UnitRate float64 `json:"unit_rate" example:"4.2"`
	RateText string  `json:"rate_text" example:"1 USD = 4.2000 MYR"`
}

// GetUnitRate godoc
// @Summary Unit rate between two currencies
// @Description Value of 1 unit of the source currency in the target currency
// @Tags Rates
// @Produce json
// @Param from path string true "Source currency"
// @Param to path string true "Target currency"
// @Success 200 {object} GetUnitRateResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 503 {object} errorResponse
// @Router /rates/{from}/{to} [get]
func (h *Handler) GetUnitRate(w http.ResponseWriter, r *http.Request) {
	from := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "from")))
	to := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "to")))

	if err := h.validator.ValidatePair(from, to); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	conv, err := h.service.UnitRate(from, to)
	if err != nil {
		h.writeServiceError(w, "GetUnitRate", err)
		return
	}

	writeJSON(w, http.StatusOK, GetUnitRateResponse{
		From:     from,
		To:       to,
		UnitRate: conv.UnitRate,
		RateText: h.formatter.RateLine(conv),
	})
}

package handler

import (
	"errors"
	"net/http"

	"fxconvert/internal/domain"

	"github.com/sirupsen/logrus"
)

type GetCurrenciesResponse struct {
	Base   string            `json:"base" example:"MYR"`
	Codes  []string          `json:"codes" example:"EUR,MYR,USD"`
	Labels map[string]string `json:"labels"`
}

// GetCurrencies godoc
// @Summary List currencies
// @Description Currency codes present in the current rate table, sorted, with display labels
// @Tags Rates
// @Produce json
// @Success 200 {object} GetCurrenciesResponse
// @Failure 503 {object} errorResponse
// @Router /currencies [get]
func (h *Handler) GetCurrencies(w http.ResponseWriter, _ *http.Request) {
	table, err := h.service.Table()
	if err != nil {
		h.writeServiceError(w, "GetCurrencies", err)
		return
	}
	codes := table.Codes()

	writeJSON(w, http.StatusOK, GetCurrenciesResponse{
		Base:   table.Base,
		Codes:  codes,
		Labels: h.formatter.Labels(codes),
	})
}

// writeServiceError maps domain errors to status codes and logs anything unexpected.
func (h *Handler) writeServiceError(w http.ResponseWriter, handlerName string, err error) {
	switch {
	case errors.Is(err, domain.ErrRatesNotLoaded):
		writeError(w, http.StatusServiceUnavailable, "exchange rates are not available yet")
	case errors.Is(err, domain.ErrUnknownCurrency):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrNegativeAmount):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrFeedUnavailable):
		logrus.WithError(err).WithField("handler", handlerName).Warn("rates feed unavailable")
		writeError(w, http.StatusBadGateway, "failed to fetch exchange rates, previous rates are still in use")
	default:
		msg := "ups, something went wrong this time"
		logrus.WithError(err).WithField("handler", handlerName).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
	}
}

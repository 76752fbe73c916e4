package handler

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"fxconvert/internal/domain"
)

const directionReverse = "reverse"

type ConvertResponse struct {
	From       string  `json:"from" example:"USD"`
	To         string  `json:"to" example:"MYR"`
	Amount     float64 `json:"amount" example:"10"`
	Converted  float64 `json:"converted" example:"42"`
	UnitRate   float64 `json:"unit_rate" example:"4.2"`
	ResultText string  `json:"result_text,omitempty" example:"10 USD = 42.00 MYR"`
	RateText   string  `json:"rate_text,omitempty" example:"1 USD = 4.2000 MYR"`
}

// Convert godoc
// @Summary Convert an amount
// @Description Converts amount of from into to. With direction=reverse the amount is the target
// @Description amount and the response carries the source amount needed to obtain it.
// @Description An amount of 0 means nothing to convert and yields an empty result.
// @Tags Rates
// @Produce json
// @Param from query string true "Source currency"
// @Param to query string true "Target currency"
// @Param amount query number false "Amount, defaults to 0"
// @Param direction query string false "forward (default) or reverse"
// @Success 200 {object} ConvertResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 503 {object} errorResponse
// @Router /convert [get]
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from := strings.ToUpper(strings.TrimSpace(q.Get("from")))
	to := strings.ToUpper(strings.TrimSpace(q.Get("to")))
	reverse := strings.EqualFold(strings.TrimSpace(q.Get("direction")), directionReverse)

	amount, err := parseAmount(q.Get("amount"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid amount")
		return
	}

	if err = h.validator.ValidateQuery(from, to, amount); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var conv domain.Conversion
	if reverse {
		conv, err = h.service.Reverse(from, to, amount)
	} else {
		conv, err = h.service.Convert(from, to, amount)
	}
	if err != nil {
		h.writeServiceError(w, "Convert", err)
		return
	}

	res := ConvertResponse{
		From:      conv.From,
		To:        conv.To,
		Amount:    conv.Amount,
		Converted: conv.Converted,
		UnitRate:  conv.UnitRate,
	}
	// zero means no conversion was requested, so there is nothing to show
	if amount != 0 {
		res.ResultText = h.formatter.Result(conv)
		if reverse {
			res.ResultText = h.formatter.ReverseResult(conv)
		}
		res.RateText = h.formatter.RateLine(conv)
	}
	writeJSON(w, http.StatusOK, res)
}

func parseAmount(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New("amount must be a finite number")
	}
	return v, nil
}

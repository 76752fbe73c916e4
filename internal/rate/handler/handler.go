package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"fxconvert/internal/display"
	"fxconvert/internal/domain"
)

type QueryValidator interface {
	ValidatePair(from, to string) error
	ValidateQuery(from, to string, amount float64) error
}

type RateService interface {
	Table() (*domain.RateTable, error)
	Convert(from, to string, amount float64) (domain.Conversion, error)
	Reverse(from, to string, targetAmount float64) (domain.Conversion, error)
	UnitRate(from, to string) (domain.Conversion, error)
	Refresh(ctx context.Context) (*domain.RateTable, error)
}

type Handler struct {
	validator QueryValidator
	service   RateService
	formatter *display.Formatter
}

func NewRateHandler(validator QueryValidator, service RateService, formatter *display.Formatter) *Handler {
	return &Handler{validator: validator, service: service, formatter: formatter}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	writeJSON(w, statusCode, errorResponse{
		Error: errorMsg,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

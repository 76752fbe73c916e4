package api

import (
	_ "fxconvert/docs"
	"fxconvert/internal/rate/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(rateHandler *handler.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Get("/api/v1/currencies", rateHandler.GetCurrencies)
	router.Get("/api/v1/convert", rateHandler.Convert)
	router.Get("/api/v1/rates", rateHandler.GetRates)
	router.Post("/api/v1/rates/refresh", rateHandler.RefreshRates)
	router.Get("/api/v1/rates/{from:[A-Za-z]{3}}/{to:[A-Za-z]{3}}", rateHandler.GetUnitRate)
	return router
}

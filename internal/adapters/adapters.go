package adapters

import (
	"context"

	"fxconvert/internal/domain"

	"github.com/google/uuid"
)

type RatesClient interface {
	FetchRates(ctx context.Context) (domain.Feed, error)
}

// UnitRateCache memoizes unit rates per rate table snapshot.
type UnitRateCache interface {
	Get(tableID uuid.UUID, pair domain.RatePair) (float64, bool)
	Set(tableID uuid.UUID, pair domain.RatePair, rate float64)
	Purge()
}

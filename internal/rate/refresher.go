package rate

import (
	"context"
	"fmt"
	"time"

	"fxconvert/internal/adapters"
	"fxconvert/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultFetchTimeout = 10 * time.Second

type Refresher struct {
	client       adapters.RatesClient
	store        *Store
	cache        adapters.UnitRateCache
	base         string
	fetchTimeout time.Duration
	now          func() time.Time
}

// Refresh fetches the feed, normalizes it and publishes the new table. On failure the
// previously stored table stays in place.
func (r *Refresher) Refresh(ctx context.Context) (*domain.RateTable, error) {
	execID := uuid.NewString()

	fetchCtx, cancel := context.WithTimeout(ctx, r.fetchTimeout)
	defer cancel()

	feed, err := r.client.FetchRates(fetchCtx)
	if err != nil {
		logrus.WithError(err).WithField("exec_id", execID).Warn("Rates fetch failed, keeping previous table")
		return nil, fmt.Errorf("%w: %w", domain.ErrFeedUnavailable, err)
	}

	table := Normalize(feed.Records, r.base)
	table.ID = uuid.New()
	table.LastUpdated = feed.LastUpdated
	table.FetchedAt = r.now()

	r.store.Swap(table)
	if r.cache != nil {
		r.cache.Purge()
	}

	logrus.WithFields(logrus.Fields{
		"exec_id":      execID,
		"table_id":     table.ID,
		"currencies":   len(table.Rates),
		"records":      len(feed.Records),
		"last_updated": table.LastUpdated,
	}).Info("Rate table refreshed")
	return table, nil
}

func NewRefresher(client adapters.RatesClient, store *Store, cache adapters.UnitRateCache, base string, fetchTimeout time.Duration) *Refresher {
	if fetchTimeout <= 0 {
		fetchTimeout = defaultFetchTimeout
	}
	return &Refresher{
		client:       client,
		store:        store,
		cache:        cache,
		base:         normalizeCode(base),
		fetchTimeout: fetchTimeout,
		now:          time.Now,
	}
}

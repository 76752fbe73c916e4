package cache

import (
	"fmt"

	"fxconvert/internal/domain"

	"github.com/dgraph-io/ristretto"
	"github.com/google/uuid"
)

type RistrettoUnitRateCache struct {
	cache *ristretto.Cache
}

func NewUnitRateCache(maxItems int64) (*RistrettoUnitRateCache, error) {
	if maxItems <= 0 {
		return nil, fmt.Errorf("create unit rate cache failed: max items must be positive, got %d", maxItems)
	}
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create unit rate cache failed: %w", err)
	}
	return &RistrettoUnitRateCache{cache: c}, nil
}

func (c *RistrettoUnitRateCache) Get(tableID uuid.UUID, pair domain.RatePair) (float64, bool) {
	if v, ok := c.cache.Get(toKey(tableID, pair)); ok {
		rate, ok := v.(float64)
		return rate, ok
	}
	return 0, false
}

// Set is eventually consistent: the value may not be visible to Get right away.
func (c *RistrettoUnitRateCache) Set(tableID uuid.UUID, pair domain.RatePair, rate float64) {
	c.cache.Set(toKey(tableID, pair), rate, 1)
}

// Purge drops every entry. Called when a new table replaces the old one.
func (c *RistrettoUnitRateCache) Purge() { c.cache.Clear() }

func (c *RistrettoUnitRateCache) Close() { c.cache.Close() }

func toKey(tableID uuid.UUID, p domain.RatePair) string {
	return tableID.String() + ":" + p.From + ":" + p.To
}

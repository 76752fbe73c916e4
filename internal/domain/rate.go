package domain

import (
	"maps"
	"slices"
	"time"

	"github.com/google/uuid"
)

// RawRateRecord is a single currency entry as reported by the feed.
// Rates are nil when the feed omitted the field.
type RawRateRecord struct {
	Code    string
	Unit    int
	Buying  *float64
	Selling *float64
}

// NormalizedRate is expressed as the price of 1 unit of the foreign currency in base currency.
type NormalizedRate struct {
	Buying  float64 `json:"buying_rate"`
	Selling float64 `json:"selling_rate"`
	Middle  float64 `json:"middle_rate"`
}

// RateTable is an immutable snapshot of normalized rates. It is never edited once built.
type RateTable struct {
	ID          uuid.UUID
	Base        string
	Rates       map[string]NormalizedRate
	LastUpdated time.Time
	FetchedAt   time.Time
}

func (t *RateTable) Lookup(code string) (NormalizedRate, bool) {
	if t == nil {
		return NormalizedRate{}, false
	}
	r, ok := t.Rates[code]
	return r, ok
}

func (t *RateTable) Has(code string) bool {
	_, ok := t.Lookup(code)
	return ok
}

// Codes returns the currency codes of the snapshot in sorted order.
func (t *RateTable) Codes() []string {
	if t == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(t.Rates))
}

// Feed is a decoded feed response.
type Feed struct {
	Records     []RawRateRecord
	LastUpdated time.Time
}

type Conversion struct {
	From      string  `json:"from"`
	To        string  `json:"to"`
	Amount    float64 `json:"amount"`
	Converted float64 `json:"converted"`
	UnitRate  float64 `json:"unit_rate"`
}

type RatePair struct {
	From string
	To   string
}

func (p RatePair) Reversed() RatePair {
	return RatePair{
		From: p.To,
		To:   p.From,
	}
}

package rate

import (
	"errors"
	"math"
	"strings"

	"fxconvert/internal/domain"

	"github.com/sirupsen/logrus"
)

var (
	errEmptyCode     = errors.New("currency code is empty")
	errInvalidUnit   = errors.New("unit must be a positive integer")
	errMissingRate   = errors.New("buying or selling rate is missing")
	errInvalidAmount = errors.New("rate must be a positive finite number")
)

var identityRate = domain.NormalizedRate{Buying: 1, Selling: 1, Middle: 1}

// Normalize builds a rate table from raw feed records. The base currency is seeded at identity;
// a record carrying the base code overwrites it. Duplicate codes resolve to the last record.
// Malformed records are logged and skipped, so Normalize never fails.
func Normalize(records []domain.RawRateRecord, base string) *domain.RateTable {
	base = normalizeCode(base)
	rates := make(map[string]domain.NormalizedRate, len(records)+1)
	rates[base] = identityRate

	for i, rec := range records {
		code, rate, err := normalizeRecord(rec)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{"index": i, "code": rec.Code, "unit": rec.Unit}).
				Warn("Skipping malformed rate record")
			continue
		}
		rates[code] = rate
	}

	return &domain.RateTable{Base: base, Rates: rates}
}

func normalizeRecord(rec domain.RawRateRecord) (string, domain.NormalizedRate, error) {
	code := normalizeCode(rec.Code)
	if code == "" {
		return "", domain.NormalizedRate{}, errEmptyCode
	}
	if rec.Unit <= 0 {
		return "", domain.NormalizedRate{}, errInvalidUnit
	}
	if rec.Buying == nil || rec.Selling == nil {
		return "", domain.NormalizedRate{}, errMissingRate
	}
	buying, selling := *rec.Buying, *rec.Selling
	if !isPositiveFinite(buying) || !isPositiveFinite(selling) {
		return "", domain.NormalizedRate{}, errInvalidAmount
	}

	// middle is taken before unit adjustment
	middle := (buying + selling) / 2
	if rec.Unit != 1 {
		unit := float64(rec.Unit)
		buying /= unit
		selling /= unit
		middle /= unit
	}

	return code, domain.NormalizedRate{Buying: buying, Selling: selling, Middle: middle}, nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

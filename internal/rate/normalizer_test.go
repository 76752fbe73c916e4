package rate

import (
	"math"
	"testing"

	"fxconvert/internal/domain"

	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func record(code string, unit int, buying, selling float64) domain.RawRateRecord {
	return domain.RawRateRecord{Code: code, Unit: unit, Buying: ptr(buying), Selling: ptr(selling)}
}

func TestNormalize_EmptyYieldsBaseOnly(t *testing.T) {
	table := Normalize(nil, "MYR")

	require.Equal(t, "MYR", table.Base)
	require.Len(t, table.Rates, 1)
	require.Equal(t, domain.NormalizedRate{Buying: 1, Selling: 1, Middle: 1}, table.Rates["MYR"])
}

func TestNormalize_UnitOneKeepsRates(t *testing.T) {
	table := Normalize([]domain.RawRateRecord{record("USD", 1, 4.18, 4.22)}, "MYR")

	usd := table.Rates["USD"]
	require.InDelta(t, 4.18, usd.Buying, 1e-12)
	require.InDelta(t, 4.22, usd.Selling, 1e-12)
	require.InDelta(t, 4.20, usd.Middle, 1e-12)
}

func TestNormalize_UnitHundredIsRescaled(t *testing.T) {
	table := Normalize([]domain.RawRateRecord{record("XXX", 100, 250, 260)}, "MYR")

	xxx := table.Rates["XXX"]
	require.InDelta(t, 2.5, xxx.Buying, 1e-12)
	require.InDelta(t, 2.6, xxx.Selling, 1e-12)
	require.InDelta(t, 2.55, xxx.Middle, 1e-12)
}

func TestNormalize_OtherUnitsDivideToo(t *testing.T) {
	table := Normalize([]domain.RawRateRecord{record("IDR", 10, 3, 5)}, "MYR")

	idr := table.Rates["IDR"]
	require.InDelta(t, 0.3, idr.Buying, 1e-12)
	require.InDelta(t, 0.5, idr.Selling, 1e-12)
	require.InDelta(t, 0.4, idr.Middle, 1e-12)
}

func TestNormalize_LastDuplicateWins(t *testing.T) {
	table := Normalize([]domain.RawRateRecord{
		record("USD", 1, 4.0, 4.1),
		record("USD", 1, 4.4, 4.6),
	}, "MYR")

	require.Len(t, table.Rates, 2)
	require.InDelta(t, 4.5, table.Rates["USD"].Middle, 1e-12)
}

func TestNormalize_BaseCanBeOverwrittenByFeed(t *testing.T) {
	table := Normalize([]domain.RawRateRecord{record("MYR", 1, 0.99, 1.01)}, "MYR")

	require.Len(t, table.Rates, 1)
	require.InDelta(t, 0.99, table.Rates["MYR"].Buying, 1e-12)
	require.InDelta(t, 1.0, table.Rates["MYR"].Middle, 1e-12)
}

func TestNormalize_SellingBelowBuyingIsAccepted(t *testing.T) {
	table := Normalize([]domain.RawRateRecord{record("EUR", 1, 5, 4)}, "MYR")

	require.InDelta(t, 4.5, table.Rates["EUR"].Middle, 1e-12)
}

func TestNormalize_SkipsMalformedRecords(t *testing.T) {
	records := []domain.RawRateRecord{
		{Code: "SDR", Unit: 1, Buying: nil, Selling: ptr(6.1)},
		{Code: "EUR", Unit: 1, Buying: ptr(4.9), Selling: nil},
		record("", 1, 1, 1),
		record("THB", 0, 12, 13),
		record("VND", -100, 1, 2),
		record("KRW", 100, math.NaN(), 0.33),
		record("PHP", 1, 0, 0.08),
		record("GBP", 1, 5.5, 5.6),
	}

	table := Normalize(records, "MYR")

	require.Len(t, table.Rates, 2)
	require.Contains(t, table.Rates, "MYR")
	require.Contains(t, table.Rates, "GBP")
}

func TestNormalize_CodesAreCanonicalized(t *testing.T) {
	table := Normalize([]domain.RawRateRecord{record(" usd ", 1, 4, 4)}, " myr")

	require.Equal(t, "MYR", table.Base)
	require.Contains(t, table.Rates, "USD")
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	records := []domain.RawRateRecord{record("JPY", 100, 2.8, 2.9)}

	_ = Normalize(records, "MYR")

	require.InDelta(t, 2.8, *records[0].Buying, 1e-12)
	require.Equal(t, 100, records[0].Unit)
}

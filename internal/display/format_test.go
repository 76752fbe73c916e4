package display

import (
	"testing"
	"time"

	"fxconvert/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestFormatter_AmountRoundsHalfUp(t *testing.T) {
	f := NewFormatter(4, nil)

	require.Equal(t, "42.00", f.Amount(42))
	require.Equal(t, "0.13", f.Amount(0.125))
	require.Equal(t, "1234.57", f.Amount(1234.5678))
	require.Equal(t, "0.00", f.Amount(0))
}

func TestFormatter_RatePrecision(t *testing.T) {
	require.Equal(t, "0.2381", NewFormatter(4, nil).Rate(1/4.2))
	require.Equal(t, "0.238095", NewFormatter(6, nil).Rate(1/4.2))
}

func TestNewFormatter_ClampsRatePrecision(t *testing.T) {
	require.Equal(t, int32(4), NewFormatter(0, nil).RatePrecision)
	require.Equal(t, int32(5), NewFormatter(5, nil).RatePrecision)
	require.Equal(t, int32(6), NewFormatter(12, nil).RatePrecision)
	require.Equal(t, int32(2), NewFormatter(6, nil).AmountPrecision)
}

func TestFormatter_ResultAndRateLines(t *testing.T) {
	f := NewFormatter(4, nil)
	c := domain.Conversion{From: "USD", To: "MYR", Amount: 10, Converted: 42.000000001, UnitRate: 4.2}

	require.Equal(t, "10 USD = 42.00 MYR", f.Result(c))
	require.Equal(t, "1 USD = 4.2000 MYR", f.RateLine(c))
}

func TestFormatter_ResultKeepsEnteredAmount(t *testing.T) {
	f := NewFormatter(4, nil)
	c := domain.Conversion{From: "MYR", To: "USD", Amount: 12.5, Converted: 2.976190476, UnitRate: 0.238095238}

	require.Equal(t, "12.5 MYR = 2.98 USD", f.Result(c))
}

func TestFormatter_ReverseResultRoundsBothAmounts(t *testing.T) {
	f := NewFormatter(4, nil)
	c := domain.Conversion{From: "USD", To: "MYR", Amount: 23.809523809523814, Converted: 100, UnitRate: 4.2}

	require.Equal(t, "23.81 USD = 100.00 MYR", f.ReverseResult(c))
}

func TestFormatter_Labels(t *testing.T) {
	plain := NewFormatter(4, nil)
	require.Equal(t, "USD", plain.Label("USD"))

	flags := NewFormatter(4, FlagDecorator)
	labels := flags.Labels([]string{"MYR", "XAU"})
	require.Equal(t, "🇲🇾 MYR", labels["MYR"])
	require.Equal(t, "🏳️ XAU", labels["XAU"])
}

func TestFormatter_LastUpdatedLine(t *testing.T) {
	f := NewFormatter(4, nil)

	require.Empty(t, f.LastUpdatedLine(time.Time{}))
	require.Equal(t, "BNM Open API - Last updated: 2025-03-14 17:00:04 UTC",
		f.LastUpdatedLine(time.Date(2025, 3, 14, 17, 0, 4, 0, time.UTC)))
}

func TestPlainDecorator(t *testing.T) {
	require.Equal(t, "SGD", PlainDecorator("SGD"))
}

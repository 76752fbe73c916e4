package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"fxconvert/internal/display"
	"fxconvert/internal/domain"
	"fxconvert/internal/rate"

	"github.com/stretchr/testify/require"
)

const feedBody = `{
    "data": [
        {"currency_code": "USD", "unit": 1, "rate": {"buying_rate": 4.18, "selling_rate": 4.22}},
        {"currency_code": "JPY", "unit": 100, "rate": {"buying_rate": 2.79, "selling_rate": 2.83}}
    ],
    "meta": {"last_updated": "2025-03-14 17:00:04"}
}`

func ptr(v float64) *float64 { return &v }

func loadedService() (*rate.Service, *domain.RateTable) {
	store := rate.NewStore()
	table := rate.Normalize([]domain.RawRateRecord{
		{Code: "USD", Unit: 1, Buying: ptr(4.18), Selling: ptr(4.22)},
	}, "MYR")
	store.Swap(table)
	return rate.NewService(store, nil, nil), table
}

func TestParseFlags_Defaults(t *testing.T) {
	opts, err := parseFlags(nil)
	require.NoError(t, err)
	require.Equal(t, "USD", opts.from)
	require.Equal(t, "MYR", opts.to)
	require.Equal(t, float64(1), opts.amount)
	require.False(t, opts.reverse)
}

func TestParseFlags_Shorthand(t *testing.T) {
	opts, err := parseFlags([]string{"-f", "myr", "-t", "usd", "-a", "42", "-r", "--rate-precision", "6"})
	require.NoError(t, err)
	require.Equal(t, "myr", opts.from)
	require.Equal(t, "usd", opts.to)
	require.Equal(t, float64(42), opts.amount)
	require.True(t, opts.reverse)
	require.Equal(t, 6, opts.ratePrecision)
}

func TestRender_Convert(t *testing.T) {
	svc, table := loadedService()
	var out bytes.Buffer

	err := render(&out, svc, table, display.NewFormatter(4, nil), options{from: "usd", to: "myr", amount: 10})

	require.NoError(t, err)
	require.Equal(t, "10 USD = 42.00 MYR\n1 USD = 4.2000 MYR\n", out.String())
}

func TestRender_Reverse(t *testing.T) {
	svc, table := loadedService()
	var out bytes.Buffer

	err := render(&out, svc, table, display.NewFormatter(4, nil), options{from: "USD", to: "MYR", amount: 42, reverse: true})

	require.NoError(t, err)
	require.Equal(t, "10.00 USD = 42.00 MYR\n1 USD = 4.2000 MYR\n", out.String())
}

func TestRender_ReverseRoundsComputedAmount(t *testing.T) {
	svc, table := loadedService()
	var out bytes.Buffer

	err := render(&out, svc, table, display.NewFormatter(4, nil), options{from: "USD", to: "MYR", amount: 100, reverse: true})

	require.NoError(t, err)
	require.Equal(t, "23.81 USD = 100.00 MYR\n1 USD = 4.2000 MYR\n", out.String())
}

func TestRender_List(t *testing.T) {
	svc, table := loadedService()
	var out bytes.Buffer

	err := render(&out, svc, table, display.NewFormatter(4, display.FlagDecorator), options{list: true})

	require.NoError(t, err)
	require.Equal(t, "🇲🇾 MYR\n🇺🇸 USD\n", out.String())
}

func TestRender_UnknownCurrency(t *testing.T) {
	svc, table := loadedService()
	var out bytes.Buffer

	err := render(&out, svc, table, display.NewFormatter(4, nil), options{from: "XAU", to: "MYR", amount: 1})

	require.ErrorIs(t, err, domain.ErrUnknownCurrency)
}

func TestRun_FetchesFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(feedBody))
	}))
	t.Cleanup(srv.Close)
	t.Setenv("FEED_URL", srv.URL)
	t.Setenv("DISPLAY_FLAGS", "false")

	var out bytes.Buffer
	missing := filepath.Join(t.TempDir(), "missing.yaml")
	err := run([]string{"--config", missing, "--from", "JPY", "--to", "USD", "--amount", "1000"}, &out)

	require.NoError(t, err)
	require.Contains(t, out.String(), "BNM Open API - Last updated: 2025-03-14 17:00:04 UTC")
	// 1000 JPY = 28.1 MYR = 28.1/4.2 USD
	require.Contains(t, out.String(), "1000 JPY = 6.69 USD")
}

func TestRun_FeedFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)
	t.Setenv("FEED_URL", srv.URL)

	var out bytes.Buffer
	err := run([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}, &out)

	require.ErrorIs(t, err, domain.ErrFeedUnavailable)
}

package rate

import (
	"context"
	"testing"
	"time"

	"fxconvert/internal/domain"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRefresher(client *MockRatesClient) *Refresher {
	return NewRefresher(client, NewStore(), nil, "MYR", time.Second)
}

func TestNewScheduler_Constructs(t *testing.T) {
	s := NewScheduler(newTestRefresher(new(MockRatesClient)), 10*time.Second)
	require.NotNil(t, s)
	require.False(t, s.running())
}

func TestScheduler_Shutdown_NoScheduler_ReturnsNil(t *testing.T) {
	s := NewScheduler(newTestRefresher(new(MockRatesClient)), 10*time.Second)
	err := s.Shutdown()
	require.NoError(t, err)
	require.False(t, s.running())
}

func TestScheduler_Start_And_ContextCancel_ShutsDown(t *testing.T) {
	s := NewScheduler(newTestRefresher(new(MockRatesClient)), 10*time.Second)
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, s.Start(ctx))
	require.True(t, s.running())

	cancel()

	require.Eventually(t, func() bool { return !s.running() }, 2*time.Second, 10*time.Millisecond,
		"expected scheduler to be shutdown after ctx cancel")
}

func TestScheduler_Shutdown_AfterStart_Idempotent(t *testing.T) {
	client := new(MockRatesClient)
	client.On("FetchRates", mock.Anything).Return(domain.Feed{}, nil).Maybe()
	s := NewScheduler(newTestRefresher(client), 10*time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, s.Start(ctx))
	require.True(t, s.running())

	require.NoError(t, s.Shutdown())
	require.False(t, s.running())

	require.NoError(t, s.Shutdown())
}

func TestScheduler_RunsRefreshPeriodically(t *testing.T) {
	client := new(MockRatesClient)
	client.On("FetchRates", mock.Anything).Return(domain.Feed{
		Records: []domain.RawRateRecord{record("USD", 1, 4.18, 4.22)},
	}, nil)
	refresher := newTestRefresher(client)
	s := NewScheduler(refresher, 20*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, s.Start(ctx))
	defer func() { _ = s.Shutdown() }()

	require.Eventually(t, func() bool { return refresher.store.Current() != nil }, 2*time.Second, 10*time.Millisecond)
	require.Contains(t, refresher.store.Current().Rates, "USD")
}

func TestNewScheduler_UsesProvidedInterval(t *testing.T) {
	s := NewScheduler(newTestRefresher(new(MockRatesClient)), 42*time.Second)
	require.Equal(t, 42*time.Second, s.refreshInterval)
}

func TestNewScheduler_DefaultsIntervalWhenInvalid(t *testing.T) {
	s := NewScheduler(newTestRefresher(new(MockRatesClient)), 0)
	require.Equal(t, time.Hour, s.refreshInterval)
}

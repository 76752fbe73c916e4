package rate

import (
	"context"
	"errors"

	"fxconvert/internal/adapters"
	"fxconvert/internal/domain"
)

type Service struct {
	store     *Store
	refresher *Refresher
	cache     adapters.UnitRateCache
}

// Table returns the current snapshot or ErrRatesNotLoaded before the first successful fetch.
func (s *Service) Table() (*domain.RateTable, error) {
	table := s.store.Current()
	if table == nil {
		return nil, domain.ErrRatesNotLoaded
	}
	return table, nil
}

func (s *Service) Currencies() ([]string, error) {
	table, err := s.Table()
	if err != nil {
		return nil, err
	}
	return table.Codes(), nil
}

// Convert prices amount through the unit rate of the pair. The unit rate is computed once per
// snapshot and served from the cache afterwards.
func (s *Service) Convert(from, to string, amount float64) (domain.Conversion, error) {
	table, err := s.Table()
	if err != nil {
		return domain.Conversion{}, err
	}
	if err = checkConversion(table, amount, from, to); err != nil {
		return domain.Conversion{}, err
	}

	unit := s.unitRate(table, domain.RatePair{From: from, To: to})
	return domain.Conversion{
		From:      from,
		To:        to,
		Amount:    amount,
		Converted: amount * unit,
		UnitRate:  unit,
	}, nil
}

// Reverse answers how much from buys targetAmount of to, using the unit rate of the reversed pair.
func (s *Service) Reverse(from, to string, targetAmount float64) (domain.Conversion, error) {
	table, err := s.Table()
	if err != nil {
		return domain.Conversion{}, err
	}
	if err = checkConversion(table, targetAmount, to, from); err != nil {
		return domain.Conversion{}, err
	}

	pair := domain.RatePair{From: from, To: to}
	return domain.Conversion{
		From:      from,
		To:        to,
		Amount:    targetAmount * s.unitRate(table, pair.Reversed()),
		Converted: targetAmount,
		UnitRate:  s.unitRate(table, pair),
	}, nil
}

func (s *Service) UnitRate(from, to string) (domain.Conversion, error) {
	return s.Convert(from, to, 1)
}

func (s *Service) Refresh(ctx context.Context) (*domain.RateTable, error) {
	if s.refresher == nil {
		return nil, errors.New("rates refresher is not configured")
	}
	return s.refresher.Refresh(ctx)
}

func (s *Service) unitRate(table *domain.RateTable, pair domain.RatePair) float64 {
	if s.cache == nil {
		return UnitRate(table, pair.From, pair.To)
	}
	if v, ok := s.cache.Get(table.ID, pair); ok {
		return v
	}
	v := UnitRate(table, pair.From, pair.To)
	s.cache.Set(table.ID, pair, v)
	return v
}

func NewService(store *Store, refresher *Refresher, cache adapters.UnitRateCache) *Service {
	return &Service{store: store, refresher: refresher, cache: cache}
}

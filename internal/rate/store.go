package rate

import (
	"sync/atomic"

	"fxconvert/internal/domain"
)

// Store holds the latest successfully fetched rate table. Readers get whole snapshots only.
type Store struct {
	current atomic.Pointer[domain.RateTable]
}

// Current returns nil until the first table is stored.
func (s *Store) Current() *domain.RateTable {
	return s.current.Load()
}

func (s *Store) Swap(table *domain.RateTable) (previous *domain.RateTable) {
	return s.current.Swap(table)
}

func NewStore() *Store {
	return &Store{}
}

package domain

import "errors"

var (
	ErrFeedUnavailable = errors.New("exchange rate feed unavailable")
	ErrRatesNotLoaded  = errors.New("exchange rates not loaded yet")
	ErrUnknownCurrency = errors.New("unknown currency")
	ErrNegativeAmount  = errors.New("amount must not be negative")
)

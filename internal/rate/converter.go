package rate

import (
	"fmt"
	"math"

	"fxconvert/internal/domain"
)

// Convert converts amount of from into to, pivoting through the table's base currency.
// It returns 0 when either currency is missing from the table. Equal currencies return amount
// unchanged without touching the table.
func Convert(table *domain.RateTable, amount float64, from, to string) float64 {
	if from == to {
		return amount
	}

	fromRate, ok := table.Lookup(from)
	if !ok {
		return 0
	}
	toRate, ok := table.Lookup(to)
	if !ok {
		return 0
	}

	amountInBase := amount
	if from != table.Base {
		amountInBase = amount * fromRate.Middle
	}
	if to == table.Base {
		return amountInBase
	}
	return amountInBase / toRate.Middle
}

// UnitRate is the value of 1 from expressed in to.
func UnitRate(table *domain.RateTable, from, to string) float64 {
	return Convert(table, 1, from, to)
}

// Exchange is the strict form of Convert: unknown currencies and negative amounts are reported
// as errors instead of a zero result.
func Exchange(table *domain.RateTable, amount float64, from, to string) (domain.Conversion, error) {
	if err := checkConversion(table, amount, from, to); err != nil {
		return domain.Conversion{}, err
	}

	return domain.Conversion{
		From:      from,
		To:        to,
		Amount:    amount,
		Converted: Convert(table, amount, from, to),
		UnitRate:  UnitRate(table, from, to),
	}, nil
}

// Reverse answers "how much from buys targetAmount of to".
func Reverse(table *domain.RateTable, targetAmount float64, from, to string) (domain.Conversion, error) {
	back, err := Exchange(table, targetAmount, to, from)
	if err != nil {
		return domain.Conversion{}, err
	}
	return domain.Conversion{
		From:      from,
		To:        to,
		Amount:    back.Converted,
		Converted: targetAmount,
		UnitRate:  UnitRate(table, from, to),
	}, nil
}

func checkConversion(table *domain.RateTable, amount float64, from, to string) error {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return domain.ErrNegativeAmount
	}
	if !table.Has(from) {
		return fmt.Errorf("%w: %s", domain.ErrUnknownCurrency, from)
	}
	if !table.Has(to) {
		return fmt.Errorf("%w: %s", domain.ErrUnknownCurrency, to)
	}
	return nil
}

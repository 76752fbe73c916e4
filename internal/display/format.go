package display

import (
	"fmt"
	"time"

	"fxconvert/internal/domain"

	"github.com/shopspring/decimal"
)

const (
	DefaultAmountPrecision = 2
	DefaultRatePrecision   = 4
	maxRatePrecision       = 6
)

// Decorator turns a currency code into its display label.
type Decorator func(code string) string

// PlainDecorator shows the bare code.
func PlainDecorator(code string) string { return code }

// Formatter renders conversion results for people. It never feeds back into conversion math.
type Formatter struct {
	AmountPrecision int32
	RatePrecision   int32
	Decorate        Decorator
}

func (f *Formatter) Amount(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(f.AmountPrecision)
}

func (f *Formatter) Rate(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(f.RatePrecision)
}

// Result renders "10 USD = 42.00 MYR". The input amount is shown as entered.
func (f *Formatter) Result(c domain.Conversion) string {
	return fmt.Sprintf("%s %s = %s %s",
		decimal.NewFromFloat(c.Amount).String(), c.From, f.Amount(c.Converted), c.To)
}

// ReverseResult renders a reverse conversion, where the source amount was computed and is
// rounded like any other amount: "23.81 USD = 100.00 MYR".
func (f *Formatter) ReverseResult(c domain.Conversion) string {
	return fmt.Sprintf("%s %s = %s %s",
		f.Amount(c.Amount), c.From, f.Amount(c.Converted), c.To)
}

// RateLine renders "1 USD = 4.2000 MYR".
func (f *Formatter) RateLine(c domain.Conversion) string {
	return fmt.Sprintf("1 %s = %s %s", c.From, f.Rate(c.UnitRate), c.To)
}

func (f *Formatter) Label(code string) string {
	if f.Decorate == nil {
		return code
	}
	return f.Decorate(code)
}

// Labels maps every code to its display label.
func (f *Formatter) Labels(codes []string) map[string]string {
	labels := make(map[string]string, len(codes))
	for _, code := range codes {
		labels[code] = f.Label(code)
	}
	return labels
}

func (f *Formatter) LastUpdatedLine(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return "BNM Open API - Last updated: " + t.Format("2006-01-02 15:04:05 MST")
}

// NewFormatter clamps rate precision to 4..6 decimal places.
func NewFormatter(ratePrecision int, decorate Decorator) *Formatter {
	p := int32(ratePrecision)
	if p < DefaultRatePrecision {
		p = DefaultRatePrecision
	}
	if p > maxRatePrecision {
		p = maxRatePrecision
	}
	return &Formatter{
		AmountPrecision: DefaultAmountPrecision,
		RatePrecision:   p,
		Decorate:        decorate,
	}
}

package rate

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var (
	ErrFromRequired = errors.New("source currency is required")
	ErrToRequired   = errors.New("target currency is required")
	ErrFromInvalid  = errors.New("source currency must be a 3-letter code")
	ErrToInvalid    = errors.New("target currency must be a 3-letter code")
	ErrAmountRange  = errors.New("amount must be zero or positive")
)

type conversionQuery struct {
	From   string  `validate:"required,alpha,len=3"`
	To     string  `validate:"required,alpha,len=3"`
	Amount float64 `validate:"gte=0"`
}

// QueryValidator checks the shape of conversion requests. Whether a code is actually present
// in the rate table is decided at conversion time, since the table can change between calls.
type QueryValidator struct {
	validate *validator.Validate
}

func (v *QueryValidator) ValidatePair(from, to string) error {
	return v.ValidateQuery(from, to, 0)
}

func (v *QueryValidator) ValidateQuery(from, to string, amount float64) error {
	err := v.validate.Struct(conversionQuery{From: from, To: to, Amount: amount})
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	switch fe.Field() {
	case "From":
		if fe.Tag() == "required" {
			return ErrFromRequired
		}
		return ErrFromInvalid
	case "To":
		if fe.Tag() == "required" {
			return ErrToRequired
		}
		return ErrToInvalid
	default:
		return ErrAmountRange
	}
}

func NewValidator() *QueryValidator {
	return &QueryValidator{validate: validator.New()}
}

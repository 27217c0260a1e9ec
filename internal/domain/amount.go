package domain

import "github.com/shopspring/decimal"

// Amounts are stored as NUMERIC(12,2)
const (
	AmountMaxDigits     = 12
	AmountDecimalPlaces = 2
)

// amountLimit is the first value that no longer fits the integer digits of NUMERIC(12,2)
var amountLimit = decimal.New(1, AmountMaxDigits-AmountDecimalPlaces)

// ValidateAmountPrecision checks that d fits the stored decimal scale and precision
func ValidateAmountPrecision(d decimal.Decimal) error {
	if !d.Equal(d.Truncate(AmountDecimalPlaces)) {
		return ErrAmountPrecision
	}
	if d.Abs().GreaterThanOrEqual(amountLimit) {
		return ErrAmountPrecision
	}
	return nil
}

// ValidateTransactionAmount requires a strictly positive amount
func ValidateTransactionAmount(d decimal.Decimal) error {
	if !d.IsPositive() {
		return ErrInvalidAmount
	}
	return ValidateAmountPrecision(d)
}

// ValidateBudgetAmount allows zero so that an unfunded budget can still be tracked
func ValidateBudgetAmount(d decimal.Decimal) error {
	if d.IsNegative() {
		return ErrNegativeBudgetAmount
	}
	return ValidateAmountPrecision(d)
}

package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateTransactionAmount(t *testing.T) {
	tests := []struct {
		amount string
		want   error
	}{
		{"0.01", nil},
		{"300", nil},
		{"1500.50", nil},
		{"1.500", nil},
		{"9999999999.99", nil},
		{"0", ErrInvalidAmount},
		{"0.00", ErrInvalidAmount},
		{"-1", ErrInvalidAmount},
		{"-0.01", ErrInvalidAmount},
		{"10.001", ErrAmountPrecision},
		{"10000000000", ErrAmountPrecision},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			got := ValidateTransactionAmount(decimal.RequireFromString(tt.amount))
			if got != tt.want {
				t.Errorf("ValidateTransactionAmount(%s) = %v, want %v", tt.amount, got, tt.want)
			}
		})
	}
}

func TestValidateBudgetAmount(t *testing.T) {
	tests := []struct {
		amount string
		want   error
	}{
		{"0", nil},
		{"1000", nil},
		{"-5", ErrNegativeBudgetAmount},
		{"1.234", ErrAmountPrecision},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			got := ValidateBudgetAmount(decimal.RequireFromString(tt.amount))
			if got != tt.want {
				t.Errorf("ValidateBudgetAmount(%s) = %v, want %v", tt.amount, got, tt.want)
			}
		})
	}
}

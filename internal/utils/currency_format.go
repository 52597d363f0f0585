package utils

import (
	"github.com/SscSPs/personal_finance_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// NormalizeAmount converts an amount into the account currency using the caller
// supplied rate and rounds to the account currency precision.
// Example: 10.005 × 1 with 2 places returns 10.01
// Example: 1500 × 0.0067 with 2 places returns 10.05
func NormalizeAmount(amount, exchangeRate decimal.Decimal, decimalPlaces int) decimal.Decimal {
	return amount.Mul(exchangeRate).Round(int32(decimalPlaces))
}

// NormalizeTransaction fills in the computed amount of t for the given account.
// A zero exchange rate is treated as 1.
func NormalizeTransaction(t *domain.Transaction, account domain.Account) {
	if t.ExchangeRate.IsZero() {
		t.ExchangeRate = decimal.NewFromInt(1)
	}
	t.AmountInAccountCurrency = NormalizeAmount(t.Amount, t.ExchangeRate, account.DecimalPlaces())
}

// FormatWithPrecision formats an amount with the given precision.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

package domain

import "github.com/shopspring/decimal"

// Account is a money container (wallet, card, bank account) owned by a user.
type Account struct {
	ID                int64
	UserID            int64
	Name              string
	AccountType       string
	CurrencyID        int64
	InitialBalance    decimal.Decimal
	CurrentBalance    decimal.Decimal
	Color             *string
	Icon              *string
	IsActive          bool
	IsIncludedInTotal bool
	Notes             *string
	// Currency is populated by repository reads that join currencies.
	Currency *Currency
	AuditFields
}

// DecimalPlaces returns the precision of the account currency.
func (a Account) DecimalPlaces() int {
	if a.Currency == nil {
		return DefaultDecimalPlaces
	}
	return a.Currency.DecimalPlaces
}

package models

import (
	"github.com/shopspring/decimal"
)

// Account is a row of the accounts table joined with its currency.
type Account struct {
	ID                int64           `db:"id"`
	UserID            int64           `db:"user_id"`
	Name              string          `db:"name"`
	AccountType       string          `db:"account_type"`
	CurrencyID        int64           `db:"currency_id"`
	InitialBalance    decimal.Decimal `db:"initial_balance"`
	CurrentBalance    decimal.Decimal `db:"current_balance"`
	Color             *string         `db:"color"`
	Icon              *string         `db:"icon"`
	IsActive          bool            `db:"is_active"`
	IsIncludedInTotal bool            `db:"is_included_in_total"`
	Notes             *string         `db:"notes"`
	AuditFields

	CurrencyCode          string `db:"currency_code"`
	CurrencyName          string `db:"currency_name"`
	CurrencySymbol        string `db:"currency_symbol"`
	CurrencyDecimalPlaces int    `db:"currency_decimal_places"`
	CurrencyIsActive      bool   `db:"currency_is_active"`
}

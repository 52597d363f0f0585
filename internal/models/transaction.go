package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table. TagIDs is aggregated from transaction_tags.
type Transaction struct {
	ID                      int64           `db:"id"`
	UserID                  int64           `db:"user_id"`
	AccountID               int64           `db:"account_id"`
	CategoryID              *int64          `db:"category_id"`
	PayeeID                 *int64          `db:"payee_id"`
	PaymentMethodID         *int64          `db:"payment_method_id"`
	TransactionType         string          `db:"transaction_type"`
	Amount                  decimal.Decimal `db:"amount"`
	CurrencyID              int64           `db:"currency_id"`
	ExchangeRate            decimal.Decimal `db:"exchange_rate"`
	AmountInAccountCurrency decimal.Decimal `db:"amount_in_account_currency"`
	TransactionDate         time.Time       `db:"transaction_date"`
	Description             *string         `db:"description"`
	Notes                   *string         `db:"notes"`
	Location                *string         `db:"location"`
	IsRecurring             bool            `db:"is_recurring"`
	RecurringTransactionID  *int64          `db:"recurring_transaction_id"`
	IsExcludedFromStats     bool            `db:"is_excluded_from_stats"`
	TagIDs                  []int64         `db:"tag_ids"`
	AuditFields
}

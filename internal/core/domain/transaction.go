package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a money movement.
type TransactionType string

const (
	TransactionIncome   TransactionType = "income"
	TransactionExpense  TransactionType = "expense"
	TransactionTransfer TransactionType = "transfer"
)

// Transaction is a single money movement on an account.
type Transaction struct {
	ID              int64
	UserID          int64
	AccountID       int64
	CategoryID      *int64
	PayeeID         *int64
	PaymentMethodID *int64
	TransactionType TransactionType
	Amount          decimal.Decimal
	CurrencyID      int64
	ExchangeRate    decimal.Decimal
	// AmountInAccountCurrency is Amount × ExchangeRate rounded to the account currency.
	AmountInAccountCurrency decimal.Decimal
	TransactionDate         time.Time
	Description             *string
	Notes                   *string
	Location                *string
	IsRecurring             bool
	RecurringTransactionID  *int64
	IsExcludedFromStats     bool
	TagIDs                  []int64
	AuditFields
}

// TransactionFilter narrows a transaction listing.
type TransactionFilter struct {
	UserID          int64
	StartDate       *time.Time
	EndDate         *time.Time
	AccountID       *int64
	CategoryID      *int64
	TransactionType *TransactionType
	Search          string
	Page
}

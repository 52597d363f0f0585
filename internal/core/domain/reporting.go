package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatisticsFilter bounds the statistics report.
type StatisticsFilter struct {
	UserID          int64
	StartDate       *time.Time
	EndDate         *time.Time
	AccountID       *int64
	TransactionType *TransactionType
}

// Statistics is the income/expense summary of a period.
type Statistics struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// CategoryTotal is one row of the by-category breakdown.
// CategoryID is nil for uncategorised transactions.
type CategoryTotal struct {
	CategoryID   *int64
	CategoryName string
	Total        decimal.Decimal
	Count        int
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetPeriod labels the cadence a budget is planned for.
type BudgetPeriod string

const (
	PeriodDaily   BudgetPeriod = "daily"
	PeriodWeekly  BudgetPeriod = "weekly"
	PeriodMonthly BudgetPeriod = "monthly"
	PeriodYearly  BudgetPeriod = "yearly"
	PeriodCustom  BudgetPeriod = "custom"
)

// Budget caps spending for a category and/or a set of accounts over a date window.
type Budget struct {
	ID             int64
	UserID         int64
	CategoryID     *int64
	AccountIDs     []int64
	Name           string
	Amount         decimal.Decimal
	CurrencyID     int64
	PeriodType     BudgetPeriod
	StartDate      time.Time
	EndDate        *time.Time
	RolloverUnused bool
	AlertThreshold decimal.Decimal
	IsActive       bool
	AuditFields
}

// BudgetSpend is the derived spending state of a budget at a point in time.
type BudgetSpend struct {
	Spent          decimal.Decimal
	Percentage     decimal.Decimal
	AlertTriggered bool
}

// BudgetWithSpend pairs a budget with its computed spend.
type BudgetWithSpend struct {
	Budget
	BudgetSpend
}

// SpendFilter selects the expense transactions counted against a budget.
// An empty AccountIDs means every account.
type SpendFilter struct {
	UserID     int64
	CategoryID *int64
	AccountIDs []int64
	From       time.Time
	To         time.Time
}

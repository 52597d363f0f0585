package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is a row of the budgets table. AccountIDs is aggregated from budget_accounts.
type Budget struct {
	ID             int64           `db:"id"`
	UserID         int64           `db:"user_id"`
	CategoryID     *int64          `db:"category_id"`
	AccountIDs     []int64         `db:"account_ids"`
	Name           string          `db:"name"`
	Amount         decimal.Decimal `db:"amount"`
	CurrencyID     int64           `db:"currency_id"`
	PeriodType     string          `db:"period_type"`
	StartDate      time.Time       `db:"start_date"`
	EndDate        *time.Time      `db:"end_date"`
	RolloverUnused bool            `db:"rollover_unused"`
	AlertThreshold decimal.Decimal `db:"alert_threshold"`
	IsActive       bool            `db:"is_active"`
	AuditFields
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal is a row of the financial_goals table.
type Goal struct {
	ID            int64           `db:"id"`
	UserID        int64           `db:"user_id"`
	AccountID     *int64          `db:"account_id"`
	Name          string          `db:"name"`
	Description   *string         `db:"description"`
	TargetAmount  decimal.Decimal `db:"target_amount"`
	CurrentAmount decimal.Decimal `db:"current_amount"`
	CurrencyID    int64           `db:"currency_id"`
	TargetDate    *time.Time      `db:"target_date"`
	Priority      int             `db:"priority"`
	IsAchieved    bool            `db:"is_achieved"`
	ImageURL      *string         `db:"image_url"`
	AuditFields
}

// GoalContribution is a row of the goal_contributions table.
type GoalContribution struct {
	ID               int64           `db:"id"`
	GoalID           int64           `db:"goal_id"`
	TransactionID    *int64          `db:"transaction_id"`
	Amount           decimal.Decimal `db:"amount"`
	ContributionDate time.Time       `db:"contribution_date"`
	Notes            *string         `db:"notes"`
	CreatedAt        time.Time       `db:"created_at"`
}

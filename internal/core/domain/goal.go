package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal is a savings target.
type Goal struct {
	ID            int64
	UserID        int64
	AccountID     *int64
	Name          string
	Description   *string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	CurrencyID    int64
	TargetDate    *time.Time
	Priority      int
	IsAchieved    bool
	ImageURL      *string
	Contributions []GoalContribution
	AuditFields
}

// GoalContribution is money put towards a goal.
type GoalContribution struct {
	ID               int64
	GoalID           int64
	TransactionID    *int64
	Amount           decimal.Decimal
	ContributionDate time.Time
	Notes            *string
	CreatedAt        time.Time
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Frequency is the step unit of a recurring rule.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// RecurringTransaction is a template that generates transactions on a schedule.
type RecurringTransaction struct {
	ID                int64
	UserID            int64
	AccountID         int64
	CategoryID        *int64
	PayeeID           *int64
	PaymentMethodID   *int64
	TransactionType   TransactionType
	Amount            decimal.Decimal
	CurrencyID        int64
	Description       *string
	Frequency         Frequency
	IntervalValue     int
	StartDate         time.Time
	EndDate           *time.Time
	NextDueDate       time.Time
	LastGeneratedDate *time.Time
	LastRemindedDate  *time.Time
	IsActive          bool
	AutoCreate        bool
	RemindBeforeDays  int
	AuditFields
}

// NewTransaction builds the transaction instance for the rule's current due date.
func (r RecurringTransaction) NewTransaction() Transaction {
	ruleID := r.ID
	return Transaction{
		UserID:                 r.UserID,
		AccountID:              r.AccountID,
		CategoryID:             r.CategoryID,
		PayeeID:                r.PayeeID,
		PaymentMethodID:        r.PaymentMethodID,
		TransactionType:        r.TransactionType,
		Amount:                 r.Amount,
		CurrencyID:             r.CurrencyID,
		ExchangeRate:           decimal.NewFromInt(1),
		TransactionDate:        r.NextDueDate,
		Description:            r.Description,
		IsRecurring:            true,
		RecurringTransactionID: &ruleID,
	}
}

// RuleFailure records a rule that could not be processed.
type RuleFailure struct {
	RuleID int64
	Err    error
}

// ProcessResult summarises one scheduler pass.
type ProcessResult struct {
	Generated   int
	Reminded    int
	Deactivated int
	Failed      []RuleFailure
}

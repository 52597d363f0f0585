package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecurringTransaction is a row of the recurring_transactions table.
type RecurringTransaction struct {
	ID                int64           `db:"id"`
	UserID            int64           `db:"user_id"`
	AccountID         int64           `db:"account_id"`
	CategoryID        *int64          `db:"category_id"`
	PayeeID           *int64          `db:"payee_id"`
	PaymentMethodID   *int64          `db:"payment_method_id"`
	TransactionType   string          `db:"transaction_type"`
	Amount            decimal.Decimal `db:"amount"`
	CurrencyID        int64           `db:"currency_id"`
	Description       *string         `db:"description"`
	Frequency         string          `db:"frequency"`
	IntervalValue     int             `db:"interval_value"`
	StartDate         time.Time       `db:"start_date"`
	EndDate           *time.Time      `db:"end_date"`
	NextDueDate       time.Time       `db:"next_due_date"`
	LastGeneratedDate *time.Time      `db:"last_generated_date"`
	LastRemindedDate  *time.Time      `db:"last_reminded_date"`
	IsActive          bool            `db:"is_active"`
	AutoCreate        bool            `db:"auto_create"`
	RemindBeforeDays  int             `db:"remind_before_days"`
	AuditFields
}

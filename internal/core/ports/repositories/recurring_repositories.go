package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/personal_finance_api/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// RecurringReader defines read operations for recurring rules.
type RecurringReader interface {
	FindRecurringByID(ctx context.Context, ruleID, userID int64) (*domain.RecurringTransaction, error)
	ListRecurring(ctx context.Context, userID int64) ([]domain.RecurringTransaction, error)
	// ListActionable returns active rules that are due or inside their reminder
	// window on today. A nil userID selects rules of every user.
	ListActionable(ctx context.Context, userID *int64, today time.Time) ([]domain.RecurringTransaction, error)
}

// RecurringWriter defines write operations for recurring rules.
type RecurringWriter interface {
	CreateRecurring(ctx context.Context, rule domain.RecurringTransaction) (*domain.RecurringTransaction, error)
	UpdateRecurring(ctx context.Context, rule domain.RecurringTransaction) error
	DeleteRecurring(ctx context.Context, ruleID, userID int64) error
	MarkReminded(ctx context.Context, ruleID int64, on time.Time) error
	Deactivate(ctx context.Context, ruleID int64) error
}

// RecurringScheduleSupport gives the scheduler row-locked access to a rule.
type RecurringScheduleSupport interface {
	// LockRecurringTx selects the rule FOR UPDATE.
	LockRecurringTx(ctx context.Context, tx pgx.Tx, ruleID, userID int64) (*domain.RecurringTransaction, error)
	// SaveScheduleTx persists next_due_date, last_generated_date and is_active.
	SaveScheduleTx(ctx context.Context, tx pgx.Tx, rule domain.RecurringTransaction) error
}

// RecurringRepositoryWithTx combines all recurring rule operations with transaction control.
type RecurringRepositoryWithTx interface {
	RecurringReader
	RecurringWriter
	RecurringScheduleSupport
	TransactionManager
}

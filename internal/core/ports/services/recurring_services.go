package services

import (
	"context"
	"time"

	"github.com/SscSPs/personal_finance_api/internal/core/domain"
)

// RecurringReaderSvc defines read operations for recurring rules.
type RecurringReaderSvc interface {
	ListRecurring(ctx context.Context, userID int64) ([]domain.RecurringTransaction, error)
	GetRecurring(ctx context.Context, ruleID, userID int64) (*domain.RecurringTransaction, error)
}

// RecurringWriterSvc defines write operations for recurring rules.
type RecurringWriterSvc interface {
	CreateRecurring(ctx context.Context, rule domain.RecurringTransaction) (*domain.RecurringTransaction, error)
	UpdateRecurring(ctx context.Context, ruleID int64, rule domain.RecurringTransaction) (*domain.RecurringTransaction, error)
	DeleteRecurring(ctx context.Context, ruleID, userID int64) error
}

// RecurringSchedulerSvc runs scheduler passes.
type RecurringSchedulerSvc interface {
	// ProcessDue materializes due auto-create rules and raises reminders as of
	// today. A nil userID processes the rules of every user. A failing rule is
	// reported in the result and leaves its schedule untouched.
	ProcessDue(ctx context.Context, userID *int64, today time.Time) (*domain.ProcessResult, error)
	// ProcessOnList reports whether listings should run a pass for the caller first.
	ProcessOnList() bool
}

type RecurringSvcFacade interface {
	RecurringReaderSvc
	RecurringWriterSvc
	RecurringSchedulerSvc
}

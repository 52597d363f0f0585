package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/personal_finance_api/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_api/internal/core/ports/repositories"
	"github.com/SscSPs/personal_finance_api/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const recurringColumns = `id, user_id, account_id, category_id, payee_id, payment_method_id, transaction_type,
	amount, currency_id, description, frequency, interval_value, start_date, end_date, next_due_date,
	last_generated_date, last_reminded_date, is_active, auto_create, remind_before_days, created_at, updated_at`

type PgxRecurringRepository struct {
	BaseRepository
}

func newPgxRecurringRepository(pool *pgxpool.Pool) *PgxRecurringRepository {
	return &PgxRecurringRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.RecurringRepositoryWithTx = (*PgxRecurringRepository)(nil)

func toDomainRecurring(m models.RecurringTransaction) domain.RecurringTransaction {
	return domain.RecurringTransaction{
		ID:                m.ID,
		UserID:            m.UserID,
		AccountID:         m.AccountID,
		CategoryID:        m.CategoryID,
		PayeeID:           m.PayeeID,
		PaymentMethodID:   m.PaymentMethodID,
		TransactionType:   domain.TransactionType(m.TransactionType),
		Amount:            m.Amount,
		CurrencyID:        m.CurrencyID,
		Description:       m.Description,
		Frequency:         domain.Frequency(m.Frequency),
		IntervalValue:     m.IntervalValue,
		StartDate:         m.StartDate,
		EndDate:           m.EndDate,
		NextDueDate:       m.NextDueDate,
		LastGeneratedDate: m.LastGeneratedDate,
		LastRemindedDate:  m.LastRemindedDate,
		IsActive:          m.IsActive,
		AutoCreate:        m.AutoCreate,
		RemindBeforeDays:  m.RemindBeforeDays,
		AuditFields:       domain.AuditFields{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
	}
}

func collectRecurring(rows pgx.Rows, action string) ([]domain.RecurringTransaction, error) {
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.RecurringTransaction])
	if err != nil {
		return nil, mapReadError(err, action)
	}
	out := make([]domain.RecurringTransaction, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDomainRecurring(m))
	}
	return out, nil
}

func (r *PgxRecurringRepository) FindRecurringByID(ctx context.Context, ruleID, userID int64) (*domain.RecurringTransaction, error) {
	return r.findOne(ctx, r.Pool, `SELECT `+recurringColumns+` FROM recurring_transactions WHERE id = $1 AND user_id = $2`, ruleID, userID)
}

// LockRecurringTx reads the rule FOR UPDATE so concurrent passes serialize on it.
func (r *PgxRecurringRepository) LockRecurringTx(ctx context.Context, tx pgx.Tx, ruleID, userID int64) (*domain.RecurringTransaction, error) {
	return r.findOne(ctx, tx, `SELECT `+recurringColumns+` FROM recurring_transactions WHERE id = $1 AND user_id = $2 FOR UPDATE`, ruleID, userID)
}

func (r *PgxRecurringRepository) findOne(ctx context.Context, q querier, query string, args ...any) (*domain.RecurringTransaction, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, mapReadError(err, "find recurring transaction")
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.RecurringTransaction])
	if err != nil {
		return nil, mapReadError(err, "find recurring transaction")
	}
	rule := toDomainRecurring(m)
	return &rule, nil
}

func (r *PgxRecurringRepository) ListRecurring(ctx context.Context, userID int64) ([]domain.RecurringTransaction, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT `+recurringColumns+` FROM recurring_transactions WHERE user_id = $1 ORDER BY next_due_date, id`, userID)
	if err != nil {
		return nil, mapReadError(err, "list recurring transactions")
	}
	return collectRecurring(rows, "list recurring transactions")
}

// ListActionable selects active rules that are due, inside their reminder window,
// or past their end date on today.
func (r *PgxRecurringRepository) ListActionable(ctx context.Context, userID *int64, today time.Time) ([]domain.RecurringTransaction, error) {
	query := `
		SELECT ` + recurringColumns + `
		FROM recurring_transactions
		WHERE is_active = TRUE
			AND ($1::bigint IS NULL OR user_id = $1)
			AND (
				next_due_date <= $2
				OR (remind_before_days > 0 AND next_due_date - remind_before_days <= $2)
				OR (end_date IS NOT NULL AND next_due_date > end_date)
			)
		ORDER BY next_due_date, id`
	rows, err := r.Pool.Query(ctx, query, userID, domain.DateOnly(today))
	if err != nil {
		return nil, mapReadError(err, "list actionable recurring transactions")
	}
	return collectRecurring(rows, "list actionable recurring transactions")
}

func (r *PgxRecurringRepository) CreateRecurring(ctx context.Context, rule domain.RecurringTransaction) (*domain.RecurringTransaction, error) {
	created := rule
	err := r.Pool.QueryRow(ctx, `
		INSERT INTO recurring_transactions (user_id, account_id, category_id, payee_id, payment_method_id,
			transaction_type, amount, currency_id, description, frequency, interval_value, start_date, end_date,
			next_due_date, is_active, auto_create, remind_before_days)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id, created_at, updated_at`,
		rule.UserID,
		rule.AccountID,
		rule.CategoryID,
		rule.PayeeID,
		rule.PaymentMethodID,
		string(rule.TransactionType),
		rule.Amount,
		rule.CurrencyID,
		rule.Description,
		string(rule.Frequency),
		rule.IntervalValue,
		rule.StartDate,
		rule.EndDate,
		rule.NextDueDate,
		rule.IsActive,
		rule.AutoCreate,
		rule.RemindBeforeDays,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, mapWriteError(err, "create recurring transaction")
	}
	return &created, nil
}

func (r *PgxRecurringRepository) UpdateRecurring(ctx context.Context, rule domain.RecurringTransaction) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE recurring_transactions
		SET account_id = $3, category_id = $4, payee_id = $5, payment_method_id = $6, transaction_type = $7,
			amount = $8, currency_id = $9, description = $10, frequency = $11, interval_value = $12,
			start_date = $13, end_date = $14, next_due_date = $15, is_active = $16, auto_create = $17,
			remind_before_days = $18, updated_at = NOW()
		WHERE id = $1 AND user_id = $2`,
		rule.ID,
		rule.UserID,
		rule.AccountID,
		rule.CategoryID,
		rule.PayeeID,
		rule.PaymentMethodID,
		string(rule.TransactionType),
		rule.Amount,
		rule.CurrencyID,
		rule.Description,
		string(rule.Frequency),
		rule.IntervalValue,
		rule.StartDate,
		rule.EndDate,
		rule.NextDueDate,
		rule.IsActive,
		rule.AutoCreate,
		rule.RemindBeforeDays,
	)
	if err != nil {
		return mapWriteError(err, "update recurring transaction")
	}
	return expectOne(tag)
}

// DeleteRecurring removes the rule. Generated transactions stay and lose the link.
func (r *PgxRecurringRepository) DeleteRecurring(ctx context.Context, ruleID, userID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM recurring_transactions WHERE id = $1 AND user_id = $2`, ruleID, userID)
	if err != nil {
		return mapWriteError(err, "delete recurring transaction")
	}
	return expectOne(tag)
}

func (r *PgxRecurringRepository) MarkReminded(ctx context.Context, ruleID int64, on time.Time) error {
	tag, err := r.Pool.Exec(ctx,
		`UPDATE recurring_transactions SET last_reminded_date = $2, updated_at = NOW() WHERE id = $1`,
		ruleID, domain.DateOnly(on))
	if err != nil {
		return mapWriteError(err, "record reminder")
	}
	return expectOne(tag)
}

func (r *PgxRecurringRepository) Deactivate(ctx context.Context, ruleID int64) error {
	tag, err := r.Pool.Exec(ctx,
		`UPDATE recurring_transactions SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, ruleID)
	if err != nil {
		return mapWriteError(err, "deactivate recurring transaction")
	}
	return expectOne(tag)
}

func (r *PgxRecurringRepository) SaveScheduleTx(ctx context.Context, tx pgx.Tx, rule domain.RecurringTransaction) error {
	tag, err := tx.Exec(ctx, `
		UPDATE recurring_transactions
		SET next_due_date = $2, last_generated_date = $3, is_active = $4, updated_at = NOW()
		WHERE id = $1`,
		rule.ID, rule.NextDueDate, rule.LastGeneratedDate, rule.IsActive)
	if err != nil {
		return mapWriteError(err, "save recurring schedule")
	}
	return expectOne(tag)
}

package pgsql

import (
	"context"

	"github.com/SscSPs/personal_finance_api/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_api/internal/core/ports/repositories"
	"github.com/SscSPs/personal_finance_api/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const budgetSelect = `
	SELECT b.id, b.user_id, b.category_id,
		COALESCE((SELECT array_agg(ba.account_id ORDER BY ba.account_id) FROM budget_accounts ba WHERE ba.budget_id = b.id), '{}') AS account_ids,
		b.name, b.amount, b.currency_id, b.period_type, b.start_date, b.end_date, b.rollover_unused,
		b.alert_threshold, b.is_active, b.created_at, b.updated_at
	FROM budgets b`

type PgxBudgetRepository struct {
	BaseRepository
}

func newPgxBudgetRepository(pool *pgxpool.Pool) *PgxBudgetRepository {
	return &PgxBudgetRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.BudgetRepositoryWithTx = (*PgxBudgetRepository)(nil)

func toDomainBudget(m models.Budget) domain.Budget {
	return domain.Budget{
		ID:             m.ID,
		UserID:         m.UserID,
		CategoryID:     m.CategoryID,
		AccountIDs:     m.AccountIDs,
		Name:           m.Name,
		Amount:         m.Amount,
		CurrencyID:     m.CurrencyID,
		PeriodType:     domain.BudgetPeriod(m.PeriodType),
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
		RolloverUnused: m.RolloverUnused,
		AlertThreshold: m.AlertThreshold,
		IsActive:       m.IsActive,
		AuditFields:    domain.AuditFields{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
	}
}

func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, budgetID, userID int64) (*domain.Budget, error) {
	rows, err := r.Pool.Query(ctx, budgetSelect+` WHERE b.id = $1 AND b.user_id = $2`, budgetID, userID)
	if err != nil {
		return nil, mapReadError(err, "find budget")
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Budget])
	if err != nil {
		return nil, mapReadError(err, "find budget")
	}
	b := toDomainBudget(m)
	return &b, nil
}

// Newest budgets first.
const listBudgetsQuery = budgetSelect + ` WHERE b.user_id = $1 ORDER BY b.created_at DESC, b.id DESC`

func (r *PgxBudgetRepository) ListBudgets(ctx context.Context, userID int64) ([]domain.Budget, error) {
	rows, err := r.Pool.Query(ctx, listBudgetsQuery, userID)
	if err != nil {
		return nil, mapReadError(err, "list budgets")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Budget])
	if err != nil {
		return nil, mapReadError(err, "list budgets")
	}
	out := make([]domain.Budget, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDomainBudget(m))
	}
	return out, nil
}

// SumExpenses sums the normalized amount of the user's expense transactions in
// the window. Transactions excluded from stats are skipped.
func (r *PgxBudgetRepository) SumExpenses(ctx context.Context, filter domain.SpendFilter) (decimal.Decimal, error) {
	var accountIDs []int64
	if len(filter.AccountIDs) > 0 {
		accountIDs = filter.AccountIDs
	}
	query := `
		SELECT COALESCE(SUM(amount_in_account_currency), 0)
		FROM transactions
		WHERE user_id = $1
			AND transaction_type = 'expense'
			AND is_excluded_from_stats = FALSE
			AND transaction_date BETWEEN $2 AND $3
			AND ($4::bigint IS NULL OR category_id = $4)
			AND ($5::bigint[] IS NULL OR account_id = ANY($5))`
	var sum decimal.Decimal
	err := r.Pool.QueryRow(ctx, query, filter.UserID, filter.From, filter.To, filter.CategoryID, accountIDs).Scan(&sum)
	if err != nil {
		return decimal.Zero, mapReadError(err, "sum budget expenses")
	}
	return sum, nil
}

func (r *PgxBudgetRepository) CreateBudgetTx(ctx context.Context, tx pgx.Tx, budget domain.Budget) (*domain.Budget, error) {
	created := budget
	err := tx.QueryRow(ctx, `
		INSERT INTO budgets (user_id, category_id, name, amount, currency_id, period_type, start_date, end_date,
			rollover_unused, alert_threshold, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at`,
		budget.UserID,
		budget.CategoryID,
		budget.Name,
		budget.Amount,
		budget.CurrencyID,
		string(budget.PeriodType),
		budget.StartDate,
		budget.EndDate,
		budget.RolloverUnused,
		budget.AlertThreshold,
		budget.IsActive,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, mapWriteError(err, "create budget")
	}
	if err := linkBudgetAccounts(ctx, tx, created.ID, budget.AccountIDs); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateBudgetTx replaces the budget fields and its linked accounts.
func (r *PgxBudgetRepository) UpdateBudgetTx(ctx context.Context, tx pgx.Tx, budget domain.Budget) error {
	tag, err := tx.Exec(ctx, `
		UPDATE budgets
		SET category_id = $3, name = $4, amount = $5, currency_id = $6, period_type = $7, start_date = $8,
			end_date = $9, rollover_unused = $10, alert_threshold = $11, is_active = $12, updated_at = NOW()
		WHERE id = $1 AND user_id = $2`,
		budget.ID,
		budget.UserID,
		budget.CategoryID,
		budget.Name,
		budget.Amount,
		budget.CurrencyID,
		string(budget.PeriodType),
		budget.StartDate,
		budget.EndDate,
		budget.RolloverUnused,
		budget.AlertThreshold,
		budget.IsActive,
	)
	if err != nil {
		return mapWriteError(err, "update budget")
	}
	if err := expectOne(tag); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM budget_accounts WHERE budget_id = $1`, budget.ID); err != nil {
		return mapWriteError(err, "clear budget accounts")
	}
	return linkBudgetAccounts(ctx, tx, budget.ID, budget.AccountIDs)
}

func (r *PgxBudgetRepository) DeleteBudget(ctx context.Context, budgetID, userID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM budgets WHERE id = $1 AND user_id = $2`, budgetID, userID)
	if err != nil {
		return mapWriteError(err, "delete budget")
	}
	return expectOne(tag)
}

func linkBudgetAccounts(ctx context.Context, tx pgx.Tx, budgetID int64, accountIDs []int64) error {
	if len(accountIDs) == 0 {
		return nil
	}
	_, err := tx.Exec(ctx, `
		INSERT INTO budget_accounts (budget_id, account_id)
		SELECT $1, unnest($2::bigint[])
		ON CONFLICT DO NOTHING`, budgetID, accountIDs)
	if err != nil {
		return mapWriteError(err, "link budget accounts")
	}
	return nil
}

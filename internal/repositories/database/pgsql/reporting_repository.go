package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/personal_finance_api/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_api/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// reportFilter renders the shared predicate; excluded transactions never count.
func reportFilter(f domain.StatisticsFilter) (string, []any) {
	var typeArg *string
	if f.TransactionType != nil {
		t := string(*f.TransactionType)
		typeArg = &t
	}
	where := `t.user_id = $1
		AND t.is_excluded_from_stats = FALSE
		AND ($2::date IS NULL OR t.transaction_date >= $2)
		AND ($3::date IS NULL OR t.transaction_date <= $3)
		AND ($4::bigint IS NULL OR t.account_id = $4)
		AND ($5::text IS NULL OR t.transaction_type = $5)`
	return where, []any{f.UserID, f.StartDate, f.EndDate, f.AccountID, typeArg}
}

// GetStatistics sums income and expense in account currency. Balance is left to the caller.
func (r *reportingRepository) GetStatistics(ctx context.Context, filter domain.StatisticsFilter) (*domain.Statistics, error) {
	where, args := reportFilter(filter)
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN t.transaction_type = 'income' THEN t.amount_in_account_currency END), 0) AS income,
			COALESCE(SUM(CASE WHEN t.transaction_type = 'expense' THEN t.amount_in_account_currency END), 0) AS expense
		FROM transactions t
		WHERE ` + where

	var stats domain.Statistics
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&stats.Income, &stats.Expense); err != nil {
		return nil, fmt.Errorf("error querying statistics: %w", err)
	}
	return &stats, nil
}

// GetCategoryTotals groups matching transactions by category, largest total first.
func (r *reportingRepository) GetCategoryTotals(ctx context.Context, filter domain.StatisticsFilter) ([]domain.CategoryTotal, error) {
	where, args := reportFilter(filter)
	query := `
		SELECT t.category_id, COALESCE(c.name, 'Uncategorized') AS category_name,
			SUM(t.amount_in_account_currency) AS total, COUNT(*) AS cnt
		FROM transactions t
		LEFT JOIN categories c ON c.id = t.category_id
		WHERE ` + where + `
		GROUP BY t.category_id, c.name
		ORDER BY total DESC, category_name`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying category totals: %w", err)
	}
	defer rows.Close()

	result := []domain.CategoryTotal{}
	for rows.Next() {
		var row domain.CategoryTotal
		if err := rows.Scan(&row.CategoryID, &row.CategoryName, &row.Total, &row.Count); err != nil {
			return nil, fmt.Errorf("error scanning category total row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category total rows: %w", err)
	}
	return result, nil
}

package repositories

import (
	"context"

	"github.com/SscSPs/personal_finance_api/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// BudgetReader defines read operations for budgets. Linked account ids are loaded with the budget.
type BudgetReader interface {
	FindBudgetByID(ctx context.Context, budgetID, userID int64) (*domain.Budget, error)
	ListBudgets(ctx context.Context, userID int64) ([]domain.Budget, error)
	// SumExpenses sums amount_in_account_currency of matching non-excluded expense transactions.
	SumExpenses(ctx context.Context, filter domain.SpendFilter) (decimal.Decimal, error)
}

// BudgetWriter defines write operations; linked accounts are replaced in the same transaction.
type BudgetWriter interface {
	CreateBudgetTx(ctx context.Context, tx pgx.Tx, budget domain.Budget) (*domain.Budget, error)
	UpdateBudgetTx(ctx context.Context, tx pgx.Tx, budget domain.Budget) error
	DeleteBudget(ctx context.Context, budgetID, userID int64) error
}

// BudgetRepositoryWithTx combines budget reads and writes with transaction control.
type BudgetRepositoryWithTx interface {
	BudgetReader
	BudgetWriter
	TransactionManager
}

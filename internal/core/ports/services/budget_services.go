package services

import (
	"context"

	"github.com/SscSPs/personal_finance_api/internal/core/domain"
)

// BudgetReaderSvc returns budgets together with their spend as of now.
type BudgetReaderSvc interface {
	ListBudgets(ctx context.Context, userID int64) ([]domain.BudgetWithSpend, error)
	GetBudget(ctx context.Context, budgetID, userID int64) (*domain.BudgetWithSpend, error)
}

// BudgetWriterSvc defines write operations for budgets. Linked accounts must
// belong to the budget owner.
type BudgetWriterSvc interface {
	CreateBudget(ctx context.Context, budget domain.Budget) (*domain.BudgetWithSpend, error)
	UpdateBudget(ctx context.Context, budgetID int64, budget domain.Budget) (*domain.BudgetWithSpend, error)
	DeleteBudget(ctx context.Context, budgetID, userID int64) error
}

type BudgetSvcFacade interface {
	BudgetReaderSvc
	BudgetWriterSvc
}

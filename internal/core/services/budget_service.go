package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/personal_finance_api/internal/apperrors"
	"github.com/SscSPs/personal_finance_api/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/personal_finance_api/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_api/internal/utils/budgeting"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type budgetService struct {
	BaseService
	budgetRepo   portsrepo.BudgetRepositoryWithTx
	accountRepo  portsrepo.AccountReader
	categoryRepo portsrepo.CategoryRepository
	concurrency  int
}

// BudgetServiceOption configures the budget service.
type BudgetServiceOption func(*budgetService)

// WithSpendConcurrency bounds how many spend queries a listing runs at once.
func WithSpendConcurrency(n int) BudgetServiceOption {
	return func(s *budgetService) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithBudgetCategoryRepository enables category checks on writes.
func WithBudgetCategoryRepository(repo portsrepo.CategoryRepository) BudgetServiceOption {
	return func(s *budgetService) { s.categoryRepo = repo }
}

// WithBudgetClock overrides the clock used as the spend reference date.
func WithBudgetClock(clock func() time.Time) BudgetServiceOption {
	return func(s *budgetService) { s.clock = clock }
}

func NewBudgetService(budgetRepo portsrepo.BudgetRepositoryWithTx, accountRepo portsrepo.AccountReader, options ...BudgetServiceOption) portssvc.BudgetSvcFacade {
	svc := &budgetService{
		budgetRepo:  budgetRepo,
		accountRepo: accountRepo,
		concurrency: 4,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

// ListBudgets returns every budget of the user with spend computed as of now.
// Spend sums run concurrently, bounded by the configured limit.
func (s *budgetService) ListBudgets(ctx context.Context, userID int64) ([]domain.BudgetWithSpend, error) {
	budgets, err := s.budgetRepo.ListBudgets(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budgets")
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	asOf := s.Now()
	out := make([]domain.BudgetWithSpend, len(budgets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i := range budgets {
		i := i
		g.Go(func() error {
			spend, err := s.spend(gctx, budgets[i], asOf)
			if err != nil {
				return fmt.Errorf("budget %d: %w", budgets[i].ID, err)
			}
			out[i] = domain.BudgetWithSpend{Budget: budgets[i], BudgetSpend: spend}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to compute budget spend")
		return nil, fmt.Errorf("failed to compute budget spend: %w", err)
	}
	return out, nil
}

func (s *budgetService) GetBudget(ctx context.Context, budgetID, userID int64) (*domain.BudgetWithSpend, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, budgetID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("budget not found")
		}
		s.LogError(ctx, err, "Failed to get budget", slog.Int64("budget_id", budgetID))
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	spend, err := s.spend(ctx, *budget, s.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to compute budget spend", slog.Int64("budget_id", budgetID))
		return nil, fmt.Errorf("failed to compute budget spend: %w", err)
	}
	return &domain.BudgetWithSpend{Budget: *budget, BudgetSpend: spend}, nil
}

func (s *budgetService) CreateBudget(ctx context.Context, budget domain.Budget) (*domain.BudgetWithSpend, error) {
	if err := s.validate(ctx, &budget); err != nil {
		return nil, err
	}

	tx, err := s.budgetRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = s.budgetRepo.Rollback(ctx, tx) }()

	created, err := s.budgetRepo.CreateBudgetTx(ctx, tx, budget)
	if err != nil {
		s.LogError(ctx, err, "Failed to create budget", slog.String("name", budget.Name))
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}
	if err := s.budgetRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.LogInfo(ctx, "Budget created", slog.Int64("budget_id", created.ID))
	return s.GetBudget(ctx, created.ID, budget.UserID)
}

func (s *budgetService) UpdateBudget(ctx context.Context, budgetID int64, budget domain.Budget) (*domain.BudgetWithSpend, error) {
	if _, err := s.budgetRepo.FindBudgetByID(ctx, budgetID, budget.UserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("budget not found")
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	if err := s.validate(ctx, &budget); err != nil {
		return nil, err
	}
	budget.ID = budgetID

	tx, err := s.budgetRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = s.budgetRepo.Rollback(ctx, tx) }()

	if err := s.budgetRepo.UpdateBudgetTx(ctx, tx, budget); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("budget not found")
		}
		s.LogError(ctx, err, "Failed to update budget", slog.Int64("budget_id", budgetID))
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}
	if err := s.budgetRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return s.GetBudget(ctx, budgetID, budget.UserID)
}

func (s *budgetService) DeleteBudget(ctx context.Context, budgetID, userID int64) error {
	if err := s.budgetRepo.DeleteBudget(ctx, budgetID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("budget not found")
		}
		s.LogError(ctx, err, "Failed to delete budget", slog.Int64("budget_id", budgetID))
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	return nil
}

// spend sums the budget's matching expenses. Amounts are summed in each
// transaction's account currency without conversion to the budget currency.
func (s *budgetService) spend(ctx context.Context, budget domain.Budget, asOf time.Time) (domain.BudgetSpend, error) {
	filter, ok := budgeting.SpendFilterFor(budget, asOf)
	if !ok {
		return budgeting.Evaluate(budget, decimal.Zero), nil
	}
	spent, err := s.budgetRepo.SumExpenses(ctx, filter)
	if err != nil {
		return domain.BudgetSpend{}, err
	}
	return budgeting.Evaluate(budget, spent), nil
}

func (s *budgetService) validate(ctx context.Context, budget *domain.Budget) error {
	var fields []apperrors.FieldError

	if !budget.Amount.IsPositive() {
		fields = append(fields, apperrors.FieldError{Field: "amount", Message: "must be greater than 0"})
	}
	if budget.AlertThreshold.IsNegative() || budget.AlertThreshold.GreaterThan(decimal.NewFromInt(100)) {
		fields = append(fields, apperrors.FieldError{Field: "alertThreshold", Message: "must be between 0 and 100"})
	}
	if budget.EndDate != nil && budget.EndDate.Before(budget.StartDate) {
		fields = append(fields, apperrors.FieldError{Field: "endDate", Message: "must not be before startDate"})
	}

	if len(budget.AccountIDs) > 0 {
		budget.AccountIDs = uniqueIDs(budget.AccountIDs)
		owned, err := s.accountRepo.CountOwnedAccounts(ctx, budget.UserID, budget.AccountIDs)
		if err != nil {
			return fmt.Errorf("failed to check budget accounts: %w", err)
		}
		if owned != len(budget.AccountIDs) {
			fields = append(fields, apperrors.FieldError{Field: "accountIds", Message: "one or more accounts not found"})
		}
	}
	if budget.CategoryID != nil && s.categoryRepo != nil {
		if _, err := s.categoryRepo.FindVisibleCategory(ctx, *budget.CategoryID, budget.UserID); err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("failed to check category: %w", err)
			}
			fields = append(fields, apperrors.FieldError{Field: "categoryId", Message: "category not found"})
		}
	}

	if len(fields) > 0 {
		return &apperrors.ValidationError{Fields: fields}
	}
	return nil
}

package services

import (
	"context"

	"github.com/SscSPs/personal_finance_api/internal/core/domain"
)

// Every method is scoped by the calling user. Resources owned by somebody else
// are reported as apperrors.ErrNotFound.

type CurrencySvc interface {
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	GetAccount(ctx context.Context, accountID, userID int64) (*domain.Account, error)
	ListAccounts(ctx context.Context, userID int64) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	CreateAccount(ctx context.Context, account domain.Account) (*domain.Account, error)
	// UpdateAccount replaces the editable fields of an account.
	UpdateAccount(ctx context.Context, accountID int64, account domain.Account) (*domain.Account, error)
	DeleteAccount(ctx context.Context, accountID, userID int64) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}

type CategorySvc interface {
	ListCategories(ctx context.Context, userID int64, kind *domain.CategoryKind) ([]domain.Category, error)
	GetCategory(ctx context.Context, categoryID, userID int64) (*domain.Category, error)
	CreateCategory(ctx context.Context, category domain.Category) (*domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID int64, category domain.Category) (*domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID, userID int64) error
}

type TagSvc interface {
	ListTags(ctx context.Context, userID int64) ([]domain.Tag, error)
	GetTag(ctx context.Context, tagID, userID int64) (*domain.Tag, error)
	CreateTag(ctx context.Context, tag domain.Tag) (*domain.Tag, error)
	UpdateTag(ctx context.Context, tagID int64, tag domain.Tag) (*domain.Tag, error)
	DeleteTag(ctx context.Context, tagID, userID int64) error
}

type PayeeSvc interface {
	ListPayees(ctx context.Context, userID int64) ([]domain.Payee, error)
	GetPayee(ctx context.Context, payeeID, userID int64) (*domain.Payee, error)
	CreatePayee(ctx context.Context, payee domain.Payee) (*domain.Payee, error)
	UpdatePayee(ctx context.Context, payeeID int64, payee domain.Payee) (*domain.Payee, error)
	DeletePayee(ctx context.Context, payeeID, userID int64) error
}

type PaymentMethodSvc interface {
	ListPaymentMethods(ctx context.Context, userID int64) ([]domain.PaymentMethod, error)
	GetPaymentMethod(ctx context.Context, paymentMethodID, userID int64) (*domain.PaymentMethod, error)
	CreatePaymentMethod(ctx context.Context, method domain.PaymentMethod) (*domain.PaymentMethod, error)
	UpdatePaymentMethod(ctx context.Context, paymentMethodID int64, method domain.PaymentMethod) (*domain.PaymentMethod, error)
	DeletePaymentMethod(ctx context.Context, paymentMethodID, userID int64) error
}

type GoalSvc interface {
	ListGoals(ctx context.Context, userID int64) ([]domain.Goal, error)
	GetGoal(ctx context.Context, goalID, userID int64) (*domain.Goal, error)
	CreateGoal(ctx context.Context, goal domain.Goal) (*domain.Goal, error)
	UpdateGoal(ctx context.Context, goalID int64, goal domain.Goal) (*domain.Goal, error)
	DeleteGoal(ctx context.Context, goalID, userID int64) error
	// AddContribution records a contribution and advances the goal's progress.
	AddContribution(ctx context.Context, userID int64, contribution domain.GoalContribution) (*domain.Goal, error)
}

type ReportingSvc interface {
	GetStatistics(ctx context.Context, filter domain.StatisticsFilter) (*domain.Statistics, error)
	GetCategoryTotals(ctx context.Context, filter domain.StatisticsFilter) ([]domain.CategoryTotal, error)
}

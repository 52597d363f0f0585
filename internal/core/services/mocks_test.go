package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/personal_finance_api/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- transaction control shared by the *WithTx mocks ---

type mockTxManager struct {
	mock.Mock
}

func (m *mockTxManager) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *mockTxManager) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *mockTxManager) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

// --- users ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) LinkProvider(ctx context.Context, userID int64, provider domain.AuthProvider, providerUserID string, emailVerified bool) error {
	return m.Called(ctx, userID, provider, providerUserID, emailVerified).Error(0)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, userID int64, update domain.ProfileUpdate) (*domain.User, error) {
	args := m.Called(ctx, userID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- currencies ---

type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

// --- accounts ---

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID, userID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, userID int64) ([]domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) CountOwnedAccounts(ctx context.Context, userID int64, accountIDs []int64) (int, error) {
	args := m.Called(ctx, userID, accountIDs)
	return args.Int(0), args.Error(1)
}

func (m *MockAccountRepository) CreateAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, accountID, userID int64) error {
	return m.Called(ctx, accountID, userID).Error(0)
}

func (m *MockAccountRepository) FindAccountByIDTx(ctx context.Context, tx pgx.Tx, accountID, userID int64) (*domain.Account, error) {
	args := m.Called(ctx, tx, accountID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

// --- categories ---

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, userID int64, kind *domain.CategoryKind) ([]domain.Category, error) {
	args := m.Called(ctx, userID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindVisibleCategory(ctx context.Context, categoryID, userID int64) (*domain.Category, error) {
	args := m.Called(ctx, categoryID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) CategoryVisibleTx(ctx context.Context, tx pgx.Tx, categoryID, userID int64) (bool, error) {
	args := m.Called(ctx, tx, categoryID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) CreateCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, categoryID, userID int64) error {
	return m.Called(ctx, categoryID, userID).Error(0)
}

// --- tags ---

type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) ListTags(ctx context.Context, userID int64) ([]domain.Tag, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tag), args.Error(1)
}

func (m *MockTagRepository) FindTagByID(ctx context.Context, tagID, userID int64) (*domain.Tag, error) {
	args := m.Called(ctx, tagID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tag), args.Error(1)
}

func (m *MockTagRepository) CountOwnedTags(ctx context.Context, userID int64, tagIDs []int64) (int, error) {
	args := m.Called(ctx, userID, tagIDs)
	return args.Int(0), args.Error(1)
}

func (m *MockTagRepository) CreateTag(ctx context.Context, tag domain.Tag) (*domain.Tag, error) {
	args := m.Called(ctx, tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tag), args.Error(1)
}

func (m *MockTagRepository) UpdateTag(ctx context.Context, tag domain.Tag) error {
	return m.Called(ctx, tag).Error(0)
}

func (m *MockTagRepository) DeleteTag(ctx context.Context, tagID, userID int64) error {
	return m.Called(ctx, tagID, userID).Error(0)
}

// --- transactions ---

type MockTransactionRepository struct {
	mockTxManager
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID, userID int64) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), args.Get(1).(int64), args.Error(2)
}

func (m *MockTransactionRepository) CreateTransactionTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) (*domain.Transaction, error) {
	args := m.Called(ctx, tx, txn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransactionTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction, replaceTags bool) error {
	return m.Called(ctx, tx, txn, replaceTags).Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID, userID int64) error {
	return m.Called(ctx, transactionID, userID).Error(0)
}

func (m *MockTransactionRepository) CreateGeneratedTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) (bool, error) {
	args := m.Called(ctx, tx, txn)
	return args.Bool(0), args.Error(1)
}

// --- budgets ---

type MockBudgetRepository struct {
	mockTxManager
}

func (m *MockBudgetRepository) FindBudgetByID(ctx context.Context, budgetID, userID int64) (*domain.Budget, error) {
	args := m.Called(ctx, budgetID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) ListBudgets(ctx context.Context, userID int64) ([]domain.Budget, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) SumExpenses(ctx context.Context, filter domain.SpendFilter) (decimal.Decimal, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockBudgetRepository) CreateBudgetTx(ctx context.Context, tx pgx.Tx, budget domain.Budget) (*domain.Budget, error) {
	args := m.Called(ctx, tx, budget)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) UpdateBudgetTx(ctx context.Context, tx pgx.Tx, budget domain.Budget) error {
	return m.Called(ctx, tx, budget).Error(0)
}

func (m *MockBudgetRepository) DeleteBudget(ctx context.Context, budgetID, userID int64) error {
	return m.Called(ctx, budgetID, userID).Error(0)
}

// --- recurring rules ---

type MockRecurringRepository struct {
	mockTxManager
}

func (m *MockRecurringRepository) FindRecurringByID(ctx context.Context, ruleID, userID int64) (*domain.RecurringTransaction, error) {
	args := m.Called(ctx, ruleID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecurringTransaction), args.Error(1)
}

func (m *MockRecurringRepository) ListRecurring(ctx context.Context, userID int64) ([]domain.RecurringTransaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecurringTransaction), args.Error(1)
}

func (m *MockRecurringRepository) ListActionable(ctx context.Context, userID *int64, today time.Time) ([]domain.RecurringTransaction, error) {
	args := m.Called(ctx, userID, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecurringTransaction), args.Error(1)
}

func (m *MockRecurringRepository) CreateRecurring(ctx context.Context, rule domain.RecurringTransaction) (*domain.RecurringTransaction, error) {
	args := m.Called(ctx, rule)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecurringTransaction), args.Error(1)
}

func (m *MockRecurringRepository) UpdateRecurring(ctx context.Context, rule domain.RecurringTransaction) error {
	return m.Called(ctx, rule).Error(0)
}

func (m *MockRecurringRepository) DeleteRecurring(ctx context.Context, ruleID, userID int64) error {
	return m.Called(ctx, ruleID, userID).Error(0)
}

func (m *MockRecurringRepository) MarkReminded(ctx context.Context, ruleID int64, on time.Time) error {
	return m.Called(ctx, ruleID, on).Error(0)
}

func (m *MockRecurringRepository) Deactivate(ctx context.Context, ruleID int64) error {
	return m.Called(ctx, ruleID).Error(0)
}

func (m *MockRecurringRepository) LockRecurringTx(ctx context.Context, tx pgx.Tx, ruleID, userID int64) (*domain.RecurringTransaction, error) {
	args := m.Called(ctx, tx, ruleID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecurringTransaction), args.Error(1)
}

func (m *MockRecurringRepository) SaveScheduleTx(ctx context.Context, tx pgx.Tx, rule domain.RecurringTransaction) error {
	return m.Called(ctx, tx, rule).Error(0)
}

// --- goals ---

type MockGoalRepository struct {
	mockTxManager
}

func (m *MockGoalRepository) ListGoals(ctx context.Context, userID int64) ([]domain.Goal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) FindGoalByID(ctx context.Context, goalID, userID int64) (*domain.Goal, error) {
	args := m.Called(ctx, goalID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) CreateGoal(ctx context.Context, goal domain.Goal) (*domain.Goal, error) {
	args := m.Called(ctx, goal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) UpdateGoal(ctx context.Context, goal domain.Goal) error {
	return m.Called(ctx, goal).Error(0)
}

func (m *MockGoalRepository) DeleteGoal(ctx context.Context, goalID, userID int64) error {
	return m.Called(ctx, goalID, userID).Error(0)
}

func (m *MockGoalRepository) LockGoalTx(ctx context.Context, tx pgx.Tx, goalID, userID int64) (*domain.Goal, error) {
	args := m.Called(ctx, tx, goalID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) AddContributionTx(ctx context.Context, tx pgx.Tx, contribution domain.GoalContribution) (*domain.GoalContribution, error) {
	args := m.Called(ctx, tx, contribution)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GoalContribution), args.Error(1)
}

func (m *MockGoalRepository) SaveProgressTx(ctx context.Context, tx pgx.Tx, goal domain.Goal) error {
	return m.Called(ctx, tx, goal).Error(0)
}

// --- notifications ---

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) CreateNotification(ctx context.Context, n domain.Notification) (*domain.Notification, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) ListNotifications(ctx context.Context, filter domain.NotificationFilter) ([]domain.Notification, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, notificationID, userID int64, at time.Time) (*domain.Notification, error) {
	args := m.Called(ctx, notificationID, userID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, userID int64, at time.Time) (int64, error) {
	args := m.Called(ctx, userID, at)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) MarkSent(ctx context.Context, notificationID int64) error {
	return m.Called(ctx, notificationID).Error(0)
}

// MockSink records notifications handed to it.
type MockSink struct {
	mock.Mock
}

func (m *MockSink) Notify(ctx context.Context, n domain.Notification) error {
	return m.Called(ctx, n).Error(0)
}

// --- helpers ---

func date(y int, mo time.Month, d int) time.Time {
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, mo time.Month, d int) *time.Time {
	t := date(y, mo, d)
	return &t
}

func int64Ptr(v int64) *int64 { return &v }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

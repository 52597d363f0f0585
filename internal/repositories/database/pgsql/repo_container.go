package pgsql

import (
	portsrepo "github.com/SscSPs/personal_finance_api/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:          newPgxUserRepository(dbPool),
		CurrencyRepo:      newPgxCurrencyRepository(dbPool),
		AccountRepo:       newPgxAccountRepository(dbPool),
		CategoryRepo:      newPgxCategoryRepository(dbPool),
		TagRepo:           newPgxTagRepository(dbPool),
		PayeeRepo:         newPgxPayeeRepository(dbPool),
		PaymentMethodRepo: newPgxPaymentMethodRepository(dbPool),
		TransactionRepo:   newPgxTransactionRepository(dbPool),
		BudgetRepo:        newPgxBudgetRepository(dbPool),
		RecurringRepo:     newPgxRecurringRepository(dbPool),
		GoalRepo:          newPgxGoalRepository(dbPool),
		NotificationRepo:  newPgxNotificationRepository(dbPool),
		ReportingRepo:     newReportingRepository(dbPool),
	}
}

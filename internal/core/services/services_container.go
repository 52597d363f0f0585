package services

import (
	"log/slog"

	portsrepo "github.com/SscSPs/personal_finance_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/personal_finance_api/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_api/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// Publishers receive every stored notification (e.g. the AMQP publisher).
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, publishers ...portssvc.NotificationSink) (*portssvc.ServiceContainer, error) {
	policy, err := GetReminderPolicy(cfg.ReminderDedupStrategy)
	if err != nil {
		return nil, err
	}

	container := &portssvc.ServiceContainer{}

	notificationOpts := make([]NotificationServiceOption, 0, len(publishers))
	for _, p := range publishers {
		notificationOpts = append(notificationOpts, WithPublisher(p))
	}
	container.Notification = NewNotificationService(repos.NotificationRepo, notificationOpts...)

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg)
	container.GoogleOAuth = NewGoogleOAuthHandlerService(cfg)
	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.Account = NewAccountService(repos.AccountRepo, WithCurrencyRepository(repos.CurrencyRepo))
	container.Category = NewCategoryService(repos.CategoryRepo)
	container.Tag = NewTagService(repos.TagRepo)
	container.Payee = NewPayeeService(repos.PayeeRepo, repos.CategoryRepo)
	container.PaymentMethod = NewPaymentMethodService(repos.PaymentMethodRepo)

	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.AccountRepo,
		WithTransactionCategoryRepository(repos.CategoryRepo),
		WithTransactionPayeeRepository(repos.PayeeRepo),
		WithTransactionPaymentMethodRepository(repos.PaymentMethodRepo),
		WithTransactionTagRepository(repos.TagRepo),
	)

	container.Budget = NewBudgetService(repos.BudgetRepo, repos.AccountRepo,
		WithSpendConcurrency(cfg.BudgetSpendConcurrency),
		WithBudgetCategoryRepository(repos.CategoryRepo),
	)

	container.Recurring = NewRecurringService(repos.RecurringRepo, repos.AccountRepo, repos.CategoryRepo, repos.TransactionRepo,
		WithNotificationSink(container.Notification),
		WithReminderPolicy(policy),
		WithMaxCatchUp(cfg.RecurringMaxCatchUp),
		WithProcessOnList(cfg.RecurringProcessOnList),
	)

	container.Goal = NewGoalService(repos.GoalRepo, repos.AccountRepo, WithGoalNotificationSink(container.Notification))
	container.Reporting = NewReportingService(repos.ReportingRepo)

	slog.Debug("Service container initialised",
		slog.String("reminder_policy", cfg.ReminderDedupStrategy),
		slog.Int("publishers", len(publishers)))
	return container, nil
}

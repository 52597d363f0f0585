package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// It is built once at startup and handed to the service container.
type RepositoryProvider struct {
	UserRepo          UserRepository
	CurrencyRepo      CurrencyRepository
	AccountRepo       AccountRepositoryFacade
	CategoryRepo      CategoryRepository
	TagRepo           TagRepository
	PayeeRepo         PayeeRepository
	PaymentMethodRepo PaymentMethodRepository
	TransactionRepo   TransactionRepositoryWithTx
	BudgetRepo        BudgetRepositoryWithTx
	RecurringRepo     RecurringRepositoryWithTx
	GoalRepo          GoalRepositoryWithTx
	NotificationRepo  NotificationRepository
	ReportingRepo     ReportingRepository
}

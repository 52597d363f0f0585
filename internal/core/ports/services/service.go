package services

// ServiceContainer holds instances of all the application services.
// It is built once at startup and handed to the HTTP handlers and the CLI.
type ServiceContainer struct {
	User          UserSvcFacade
	Token         TokenSvcFacade
	GoogleOAuth   GoogleOAuthHandlerSvcFacade
	Currency      CurrencySvc
	Account       AccountSvcFacade
	Category      CategorySvc
	Tag           TagSvc
	Payee         PayeeSvc
	PaymentMethod PaymentMethodSvc
	Transaction   TransactionSvcFacade
	Budget        BudgetSvcFacade
	Recurring     RecurringSvcFacade
	Goal          GoalSvc
	Notification  NotificationSvc
	Reporting     ReportingSvc
}

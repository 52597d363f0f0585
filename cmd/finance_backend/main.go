package main

// @title Personal Finance API
// @version 1.0
// @description Accounts, transactions, budgets, recurring transactions and goals for personal finance tracking.

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	Execute()
}

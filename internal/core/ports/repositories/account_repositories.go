package repositories

import (
	"context"

	"github.com/SscSPs/personal_finance_api/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// AccountReader defines read operations for account data.
// Every read is scoped by owner; other users' accounts are ErrNotFound.
type AccountReader interface {
	// FindAccountByID returns the account with its currency joined.
	FindAccountByID(ctx context.Context, accountID, userID int64) (*domain.Account, error)
	ListAccounts(ctx context.Context, userID int64) ([]domain.Account, error)
	// CountOwnedAccounts returns how many of accountIDs belong to the user.
	CountOwnedAccounts(ctx context.Context, userID int64, accountIDs []int64) (int, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	CreateAccount(ctx context.Context, account domain.Account) (*domain.Account, error)
	UpdateAccount(ctx context.Context, account domain.Account) error
	DeleteAccount(ctx context.Context, accountID, userID int64) error
}

// AccountTransactionSupport exposes account reads inside a caller's transaction.
type AccountTransactionSupport interface {
	FindAccountByIDTx(ctx context.Context, tx pgx.Tx, accountID, userID int64) (*domain.Account, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}

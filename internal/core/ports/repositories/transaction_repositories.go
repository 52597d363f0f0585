package repositories

import (
	"context"

	"github.com/SscSPs/personal_finance_api/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// TransactionReader defines read operations for transactions.
type TransactionReader interface {
	FindTransactionByID(ctx context.Context, transactionID, userID int64) (*domain.Transaction, error)
	// ListTransactions returns one page plus the total number of matching rows.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, int64, error)
}

// TransactionWriter defines write operations; tag association is written in the same transaction.
type TransactionWriter interface {
	CreateTransactionTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) (*domain.Transaction, error)
	UpdateTransactionTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction, replaceTags bool) error
	DeleteTransaction(ctx context.Context, transactionID, userID int64) error
	// CreateGeneratedTx inserts a rule-generated transaction. It reports false when
	// the rule already has a transaction on that date.
	CreateGeneratedTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) (bool, error)
}

// TransactionRepositoryWithTx combines transaction reads and writes with transaction control.
type TransactionRepositoryWithTx interface {
	TransactionReader
	TransactionWriter
	TransactionManager
}

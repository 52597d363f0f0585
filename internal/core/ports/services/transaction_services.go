package services

import (
	"context"

	"github.com/SscSPs/personal_finance_api/internal/core/domain"
)

// TransactionReaderSvc defines read operations for transactions.
type TransactionReaderSvc interface {
	GetTransaction(ctx context.Context, transactionID, userID int64) (*domain.Transaction, error)
	// ListTransactions returns one page of matching transactions and the total match count.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, int64, error)
}

// TransactionWriterSvc defines write operations for transactions. Amounts are
// normalized to the account currency on every write.
type TransactionWriterSvc interface {
	CreateTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)
	// UpdateTransaction replaces the transaction. Tags are replaced only when
	// txn.TagIDs is non-nil.
	UpdateTransaction(ctx context.Context, transactionID int64, txn domain.Transaction) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID, userID int64) error
}

type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}

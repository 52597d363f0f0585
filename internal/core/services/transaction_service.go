package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/personal_finance_api/internal/apperrors"
	"github.com/SscSPs/personal_finance_api/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/personal_finance_api/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_api/internal/utils"
)

type transactionService struct {
	BaseService
	txnRepo           portsrepo.TransactionRepositoryWithTx
	accountRepo       portsrepo.AccountReader
	categoryRepo      portsrepo.CategoryRepository
	payeeRepo         portsrepo.PayeeRepository
	paymentMethodRepo portsrepo.PaymentMethodRepository
	tagRepo           portsrepo.TagRepository
}

// TransactionServiceOption configures optional reference checks of the transaction service.
type TransactionServiceOption func(*transactionService)

func WithTransactionCategoryRepository(repo portsrepo.CategoryRepository) TransactionServiceOption {
	return func(s *transactionService) { s.categoryRepo = repo }
}

func WithTransactionPayeeRepository(repo portsrepo.PayeeRepository) TransactionServiceOption {
	return func(s *transactionService) { s.payeeRepo = repo }
}

func WithTransactionPaymentMethodRepository(repo portsrepo.PaymentMethodRepository) TransactionServiceOption {
	return func(s *transactionService) { s.paymentMethodRepo = repo }
}

func WithTransactionTagRepository(repo portsrepo.TagRepository) TransactionServiceOption {
	return func(s *transactionService) { s.tagRepo = repo }
}

// NewTransactionService creates the transaction service. Reference checks for
// categories, payees, payment methods and tags run only when the matching
// repository is supplied.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryWithTx, accountRepo portsrepo.AccountReader, options ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionService{txnRepo: txnRepo, accountRepo: accountRepo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) GetTransaction(ctx context.Context, transactionID, userID int64) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("transaction not found")
		}
		s.LogError(ctx, err, "Failed to get transaction", slog.Int64("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, int64, error) {
	txns, total, err := s.txnRepo.ListTransactions(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, total, nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	if err := s.prepare(ctx, &txn); err != nil {
		return nil, err
	}

	tx, err := s.txnRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = s.txnRepo.Rollback(ctx, tx) }()

	created, err := s.txnRepo.CreateTransactionTx(ctx, tx, txn)
	if err != nil {
		s.LogError(ctx, err, "Failed to create transaction", slog.Int64("account_id", txn.AccountID))
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	if err := s.txnRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created",
		slog.Int64("transaction_id", created.ID),
		slog.String("amount_in_account_currency", created.AmountInAccountCurrency.String()))
	return created, nil
}

// UpdateTransaction replaces the transaction and always re-normalizes its amount.
// The link to a generating recurring rule is kept.
func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID int64, txn domain.Transaction) (*domain.Transaction, error) {
	existing, err := s.GetTransaction(ctx, transactionID, txn.UserID)
	if err != nil {
		return nil, err
	}
	txn.ID = transactionID
	txn.IsRecurring = existing.IsRecurring
	txn.RecurringTransactionID = existing.RecurringTransactionID

	if err := s.prepare(ctx, &txn); err != nil {
		return nil, err
	}

	tx, err := s.txnRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = s.txnRepo.Rollback(ctx, tx) }()

	if err := s.txnRepo.UpdateTransactionTx(ctx, tx, txn, txn.TagIDs != nil); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("transaction not found")
		}
		s.LogError(ctx, err, "Failed to update transaction", slog.Int64("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}
	if err := s.txnRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return s.GetTransaction(ctx, transactionID, txn.UserID)
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID, userID int64) error {
	if err := s.txnRepo.DeleteTransaction(ctx, transactionID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("transaction not found")
		}
		s.LogError(ctx, err, "Failed to delete transaction", slog.Int64("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}

// prepare resolves the owning account, checks references and normalizes the amount.
func (s *transactionService) prepare(ctx context.Context, txn *domain.Transaction) error {
	account, err := s.accountRepo.FindAccountByID(ctx, txn.AccountID, txn.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("account not found")
		}
		s.LogError(ctx, err, "Failed to load account for transaction", slog.Int64("account_id", txn.AccountID))
		return fmt.Errorf("failed to load account: %w", err)
	}
	if txn.CurrencyID == 0 {
		txn.CurrencyID = account.CurrencyID
	}
	if txn.TagIDs != nil {
		txn.TagIDs = uniqueIDs(txn.TagIDs)
	}
	if err := s.checkReferences(ctx, *txn); err != nil {
		return err
	}
	utils.NormalizeTransaction(txn, *account)
	return nil
}

func (s *transactionService) checkReferences(ctx context.Context, txn domain.Transaction) error {
	var fields []apperrors.FieldError

	if txn.CategoryID != nil && s.categoryRepo != nil {
		if _, err := s.categoryRepo.FindVisibleCategory(ctx, *txn.CategoryID, txn.UserID); err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("failed to check category: %w", err)
			}
			fields = append(fields, apperrors.FieldError{Field: "categoryId", Message: "category not found"})
		}
	}
	if txn.PayeeID != nil && s.payeeRepo != nil {
		if _, err := s.payeeRepo.FindPayeeByID(ctx, *txn.PayeeID, txn.UserID); err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("failed to check payee: %w", err)
			}
			fields = append(fields, apperrors.FieldError{Field: "payeeId", Message: "payee not found"})
		}
	}
	if txn.PaymentMethodID != nil && s.paymentMethodRepo != nil {
		if _, err := s.paymentMethodRepo.FindVisiblePaymentMethod(ctx, *txn.PaymentMethodID, txn.UserID); err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("failed to check payment method: %w", err)
			}
			fields = append(fields, apperrors.FieldError{Field: "paymentMethodId", Message: "payment method not found"})
		}
	}
	if len(txn.TagIDs) > 0 && s.tagRepo != nil {
		owned, err := s.tagRepo.CountOwnedTags(ctx, txn.UserID, txn.TagIDs)
		if err != nil {
			return fmt.Errorf("failed to check tags: %w", err)
		}
		if owned != len(txn.TagIDs) {
			fields = append(fields, apperrors.FieldError{Field: "tagIds", Message: "one or more tags not found"})
		}
	}

	if len(fields) > 0 {
		return &apperrors.ValidationError{Fields: fields}
	}
	return nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

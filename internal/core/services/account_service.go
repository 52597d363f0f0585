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
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo  portsrepo.AccountRepositoryFacade
	currencyRepo portsrepo.CurrencyRepository
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountService)

// WithCurrencyRepository enables currency validation on writes.
func WithCurrencyRepository(repo portsrepo.CurrencyRepository) AccountServiceOption {
	return func(s *accountService) {
		s.currencyRepo = repo
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(repo portsrepo.AccountRepositoryFacade, options ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{accountRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) GetAccount(ctx context.Context, accountID, userID int64) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("account not found")
		}
		s.LogError(ctx, err, "Failed to get account", slog.Int64("account_id", accountID))
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, userID int64) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func (s *accountService) CreateAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	if err := s.checkCurrency(ctx, account.CurrencyID); err != nil {
		return nil, err
	}

	account.CurrentBalance = account.InitialBalance
	created, err := s.accountRepo.CreateAccount(ctx, account)
	if err != nil {
		s.LogError(ctx, err, "Failed to create account", slog.String("name", account.Name))
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.LogInfo(ctx, "Account created", slog.Int64("account_id", created.ID))
	return s.GetAccount(ctx, created.ID, account.UserID)
}

// UpdateAccount replaces the editable fields. A changed initial balance shifts
// the current balance by the same delta.
func (s *accountService) UpdateAccount(ctx context.Context, accountID int64, account domain.Account) (*domain.Account, error) {
	if _, err := s.GetAccount(ctx, accountID, account.UserID); err != nil {
		return nil, err
	}
	if err := s.checkCurrency(ctx, account.CurrencyID); err != nil {
		return nil, err
	}

	account.ID = accountID
	if err := s.accountRepo.UpdateAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("account not found")
		}
		s.LogError(ctx, err, "Failed to update account", slog.Int64("account_id", accountID))
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	return s.GetAccount(ctx, accountID, account.UserID)
}

func (s *accountService) DeleteAccount(ctx context.Context, accountID, userID int64) error {
	if err := s.accountRepo.DeleteAccount(ctx, accountID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("account not found")
		}
		s.LogError(ctx, err, "Failed to delete account", slog.Int64("account_id", accountID))
		return fmt.Errorf("failed to delete account: %w", err)
	}
	s.LogInfo(ctx, "Account deleted", slog.Int64("account_id", accountID))
	return nil
}

func (s *accountService) checkCurrency(ctx context.Context, currencyID int64) error {
	if s.currencyRepo == nil {
		return nil
	}
	currency, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewFieldError("currencyId", "unknown currency")
		}
		s.LogError(ctx, err, "Failed to validate currency", slog.Int64("currency_id", currencyID))
		return fmt.Errorf("failed to validate currency: %w", err)
	}
	if !currency.IsActive {
		return apperrors.NewFieldError("currencyId", "currency is not active")
	}
	return nil
}

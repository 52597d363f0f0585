package repositories

import (
	"context"

	"github.com/SscSPs/personal_finance_api/internal/core/domain"
)

// CurrencyRepository reads reference currency data.
type CurrencyRepository interface {
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
	FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error)
}

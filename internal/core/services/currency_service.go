package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/personal_finance_api/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/personal_finance_api/internal/core/ports/services"
)

type currencyService struct {
	BaseService
	repo portsrepo.CurrencyRepository
}

func NewCurrencyService(repo portsrepo.CurrencyRepository) portssvc.CurrencySvc {
	return &currencyService{repo: repo}
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.repo.ListCurrencies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currencies")
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	return currencies, nil
}

package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/personal_finance_api/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/personal_finance_api/internal/core/ports/services"
)

// reportingService implements the ReportingSvc interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service
func NewReportingService(repo portsrepo.ReportingRepository) portssvc.ReportingSvc {
	return &reportingService{reportingRepo: repo}
}

var _ portssvc.ReportingSvc = (*reportingService)(nil)

// GetStatistics sums income and expense over non-excluded transactions in
// account currency. Balance is income minus expense.
func (s *reportingService) GetStatistics(ctx context.Context, filter domain.StatisticsFilter) (*domain.Statistics, error) {
	filter.TransactionType = nil
	stats, err := s.reportingRepo.GetStatistics(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to get statistics")
		return nil, fmt.Errorf("failed to get statistics: %w", err)
	}
	stats.Balance = stats.Income.Sub(stats.Expense)
	return stats, nil
}

// GetCategoryTotals groups totals by category. Expenses are reported unless
// another transaction type is requested.
func (s *reportingService) GetCategoryTotals(ctx context.Context, filter domain.StatisticsFilter) ([]domain.CategoryTotal, error) {
	if filter.TransactionType == nil {
		expense := domain.TransactionExpense
		filter.TransactionType = &expense
	}
	rows, err := s.reportingRepo.GetCategoryTotals(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to get category totals")
		return nil, fmt.Errorf("failed to get category totals: %w", err)
	}
	return rows, nil
}

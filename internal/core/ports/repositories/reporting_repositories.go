package repositories

import (
	"context"

	"github.com/SscSPs/personal_finance_api/internal/core/domain"
)

// ReportingRepository computes aggregate figures over transactions.
type ReportingRepository interface {
	GetStatistics(ctx context.Context, filter domain.StatisticsFilter) (*domain.Statistics, error)
	GetCategoryTotals(ctx context.Context, filter domain.StatisticsFilter) ([]domain.CategoryTotal, error)
}

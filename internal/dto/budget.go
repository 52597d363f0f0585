package dto

import (
	"time"

	"github.com/SscSPs/personal_finance_api/internal/apperrors"
	"github.com/SscSPs/personal_finance_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultAlertThreshold is the alert percentage used when none is given.
var DefaultAlertThreshold = decimal.NewFromInt(80)

// BudgetRequest is used for both create and full update of a budget.
type BudgetRequest struct {
	Name           string           `json:"name" binding:"required,max=255"`
	CategoryID     *int64           `json:"categoryId" binding:"omitempty,gt=0"`
	AccountIDs     []int64          `json:"accountIds" binding:"omitempty,dive,gt=0"`
	Amount         *decimal.Decimal `json:"amount" binding:"required,gt=0"`
	CurrencyID     int64            `json:"currencyId" binding:"required,gt=0"`
	PeriodType     string           `json:"periodType" binding:"required,oneof=daily weekly monthly yearly custom"`
	StartDate      string           `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate        *string          `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	RolloverUnused *bool            `json:"rolloverUnused"`
	AlertThreshold *decimal.Decimal `json:"alertThreshold" binding:"omitempty,min=0,max=100"`
	IsActive       *bool            `json:"isActive"`
}

func (r BudgetRequest) ToDomain(userID int64) (domain.Budget, error) {
	start, err := parseDate("startDate", r.StartDate)
	if err != nil {
		return domain.Budget{}, err
	}
	end, err := parseOptionalDate("endDate", r.EndDate)
	if err != nil {
		return domain.Budget{}, err
	}
	if end != nil && end.Before(start) {
		return domain.Budget{}, apperrors.NewFieldError("endDate", "must not be before startDate")
	}
	accountIDs := r.AccountIDs
	if accountIDs == nil {
		accountIDs = []int64{}
	}
	return domain.Budget{
		UserID:         userID,
		CategoryID:     r.CategoryID,
		AccountIDs:     accountIDs,
		Name:           r.Name,
		Amount:         decimalOr(r.Amount, decimal.Zero),
		CurrencyID:     r.CurrencyID,
		PeriodType:     domain.BudgetPeriod(r.PeriodType),
		StartDate:      start,
		EndDate:        end,
		RolloverUnused: boolOr(r.RolloverUnused, false),
		AlertThreshold: decimalOr(r.AlertThreshold, DefaultAlertThreshold),
		IsActive:       boolOr(r.IsActive, true),
	}, nil
}

type BudgetResponse struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	CategoryID     *int64          `json:"categoryId"`
	AccountIDs     []int64         `json:"accountIds"`
	Amount         decimal.Decimal `json:"amount"`
	CurrencyID     int64           `json:"currencyId"`
	PeriodType     string          `json:"periodType"`
	StartDate      string          `json:"startDate"`
	EndDate        *string         `json:"endDate"`
	RolloverUnused bool            `json:"rolloverUnused"`
	AlertThreshold decimal.Decimal `json:"alertThreshold"`
	IsActive       bool            `json:"isActive"`
	Spent          decimal.Decimal `json:"spent"`
	Percentage     decimal.Decimal `json:"percentage"`
	AlertTriggered bool            `json:"alertTriggered"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

type ListBudgetsResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

func ToBudgetResponse(b *domain.BudgetWithSpend) BudgetResponse {
	accountIDs := b.AccountIDs
	if accountIDs == nil {
		accountIDs = []int64{}
	}
	return BudgetResponse{
		ID:             b.ID,
		Name:           b.Name,
		CategoryID:     b.CategoryID,
		AccountIDs:     accountIDs,
		Amount:         b.Amount,
		CurrencyID:     b.CurrencyID,
		PeriodType:     string(b.PeriodType),
		StartDate:      domain.FormatDate(b.StartDate),
		EndDate:        domain.FormatDatePtr(b.EndDate),
		RolloverUnused: b.RolloverUnused,
		AlertThreshold: b.AlertThreshold,
		IsActive:       b.IsActive,
		Spent:          b.Spent,
		Percentage:     b.Percentage,
		AlertTriggered: b.AlertTriggered,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func ToListBudgetsResponse(budgets []domain.BudgetWithSpend) ListBudgetsResponse {
	out := make([]BudgetResponse, len(budgets))
	for i := range budgets {
		out[i] = ToBudgetResponse(&budgets[i])
	}
	return ListBudgetsResponse{Budgets: out}
}

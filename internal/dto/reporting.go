package dto

import (
	"github.com/SscSPs/personal_finance_api/internal/apperrors"
	"github.com/SscSPs/personal_finance_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StatisticsParams are the query parameters shared by the reports.
type StatisticsParams struct {
	StartDate       string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate         string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
	AccountID       *int64 `form:"accountId" binding:"omitempty,gt=0"`
	TransactionType string `form:"transactionType" binding:"omitempty,oneof=income expense"`
}

func (p StatisticsParams) ToFilter(userID int64) (domain.StatisticsFilter, error) {
	start, err := parseOptionalDate("startDate", &p.StartDate)
	if err != nil {
		return domain.StatisticsFilter{}, err
	}
	end, err := parseOptionalDate("endDate", &p.EndDate)
	if err != nil {
		return domain.StatisticsFilter{}, err
	}
	if start != nil && end != nil && end.Before(*start) {
		return domain.StatisticsFilter{}, apperrors.NewFieldError("endDate", "must not be before startDate")
	}
	f := domain.StatisticsFilter{
		UserID:    userID,
		StartDate: start,
		EndDate:   end,
		AccountID: p.AccountID,
	}
	if p.TransactionType != "" {
		tt := domain.TransactionType(p.TransactionType)
		f.TransactionType = &tt
	}
	return f, nil
}

type StatisticsResponse struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

func ToStatisticsResponse(s *domain.Statistics) StatisticsResponse {
	return StatisticsResponse{Income: s.Income, Expense: s.Expense, Balance: s.Balance}
}

type CategoryTotalResponse struct {
	CategoryID   *int64          `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	Total        decimal.Decimal `json:"total"`
	Count        int             `json:"count"`
}

type CategoryTotalsResponse struct {
	Categories []CategoryTotalResponse `json:"categories"`
}

func ToCategoryTotalsResponse(rows []domain.CategoryTotal) CategoryTotalsResponse {
	out := make([]CategoryTotalResponse, len(rows))
	for i, r := range rows {
		out[i] = CategoryTotalResponse{
			CategoryID:   r.CategoryID,
			CategoryName: r.CategoryName,
			Total:        r.Total,
			Count:        r.Count,
		}
	}
	return CategoryTotalsResponse{Categories: out}
}

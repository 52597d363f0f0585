package dto

import (
	"time"

	"github.com/SscSPs/personal_finance_api/internal/apperrors"
	"github.com/SscSPs/personal_finance_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	DefaultTransactionLimit = 20
	MaxTransactionLimit     = 100
)

// TransactionRequest is used for both create and full update of a transaction.
type TransactionRequest struct {
	AccountID           int64            `json:"accountId" binding:"required,gt=0"`
	CategoryID          *int64           `json:"categoryId" binding:"omitempty,gt=0"`
	PayeeID             *int64           `json:"payeeId" binding:"omitempty,gt=0"`
	PaymentMethodID     *int64           `json:"paymentMethodId" binding:"omitempty,gt=0"`
	TransactionType     string           `json:"transactionType" binding:"required,oneof=income expense transfer"`
	Amount              *decimal.Decimal `json:"amount" binding:"required,gt=0"`
	CurrencyID          *int64           `json:"currencyId" binding:"omitempty,gt=0"`
	ExchangeRate        *decimal.Decimal `json:"exchangeRate" binding:"omitempty,gt=0"`
	TransactionDate     string           `json:"transactionDate" binding:"required,datetime=2006-01-02"`
	Description         *string          `json:"description" binding:"omitempty,max=500"`
	Notes               *string          `json:"notes"`
	Location            *string          `json:"location" binding:"omitempty,max=255"`
	IsExcludedFromStats *bool            `json:"isExcludedFromStats"`
	TagIDs              []int64          `json:"tagIds" binding:"omitempty,dive,gt=0"`
}

// ToDomain maps the request onto a transaction owned by userID. Currency and
// exchange rate defaults are resolved by the service once the account is known.
func (r TransactionRequest) ToDomain(userID int64) (domain.Transaction, error) {
	date, err := parseDate("transactionDate", r.TransactionDate)
	if err != nil {
		return domain.Transaction{}, err
	}
	txn := domain.Transaction{
		UserID:              userID,
		AccountID:           r.AccountID,
		CategoryID:          r.CategoryID,
		PayeeID:             r.PayeeID,
		PaymentMethodID:     r.PaymentMethodID,
		TransactionType:     domain.TransactionType(r.TransactionType),
		Amount:              decimalOr(r.Amount, decimal.Zero),
		ExchangeRate:        decimalOr(r.ExchangeRate, decimal.Zero),
		TransactionDate:     date,
		Description:         emptyToNil(r.Description),
		Notes:               emptyToNil(r.Notes),
		Location:            emptyToNil(r.Location),
		IsExcludedFromStats: boolOr(r.IsExcludedFromStats, false),
		TagIDs:              r.TagIDs,
	}
	if r.CurrencyID != nil {
		txn.CurrencyID = *r.CurrencyID
	}
	return txn, nil
}

// ListTransactionsParams are the query parameters of the transaction listing.
type ListTransactionsParams struct {
	Page            int    `form:"page" binding:"omitempty,min=1"`
	Limit           int    `form:"limit" binding:"omitempty,min=1,max=100"`
	StartDate       string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate         string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
	AccountID       *int64 `form:"accountId" binding:"omitempty,gt=0"`
	CategoryID      *int64 `form:"categoryId" binding:"omitempty,gt=0"`
	TransactionType string `form:"transactionType" binding:"omitempty,oneof=income expense transfer"`
	Search          string `form:"search" binding:"omitempty,max=255"`
}

// ToFilter converts the query into a repository filter with paging defaults applied.
func (p ListTransactionsParams) ToFilter(userID int64) (domain.TransactionFilter, error) {
	start, err := parseOptionalDate("startDate", &p.StartDate)
	if err != nil {
		return domain.TransactionFilter{}, err
	}
	end, err := parseOptionalDate("endDate", &p.EndDate)
	if err != nil {
		return domain.TransactionFilter{}, err
	}
	if start != nil && end != nil && end.Before(*start) {
		return domain.TransactionFilter{}, apperrors.NewFieldError("endDate", "must not be before startDate")
	}
	f := domain.TransactionFilter{
		UserID:     userID,
		StartDate:  start,
		EndDate:    end,
		AccountID:  p.AccountID,
		CategoryID: p.CategoryID,
		Search:     p.Search,
		Page:       domain.Page{Page: p.Page, Limit: p.Limit},
	}
	if f.Page.Page < 1 {
		f.Page.Page = 1
	}
	if f.Page.Limit < 1 {
		f.Page.Limit = DefaultTransactionLimit
	}
	if f.Page.Limit > MaxTransactionLimit {
		f.Page.Limit = MaxTransactionLimit
	}
	if p.TransactionType != "" {
		tt := domain.TransactionType(p.TransactionType)
		f.TransactionType = &tt
	}
	return f, nil
}

type TransactionResponse struct {
	ID                      int64           `json:"id"`
	AccountID               int64           `json:"accountId"`
	CategoryID              *int64          `json:"categoryId"`
	PayeeID                 *int64          `json:"payeeId"`
	PaymentMethodID         *int64          `json:"paymentMethodId"`
	TransactionType         string          `json:"transactionType"`
	Amount                  decimal.Decimal `json:"amount"`
	CurrencyID              int64           `json:"currencyId"`
	ExchangeRate            decimal.Decimal `json:"exchangeRate"`
	AmountInAccountCurrency decimal.Decimal `json:"amountInAccountCurrency"`
	TransactionDate         string          `json:"transactionDate"`
	Description             *string         `json:"description"`
	Notes                   *string         `json:"notes"`
	Location                *string         `json:"location"`
	IsRecurring             bool            `json:"isRecurring"`
	RecurringTransactionID  *int64          `json:"recurringTransactionId"`
	IsExcludedFromStats     bool            `json:"isExcludedFromStats"`
	TagIDs                  []int64         `json:"tagIds"`
	CreatedAt               time.Time       `json:"createdAt"`
	UpdatedAt               time.Time       `json:"updatedAt"`
}

type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   Pagination            `json:"pagination"`
}

func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	tags := t.TagIDs
	if tags == nil {
		tags = []int64{}
	}
	return TransactionResponse{
		ID:                      t.ID,
		AccountID:               t.AccountID,
		CategoryID:              t.CategoryID,
		PayeeID:                 t.PayeeID,
		PaymentMethodID:         t.PaymentMethodID,
		TransactionType:         string(t.TransactionType),
		Amount:                  t.Amount,
		CurrencyID:              t.CurrencyID,
		ExchangeRate:            t.ExchangeRate,
		AmountInAccountCurrency: t.AmountInAccountCurrency,
		TransactionDate:         domain.FormatDate(t.TransactionDate),
		Description:             t.Description,
		Notes:                   t.Notes,
		Location:                t.Location,
		IsRecurring:             t.IsRecurring,
		RecurringTransactionID:  t.RecurringTransactionID,
		IsExcludedFromStats:     t.IsExcludedFromStats,
		TagIDs:                  tags,
		CreatedAt:               t.CreatedAt,
		UpdatedAt:               t.UpdatedAt,
	}
}

func ToListTransactionsResponse(txns []domain.Transaction, total int64, page domain.Page) ListTransactionsResponse {
	out := make([]TransactionResponse, len(txns))
	for i := range txns {
		out[i] = ToTransactionResponse(&txns[i])
	}
	return ListTransactionsResponse{
		Transactions: out,
		Pagination:   NewPagination(total, page),
	}
}

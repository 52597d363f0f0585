package dto

import (
	"time"

	"github.com/SscSPs/personal_finance_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountRequest is used for both create and full update of an account.
type AccountRequest struct {
	Name              string           `json:"name" binding:"required,max=255"`
	AccountType       string           `json:"accountType" binding:"required,max=50"`
	CurrencyID        int64            `json:"currencyId" binding:"required,gt=0"`
	InitialBalance    *decimal.Decimal `json:"initialBalance"`
	Color             *string          `json:"color" binding:"omitempty,hexcolor,len=7"`
	Icon              *string          `json:"icon" binding:"omitempty,max=50"`
	IsActive          *bool            `json:"isActive"`
	IsIncludedInTotal *bool            `json:"isIncludedInTotal"`
	Notes             *string          `json:"notes"`
}

// ToDomain maps the request onto an account owned by userID.
func (r AccountRequest) ToDomain(userID int64) domain.Account {
	initial := decimalOr(r.InitialBalance, decimal.Zero)
	return domain.Account{
		UserID:            userID,
		Name:              r.Name,
		AccountType:       r.AccountType,
		CurrencyID:        r.CurrencyID,
		InitialBalance:    initial,
		CurrentBalance:    initial,
		Color:             emptyToNil(r.Color),
		Icon:              emptyToNil(r.Icon),
		IsActive:          boolOr(r.IsActive, true),
		IsIncludedInTotal: boolOr(r.IsIncludedInTotal, true),
		Notes:             emptyToNil(r.Notes),
	}
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	ID                int64             `json:"id"`
	Name              string            `json:"name"`
	AccountType       string            `json:"accountType"`
	CurrencyID        int64             `json:"currencyId"`
	Currency          *CurrencyResponse `json:"currency,omitempty"`
	InitialBalance    decimal.Decimal   `json:"initialBalance"`
	CurrentBalance    decimal.Decimal   `json:"currentBalance"`
	Color             *string           `json:"color"`
	Icon              *string           `json:"icon"`
	IsActive          bool              `json:"isActive"`
	IsIncludedInTotal bool              `json:"isIncludedInTotal"`
	Notes             *string           `json:"notes"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	resp := AccountResponse{
		ID:                acc.ID,
		Name:              acc.Name,
		AccountType:       acc.AccountType,
		CurrencyID:        acc.CurrencyID,
		InitialBalance:    acc.InitialBalance,
		CurrentBalance:    acc.CurrentBalance,
		Color:             acc.Color,
		Icon:              acc.Icon,
		IsActive:          acc.IsActive,
		IsIncludedInTotal: acc.IsIncludedInTotal,
		Notes:             acc.Notes,
		CreatedAt:         acc.CreatedAt,
		UpdatedAt:         acc.UpdatedAt,
	}
	if acc.Currency != nil {
		c := ToCurrencyResponse(acc.Currency)
		resp.Currency = &c
	}
	return resp
}

func ToListAccountsResponse(accounts []domain.Account) ListAccountsResponse {
	out := make([]AccountResponse, len(accounts))
	for i := range accounts {
		out[i] = ToAccountResponse(&accounts[i])
	}
	return ListAccountsResponse{Accounts: out}
}

package dto

import (
	"time"

	"github.com/SscSPs/personal_finance_api/internal/core/domain"
)

type TagRequest struct {
	Name  string  `json:"name" binding:"required,max=100"`
	Color *string `json:"color" binding:"omitempty,hexcolor,len=7"`
}

func (r TagRequest) ToDomain(userID int64) domain.Tag {
	return domain.Tag{UserID: userID, Name: r.Name, Color: emptyToNil(r.Color)}
}

type TagResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Color     *string   `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}

type ListTagsResponse struct {
	Tags []TagResponse `json:"tags"`
}

func ToTagResponse(t *domain.Tag) TagResponse {
	return TagResponse{ID: t.ID, Name: t.Name, Color: t.Color, CreatedAt: t.CreatedAt}
}

func ToListTagsResponse(tags []domain.Tag) ListTagsResponse {
	out := make([]TagResponse, len(tags))
	for i := range tags {
		out[i] = ToTagResponse(&tags[i])
	}
	return ListTagsResponse{Tags: out}
}

type PayeeRequest struct {
	Name              string  `json:"name" binding:"required,max=255"`
	DefaultCategoryID *int64  `json:"defaultCategoryId" binding:"omitempty,gt=0"`
	Notes             *string `json:"notes"`
	IsActive          *bool   `json:"isActive"`
}

func (r PayeeRequest) ToDomain(userID int64) domain.Payee {
	return domain.Payee{
		UserID:            userID,
		Name:              r.Name,
		DefaultCategoryID: r.DefaultCategoryID,
		Notes:             emptyToNil(r.Notes),
		IsActive:          boolOr(r.IsActive, true),
	}
}

type PayeeResponse struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	DefaultCategoryID *int64    `json:"defaultCategoryId"`
	Notes             *string   `json:"notes"`
	IsActive          bool      `json:"isActive"`
	CreatedAt         time.Time `json:"createdAt"`
}

type ListPayeesResponse struct {
	Payees []PayeeResponse `json:"payees"`
}

func ToPayeeResponse(p *domain.Payee) PayeeResponse {
	return PayeeResponse{
		ID:                p.ID,
		Name:              p.Name,
		DefaultCategoryID: p.DefaultCategoryID,
		Notes:             p.Notes,
		IsActive:          p.IsActive,
		CreatedAt:         p.CreatedAt,
	}
}

func ToListPayeesResponse(payees []domain.Payee) ListPayeesResponse {
	out := make([]PayeeResponse, len(payees))
	for i := range payees {
		out[i] = ToPayeeResponse(&payees[i])
	}
	return ListPayeesResponse{Payees: out}
}

type PaymentMethodRequest struct {
	Name string `json:"name" binding:"required,max=100"`
	Type string `json:"type" binding:"required,max=50"`
}

func (r PaymentMethodRequest) ToDomain(userID int64) domain.PaymentMethod {
	owner := userID
	return domain.PaymentMethod{UserID: &owner, Name: r.Name, Type: r.Type}
}

type PaymentMethodResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	IsSystem  bool      `json:"isSystem"`
	CreatedAt time.Time `json:"createdAt"`
}

type ListPaymentMethodsResponse struct {
	PaymentMethods []PaymentMethodResponse `json:"paymentMethods"`
}

func ToPaymentMethodResponse(m *domain.PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{ID: m.ID, Name: m.Name, Type: m.Type, IsSystem: m.IsSystem, CreatedAt: m.CreatedAt}
}

func ToListPaymentMethodsResponse(methods []domain.PaymentMethod) ListPaymentMethodsResponse {
	out := make([]PaymentMethodResponse, len(methods))
	for i := range methods {
		out[i] = ToPaymentMethodResponse(&methods[i])
	}
	return ListPaymentMethodsResponse{PaymentMethods: out}
}

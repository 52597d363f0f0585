package dto

import (
	"github.com/SscSPs/personal_finance_api/internal/apperrors"
	"github.com/SscSPs/personal_finance_api/internal/core/domain"
	"github.com/SscSPs/personal_finance_api/internal/utils/pagination"
)

// Envelope is the shape of every JSON response body.
type Envelope struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message,omitempty"`
	Data    any                    `json:"data,omitempty"`
	Errors  []apperrors.FieldError `json:"errors,omitempty"`
}

// OK wraps a successful payload.
func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// OKWithMessage wraps a successful payload with a human readable message.
func OKWithMessage(message string, data any) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}

// Fail builds an error envelope.
func Fail(message string, fields ...apperrors.FieldError) Envelope {
	return Envelope{Success: false, Message: message, Errors: fields}
}

// Pagination describes an offset page in list responses.
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

func NewPagination(total int64, page domain.Page) Pagination {
	return Pagination{
		Total: total,
		Page:  page.Page,
		Limit: page.Limit,
		Pages: pagination.TotalPages(total, page.Limit),
	}
}

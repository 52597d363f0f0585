package domain

import "time"

// Tag is a free-form label attached to transactions. Names are unique per user.
type Tag struct {
	ID        int64
	UserID    int64
	Name      string
	Color     *string
	CreatedAt time.Time
}

// Payee is a counterparty of transactions.
type Payee struct {
	ID                int64
	UserID            int64
	Name              string
	DefaultCategoryID *int64
	Notes             *string
	IsActive          bool
	AuditFields
}

// PaymentMethod describes how a transaction was paid. System methods are shared.
type PaymentMethod struct {
	ID        int64
	UserID    *int64
	Name      string
	Type      string
	IsSystem  bool
	CreatedAt time.Time
}

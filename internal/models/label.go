package models

import "time"

type Tag struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Name      string    `db:"name"`
	Color     *string   `db:"color"`
	CreatedAt time.Time `db:"created_at"`
}

type Payee struct {
	ID                int64   `db:"id"`
	UserID            int64   `db:"user_id"`
	Name              string  `db:"name"`
	DefaultCategoryID *int64  `db:"default_category_id"`
	Notes             *string `db:"notes"`
	IsActive          bool    `db:"is_active"`
	AuditFields
}

type PaymentMethod struct {
	ID        int64     `db:"id"`
	UserID    *int64    `db:"user_id"`
	Name      string    `db:"name"`
	Type      string    `db:"type"`
	IsSystem  bool      `db:"is_system"`
	CreatedAt time.Time `db:"created_at"`
}

package models

// Category is a row of the categories table.
type Category struct {
	ID               int64   `db:"id"`
	UserID           *int64  `db:"user_id"`
	ParentCategoryID *int64  `db:"parent_category_id"`
	Kind             string  `db:"kind"`
	Name             string  `db:"name"`
	Icon             *string `db:"icon"`
	Color            *string `db:"color"`
	IsSystem         bool    `db:"is_system"`
	IsActive         bool    `db:"is_active"`
	SortOrder        int     `db:"sort_order"`
	AuditFields
}

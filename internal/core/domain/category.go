package domain

// CategoryKind tells whether a category groups income or expenses.
type CategoryKind string

const (
	CategoryIncome  CategoryKind = "income"
	CategoryExpense CategoryKind = "expense"
)

// Category classifies transactions. System categories have no owner and are shared.
type Category struct {
	ID               int64
	UserID           *int64
	ParentCategoryID *int64
	Kind             CategoryKind
	Name             string
	Icon             *string
	Color            *string
	IsSystem         bool
	IsActive         bool
	SortOrder        int
	AuditFields
}

// EditableBy reports whether the user may change or delete the category.
func (c Category) EditableBy(userID int64) bool {
	return !c.IsSystem && c.UserID != nil && *c.UserID == userID
}

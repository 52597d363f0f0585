package repositories

import (
	"context"

	"github.com/SscSPs/personal_finance_api/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// CategoryRepository persists categories. Reads return the user's own and system categories.
type CategoryRepository interface {
	ListCategories(ctx context.Context, userID int64, kind *domain.CategoryKind) ([]domain.Category, error)
	FindVisibleCategory(ctx context.Context, categoryID, userID int64) (*domain.Category, error)
	// CategoryVisibleTx reports whether the category exists and is visible to the user.
	CategoryVisibleTx(ctx context.Context, tx pgx.Tx, categoryID, userID int64) (bool, error)
	CreateCategory(ctx context.Context, category domain.Category) (*domain.Category, error)
	// UpdateCategory and DeleteCategory only touch non-system categories owned by the user.
	UpdateCategory(ctx context.Context, category domain.Category) error
	DeleteCategory(ctx context.Context, categoryID, userID int64) error
}

package pgsql

import (
	"context"

	"github.com/SscSPs/personal_finance_api/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_api/internal/core/ports/repositories"
	"github.com/SscSPs/personal_finance_api/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const categoryColumns = `id, user_id, parent_category_id, kind, name, icon, color, is_system, is_active,
	sort_order, created_at, updated_at`

// visibleTo matches the user's own and system categories.
const visibleTo = `(user_id = $2 OR is_system = TRUE)`

type PgxCategoryRepository struct {
	pool *pgxpool.Pool
}

func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepository {
	return &PgxCategoryRepository{pool: pool}
}

var _ portsrepo.CategoryRepository = (*PgxCategoryRepository)(nil)

func toDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		ID:               m.ID,
		UserID:           m.UserID,
		ParentCategoryID: m.ParentCategoryID,
		Kind:             domain.CategoryKind(m.Kind),
		Name:             m.Name,
		Icon:             m.Icon,
		Color:            m.Color,
		IsSystem:         m.IsSystem,
		IsActive:         m.IsActive,
		SortOrder:        m.SortOrder,
		AuditFields:      domain.AuditFields{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
	}
}

// ListCategories returns visible categories, system ones first, then by sort order and name.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context, userID int64, kind *domain.CategoryKind) ([]domain.Category, error) {
	var kindArg *string
	if kind != nil {
		k := string(*kind)
		kindArg = &k
	}
	query := `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE (user_id = $1 OR is_system = TRUE)
			AND ($2::text IS NULL OR kind = $2)
		ORDER BY sort_order, name`
	rows, err := r.pool.Query(ctx, query, userID, kindArg)
	if err != nil {
		return nil, mapReadError(err, "list categories")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Category])
	if err != nil {
		return nil, mapReadError(err, "list categories")
	}
	out := make([]domain.Category, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDomainCategory(m))
	}
	return out, nil
}

func (r *PgxCategoryRepository) FindVisibleCategory(ctx context.Context, categoryID, userID int64) (*domain.Category, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE id = $1 AND `+visibleTo,
		categoryID, userID)
	if err != nil {
		return nil, mapReadError(err, "find category")
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Category])
	if err != nil {
		return nil, mapReadError(err, "find category")
	}
	c := toDomainCategory(m)
	return &c, nil
}

func (r *PgxCategoryRepository) CategoryVisibleTx(ctx context.Context, tx pgx.Tx, categoryID, userID int64) (bool, error) {
	var ok bool
	err := tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1 AND `+visibleTo+`)`,
		categoryID, userID,
	).Scan(&ok)
	if err != nil {
		return false, mapReadError(err, "check category")
	}
	return ok, nil
}

func (r *PgxCategoryRepository) CreateCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	query := `
		INSERT INTO categories (user_id, parent_category_id, kind, name, icon, color, is_system, is_active, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, $7, $8)
		RETURNING ` + categoryColumns
	rows, err := r.pool.Query(ctx, query,
		category.UserID,
		category.ParentCategoryID,
		string(category.Kind),
		category.Name,
		category.Icon,
		category.Color,
		category.IsActive,
		category.SortOrder,
	)
	if err != nil {
		return nil, mapWriteError(err, "create category")
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Category])
	if err != nil {
		return nil, mapWriteError(err, "create category")
	}
	c := toDomainCategory(m)
	return &c, nil
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	query := `
		UPDATE categories
		SET parent_category_id = $3, kind = $4, name = $5, icon = $6, color = $7,
			is_active = $8, sort_order = $9, updated_at = NOW()
		WHERE id = $1 AND user_id = $2 AND is_system = FALSE`
	tag, err := r.pool.Exec(ctx, query,
		category.ID,
		category.UserID,
		category.ParentCategoryID,
		string(category.Kind),
		category.Name,
		category.Icon,
		category.Color,
		category.IsActive,
		category.SortOrder,
	)
	if err != nil {
		return mapWriteError(err, "update category")
	}
	return expectOne(tag)
}

func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID, userID int64) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM categories WHERE id = $1 AND user_id = $2 AND is_system = FALSE`,
		categoryID, userID)
	if err != nil {
		return mapWriteError(err, "delete category")
	}
	return expectOne(tag)
}

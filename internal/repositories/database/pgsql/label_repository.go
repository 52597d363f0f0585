package pgsql

import (
	"context"

	"github.com/SscSPs/personal_finance_api/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_api/internal/core/ports/repositories"
	"github.com/SscSPs/personal_finance_api/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// --- tags ---

type PgxTagRepository struct {
	pool *pgxpool.Pool
}

func newPgxTagRepository(pool *pgxpool.Pool) portsrepo.TagRepository {
	return &PgxTagRepository{pool: pool}
}

var _ portsrepo.TagRepository = (*PgxTagRepository)(nil)

func toDomainTag(m models.Tag) domain.Tag {
	return domain.Tag{ID: m.ID, UserID: m.UserID, Name: m.Name, Color: m.Color, CreatedAt: m.CreatedAt}
}

func (r *PgxTagRepository) ListTags(ctx context.Context, userID int64) ([]domain.Tag, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, name, color, created_at FROM tags WHERE user_id = $1 ORDER BY name`, userID)
	if err != nil {
		return nil, mapReadError(err, "list tags")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Tag])
	if err != nil {
		return nil, mapReadError(err, "list tags")
	}
	out := make([]domain.Tag, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDomainTag(m))
	}
	return out, nil
}

func (r *PgxTagRepository) FindTagByID(ctx context.Context, tagID, userID int64) (*domain.Tag, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, name, color, created_at FROM tags WHERE id = $1 AND user_id = $2`, tagID, userID)
	if err != nil {
		return nil, mapReadError(err, "find tag")
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Tag])
	if err != nil {
		return nil, mapReadError(err, "find tag")
	}
	t := toDomainTag(m)
	return &t, nil
}

func (r *PgxTagRepository) CountOwnedTags(ctx context.Context, userID int64, tagIDs []int64) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM tags WHERE user_id = $1 AND id = ANY($2)`, userID, tagIDs).Scan(&n)
	if err != nil {
		return 0, mapReadError(err, "count tags")
	}
	return n, nil
}

func (r *PgxTagRepository) CreateTag(ctx context.Context, tag domain.Tag) (*domain.Tag, error) {
	created := tag
	err := r.pool.QueryRow(ctx,
		`INSERT INTO tags (user_id, name, color) VALUES ($1, $2, $3) RETURNING id, created_at`,
		tag.UserID, tag.Name, tag.Color,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, mapWriteError(err, "create tag")
	}
	return &created, nil
}

func (r *PgxTagRepository) UpdateTag(ctx context.Context, tag domain.Tag) error {
	res, err := r.pool.Exec(ctx,
		`UPDATE tags SET name = $3, color = $4 WHERE id = $1 AND user_id = $2`,
		tag.ID, tag.UserID, tag.Name, tag.Color)
	if err != nil {
		return mapWriteError(err, "update tag")
	}
	return expectOne(res)
}

func (r *PgxTagRepository) DeleteTag(ctx context.Context, tagID, userID int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tags WHERE id = $1 AND user_id = $2`, tagID, userID)
	if err != nil {
		return mapWriteError(err, "delete tag")
	}
	return expectOne(tag)
}

// --- payees ---

const payeeColumns = `id, user_id, name, default_category_id, notes, is_active, created_at, updated_at`

type PgxPayeeRepository struct {
	pool *pgxpool.Pool
}

func newPgxPayeeRepository(pool *pgxpool.Pool) portsrepo.PayeeRepository {
	return &PgxPayeeRepository{pool: pool}
}

var _ portsrepo.PayeeRepository = (*PgxPayeeRepository)(nil)

func toDomainPayee(m models.Payee) domain.Payee {
	return domain.Payee{
		ID:                m.ID,
		UserID:            m.UserID,
		Name:              m.Name,
		DefaultCategoryID: m.DefaultCategoryID,
		Notes:             m.Notes,
		IsActive:          m.IsActive,
		AuditFields:       domain.AuditFields{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
	}
}

func (r *PgxPayeeRepository) ListPayees(ctx context.Context, userID int64) ([]domain.Payee, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+payeeColumns+` FROM payees WHERE user_id = $1 ORDER BY name`, userID)
	if err != nil {
		return nil, mapReadError(err, "list payees")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Payee])
	if err != nil {
		return nil, mapReadError(err, "list payees")
	}
	out := make([]domain.Payee, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDomainPayee(m))
	}
	return out, nil
}

func (r *PgxPayeeRepository) FindPayeeByID(ctx context.Context, payeeID, userID int64) (*domain.Payee, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+payeeColumns+` FROM payees WHERE id = $1 AND user_id = $2`, payeeID, userID)
	if err != nil {
		return nil, mapReadError(err, "find payee")
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Payee])
	if err != nil {
		return nil, mapReadError(err, "find payee")
	}
	p := toDomainPayee(m)
	return &p, nil
}

func (r *PgxPayeeRepository) CreatePayee(ctx context.Context, payee domain.Payee) (*domain.Payee, error) {
	created := payee
	err := r.pool.QueryRow(ctx, `
		INSERT INTO payees (user_id, name, default_category_id, notes, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		payee.UserID, payee.Name, payee.DefaultCategoryID, payee.Notes, payee.IsActive,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, mapWriteError(err, "create payee")
	}
	return &created, nil
}

func (r *PgxPayeeRepository) UpdatePayee(ctx context.Context, payee domain.Payee) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE payees
		SET name = $3, default_category_id = $4, notes = $5, is_active = $6, updated_at = NOW()
		WHERE id = $1 AND user_id = $2`,
		payee.ID, payee.UserID, payee.Name, payee.DefaultCategoryID, payee.Notes, payee.IsActive)
	if err != nil {
		return mapWriteError(err, "update payee")
	}
	return expectOne(tag)
}

func (r *PgxPayeeRepository) DeletePayee(ctx context.Context, payeeID, userID int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM payees WHERE id = $1 AND user_id = $2`, payeeID, userID)
	if err != nil {
		return mapWriteError(err, "delete payee")
	}
	return expectOne(tag)
}

// --- payment methods ---

type PgxPaymentMethodRepository struct {
	pool *pgxpool.Pool
}

func newPgxPaymentMethodRepository(pool *pgxpool.Pool) portsrepo.PaymentMethodRepository {
	return &PgxPaymentMethodRepository{pool: pool}
}

var _ portsrepo.PaymentMethodRepository = (*PgxPaymentMethodRepository)(nil)

func toDomainPaymentMethod(m models.PaymentMethod) domain.PaymentMethod {
	return domain.PaymentMethod{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Type:      m.Type,
		IsSystem:  m.IsSystem,
		CreatedAt: m.CreatedAt,
	}
}

func (r *PgxPaymentMethodRepository) ListPaymentMethods(ctx context.Context, userID int64) ([]domain.PaymentMethod, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, name, type, is_system, created_at
		FROM payment_methods
		WHERE user_id = $1 OR is_system = TRUE
		ORDER BY is_system DESC, name`, userID)
	if err != nil {
		return nil, mapReadError(err, "list payment methods")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.PaymentMethod])
	if err != nil {
		return nil, mapReadError(err, "list payment methods")
	}
	out := make([]domain.PaymentMethod, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDomainPaymentMethod(m))
	}
	return out, nil
}

func (r *PgxPaymentMethodRepository) FindVisiblePaymentMethod(ctx context.Context, paymentMethodID, userID int64) (*domain.PaymentMethod, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, name, type, is_system, created_at
		FROM payment_methods
		WHERE id = $1 AND `+visibleTo, paymentMethodID, userID)
	if err != nil {
		return nil, mapReadError(err, "find payment method")
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.PaymentMethod])
	if err != nil {
		return nil, mapReadError(err, "find payment method")
	}
	pm := toDomainPaymentMethod(m)
	return &pm, nil
}

func (r *PgxPaymentMethodRepository) CreatePaymentMethod(ctx context.Context, method domain.PaymentMethod) (*domain.PaymentMethod, error) {
	created := method
	created.IsSystem = false
	err := r.pool.QueryRow(ctx, `
		INSERT INTO payment_methods (user_id, name, type, is_system)
		VALUES ($1, $2, $3, FALSE)
		RETURNING id, created_at`,
		method.UserID, method.Name, method.Type,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, mapWriteError(err, "create payment method")
	}
	return &created, nil
}

func (r *PgxPaymentMethodRepository) UpdatePaymentMethod(ctx context.Context, method domain.PaymentMethod) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE payment_methods SET name = $3, type = $4
		WHERE id = $1 AND user_id = $2 AND is_system = FALSE`,
		method.ID, method.UserID, method.Name, method.Type)
	if err != nil {
		return mapWriteError(err, "update payment method")
	}
	return expectOne(tag)
}

func (r *PgxPaymentMethodRepository) DeletePaymentMethod(ctx context.Context, paymentMethodID, userID int64) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM payment_methods WHERE id = $1 AND user_id = $2 AND is_system = FALSE`,
		paymentMethodID, userID)
	if err != nil {
		return mapWriteError(err, "delete payment method")
	}
	return expectOne(tag)
}

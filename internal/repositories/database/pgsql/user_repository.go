package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/personal_finance_api/internal/apperrors"
	"github.com/SscSPs/personal_finance_api/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_api/internal/core/ports/repositories"
	"github.com/SscSPs/personal_finance_api/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, username, email, password_hash, first_name, last_name, default_currency_id,
	auth_provider, provider_user_id, is_active, email_verified, created_at, updated_at`

type PgxUserRepository struct {
	pool *pgxpool.Pool
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{pool: pool}
}

var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

func toDomainUser(m models.User) domain.User {
	u := domain.User{
		ID:                m.ID,
		Username:          m.Username,
		Email:             m.Email,
		FirstName:         m.FirstName,
		LastName:          m.LastName,
		DefaultCurrencyID: m.DefaultCurrencyID,
		AuthProvider:      domain.AuthProvider(m.AuthProvider),
		ProviderUserID:    m.ProviderUserID,
		IsActive:          m.IsActive,
		EmailVerified:     m.EmailVerified,
		AuditFields:       domain.AuditFields{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
	}
	if m.PasswordHash != nil {
		u.PasswordHash = *m.PasswordHash
	}
	return u
}

func (r *PgxUserRepository) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (username, email, password_hash, first_name, last_name, default_currency_id,
			auth_provider, provider_user_id, is_active, email_verified)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + userColumns

	rows, err := r.pool.Query(ctx, query,
		user.Username,
		user.Email,
		emptyToNil(user.PasswordHash),
		user.FirstName,
		user.LastName,
		user.DefaultCurrencyID,
		string(user.AuthProvider),
		user.ProviderUserID,
		user.IsActive,
		user.EmailVerified,
	)
	if err != nil {
		return nil, mapWriteError(err, "create user")
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		return nil, mapWriteError(err, "create user")
	}
	created := toDomainUser(m)
	return &created, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, userID)
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE LOWER(email) = LOWER($1)`, email)
}

func (r *PgxUserRepository) findOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, mapReadError(err, "find user")
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		return nil, mapReadError(err, "find user")
	}
	u := toDomainUser(m)
	return &u, nil
}

func (r *PgxUserRepository) LinkProvider(ctx context.Context, userID int64, provider domain.AuthProvider, providerUserID string, emailVerified bool) error {
	query := `
		UPDATE users
		SET auth_provider = $2, provider_user_id = $3, email_verified = email_verified OR $4, updated_at = NOW()
		WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, userID, string(provider), providerUserID, emailVerified)
	if err != nil {
		return mapWriteError(err, "link identity provider")
	}
	return expectOne(tag)
}

func (r *PgxUserRepository) UpdateProfile(ctx context.Context, userID int64, update domain.ProfileUpdate) (*domain.User, error) {
	query := `
		UPDATE users
		SET first_name = COALESCE($2, first_name),
			last_name = COALESCE($3, last_name),
			default_currency_id = COALESCE($4, default_currency_id),
			password_hash = COALESCE($5, password_hash),
			updated_at = NOW()
		WHERE id = $1 AND is_active
		RETURNING ` + userColumns

	rows, err := r.pool.Query(ctx, query, userID, update.FirstName, update.LastName, update.DefaultCurrencyID, update.PasswordHash)
	if err != nil {
		return nil, mapWriteError(err, "update profile")
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, mapWriteError(err, "update profile")
	}
	u := toDomainUser(m)
	return &u, nil
}

func emptyToNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

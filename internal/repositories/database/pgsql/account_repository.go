package pgsql

import (
	"context"

	"github.com/SscSPs/personal_finance_api/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_api/internal/core/ports/repositories"
	"github.com/SscSPs/personal_finance_api/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const accountSelect = `
	SELECT a.id, a.user_id, a.name, a.account_type, a.currency_id, a.initial_balance, a.current_balance,
		a.color, a.icon, a.is_active, a.is_included_in_total, a.notes, a.created_at, a.updated_at,
		c.code AS currency_code, c.name AS currency_name, c.symbol AS currency_symbol,
		c.decimal_places AS currency_decimal_places, c.is_active AS currency_is_active
	FROM accounts a
	JOIN currencies c ON c.id = a.currency_id`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func toDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		ID:                m.ID,
		UserID:            m.UserID,
		Name:              m.Name,
		AccountType:       m.AccountType,
		CurrencyID:        m.CurrencyID,
		InitialBalance:    m.InitialBalance,
		CurrentBalance:    m.CurrentBalance,
		Color:             m.Color,
		Icon:              m.Icon,
		IsActive:          m.IsActive,
		IsIncludedInTotal: m.IsIncludedInTotal,
		Notes:             m.Notes,
		Currency: &domain.Currency{
			ID:            m.CurrencyID,
			Code:          m.CurrencyCode,
			Name:          m.CurrencyName,
			Symbol:        m.CurrencySymbol,
			DecimalPlaces: m.CurrencyDecimalPlaces,
			IsActive:      m.CurrencyIsActive,
		},
		AuditFields: domain.AuditFields{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
	}
}

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID, userID int64) (*domain.Account, error) {
	return r.findAccount(ctx, r.Pool, accountID, userID)
}

// FindAccountByIDTx reads the account inside the caller's transaction.
func (r *PgxAccountRepository) FindAccountByIDTx(ctx context.Context, tx pgx.Tx, accountID, userID int64) (*domain.Account, error) {
	return r.findAccount(ctx, tx, accountID, userID)
}

func (r *PgxAccountRepository) findAccount(ctx context.Context, q querier, accountID, userID int64) (*domain.Account, error) {
	rows, err := q.Query(ctx, accountSelect+` WHERE a.id = $1 AND a.user_id = $2`, accountID, userID)
	if err != nil {
		return nil, mapReadError(err, "find account")
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, mapReadError(err, "find account")
	}
	acc := toDomainAccount(m)
	return &acc, nil
}

// ListAccounts returns all accounts of the user ordered by name.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, userID int64) ([]domain.Account, error) {
	rows, err := r.Pool.Query(ctx, accountSelect+` WHERE a.user_id = $1 ORDER BY a.name, a.id`, userID)
	if err != nil {
		return nil, mapReadError(err, "list accounts")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, mapReadError(err, "list accounts")
	}
	accounts := make([]domain.Account, 0, len(ms))
	for _, m := range ms {
		accounts = append(accounts, toDomainAccount(m))
	}
	return accounts, nil
}

func (r *PgxAccountRepository) CountOwnedAccounts(ctx context.Context, userID int64, accountIDs []int64) (int, error) {
	var n int
	err := r.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM accounts WHERE user_id = $1 AND id = ANY($2)`,
		userID, accountIDs,
	).Scan(&n)
	if err != nil {
		return 0, mapReadError(err, "count accounts")
	}
	return n, nil
}

func (r *PgxAccountRepository) CreateAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	query := `
		INSERT INTO accounts (user_id, name, account_type, currency_id, initial_balance, current_balance,
			color, icon, is_active, is_included_in_total, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at`

	created := account
	err := r.Pool.QueryRow(ctx, query,
		account.UserID,
		account.Name,
		account.AccountType,
		account.CurrencyID,
		account.InitialBalance,
		account.CurrentBalance,
		account.Color,
		account.Icon,
		account.IsActive,
		account.IsIncludedInTotal,
		account.Notes,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, mapWriteError(err, "create account")
	}
	return &created, nil
}

// UpdateAccount replaces the editable fields. The current balance moves by
// the same delta as the initial balance.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	query := `
		UPDATE accounts
		SET name = $3,
			account_type = $4,
			currency_id = $5,
			current_balance = current_balance + ($6 - initial_balance),
			initial_balance = $6,
			color = $7,
			icon = $8,
			is_active = $9,
			is_included_in_total = $10,
			notes = $11,
			updated_at = NOW()
		WHERE id = $1 AND user_id = $2`

	tag, err := r.Pool.Exec(ctx, query,
		account.ID,
		account.UserID,
		account.Name,
		account.AccountType,
		account.CurrencyID,
		account.InitialBalance,
		account.Color,
		account.Icon,
		account.IsActive,
		account.IsIncludedInTotal,
		account.Notes,
	)
	if err != nil {
		return mapWriteError(err, "update account")
	}
	return expectOne(tag)
}

// DeleteAccount removes the account; its transactions cascade.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, accountID, userID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM accounts WHERE id = $1 AND user_id = $2`, accountID, userID)
	if err != nil {
		return mapWriteError(err, "delete account")
	}
	return expectOne(tag)
}

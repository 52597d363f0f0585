package pgsql

import (
	"context"

	"github.com/SscSPs/personal_finance_api/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_api/internal/core/ports/repositories"
	"github.com/SscSPs/personal_finance_api/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCurrencyRepository struct {
	pool *pgxpool.Pool
}

func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepository {
	return &PgxCurrencyRepository{pool: pool}
}

var _ portsrepo.CurrencyRepository = (*PgxCurrencyRepository)(nil)

func toDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		ID:            m.ID,
		Code:          m.Code,
		Name:          m.Name,
		Symbol:        m.Symbol,
		DecimalPlaces: m.DecimalPlaces,
		IsActive:      m.IsActive,
	}
}

// ListCurrencies returns active currencies ordered by code.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `
		SELECT id, code, name, symbol, decimal_places, is_active
		FROM currencies
		WHERE is_active = TRUE
		ORDER BY code`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, mapReadError(err, "list currencies")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Currency])
	if err != nil {
		return nil, mapReadError(err, "list currencies")
	}
	out := make([]domain.Currency, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDomainCurrency(m))
	}
	return out, nil
}

func (r *PgxCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	query := `SELECT id, code, name, symbol, decimal_places, is_active FROM currencies WHERE id = $1`
	rows, err := r.pool.Query(ctx, query, currencyID)
	if err != nil {
		return nil, mapReadError(err, "find currency")
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Currency])
	if err != nil {
		return nil, mapReadError(err, "find currency")
	}
	c := toDomainCurrency(m)
	return &c, nil
}

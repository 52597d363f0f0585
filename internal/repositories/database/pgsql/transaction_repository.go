package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/personal_finance_api/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_api/internal/core/ports/repositories"
	"github.com/SscSPs/personal_finance_api/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionSelect = `
	SELECT t.id, t.user_id, t.account_id, t.category_id, t.payee_id, t.payment_method_id,
		t.transaction_type, t.amount, t.currency_id, t.exchange_rate, t.amount_in_account_currency,
		t.transaction_date, t.description, t.notes, t.location, t.is_recurring,
		t.recurring_transaction_id, t.is_excluded_from_stats,
		COALESCE((SELECT array_agg(tt.tag_id ORDER BY tt.tag_id) FROM transaction_tags tt WHERE tt.transaction_id = t.id), '{}') AS tag_ids,
		t.created_at, t.updated_at
	FROM transactions t`

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

func toDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		ID:                      m.ID,
		UserID:                  m.UserID,
		AccountID:               m.AccountID,
		CategoryID:              m.CategoryID,
		PayeeID:                 m.PayeeID,
		PaymentMethodID:         m.PaymentMethodID,
		TransactionType:         domain.TransactionType(m.TransactionType),
		Amount:                  m.Amount,
		CurrencyID:              m.CurrencyID,
		ExchangeRate:            m.ExchangeRate,
		AmountInAccountCurrency: m.AmountInAccountCurrency,
		TransactionDate:         m.TransactionDate,
		Description:             m.Description,
		Notes:                   m.Notes,
		Location:                m.Location,
		IsRecurring:             m.IsRecurring,
		RecurringTransactionID:  m.RecurringTransactionID,
		IsExcludedFromStats:     m.IsExcludedFromStats,
		TagIDs:                  m.TagIDs,
		AuditFields:             domain.AuditFields{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
	}
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID, userID int64) (*domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, transactionSelect+` WHERE t.id = $1 AND t.user_id = $2`, transactionID, userID)
	if err != nil {
		return nil, mapReadError(err, "find transaction")
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, mapReadError(err, "find transaction")
	}
	txn := toDomainTransaction(m)
	return &txn, nil
}

// ListTransactions returns one page ordered by date then creation time, newest
// first, together with the total number of matching rows.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, int64, error) {
	where, args := transactionWhere(filter)

	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM transactions t WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, mapReadError(err, "count transactions")
	}
	if total == 0 {
		return []domain.Transaction{}, 0, nil
	}

	args = append(args, filter.Limit, filter.Offset())
	query := fmt.Sprintf(`%s WHERE %s ORDER BY t.transaction_date DESC, t.created_at DESC, t.id DESC LIMIT $%d OFFSET $%d`,
		transactionSelect, where, len(args)-1, len(args))
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, mapReadError(err, "list transactions")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, 0, mapReadError(err, "list transactions")
	}
	out := make([]domain.Transaction, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDomainTransaction(m))
	}
	return out, total, nil
}

func transactionWhere(f domain.TransactionFilter) (string, []any) {
	conds := []string{"t.user_id = $1"}
	args := []any{f.UserID}
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.StartDate != nil {
		add("t.transaction_date >= $%d", *f.StartDate)
	}
	if f.EndDate != nil {
		add("t.transaction_date <= $%d", *f.EndDate)
	}
	if f.AccountID != nil {
		add("t.account_id = $%d", *f.AccountID)
	}
	if f.CategoryID != nil {
		add("t.category_id = $%d", *f.CategoryID)
	}
	if f.TransactionType != nil {
		add("t.transaction_type = $%d", string(*f.TransactionType))
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		args = append(args, "%"+escapeLike(s)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(t.description ILIKE $%d OR t.notes ILIKE $%d)", n, n))
	}
	return strings.Join(conds, " AND "), args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

const transactionInsert = `
	INSERT INTO transactions (user_id, account_id, category_id, payee_id, payment_method_id, transaction_type,
		amount, currency_id, exchange_rate, amount_in_account_currency, transaction_date, description, notes,
		location, is_recurring, recurring_transaction_id, is_excluded_from_stats)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

func transactionArgs(txn domain.Transaction) []any {
	return []any{
		txn.UserID,
		txn.AccountID,
		txn.CategoryID,
		txn.PayeeID,
		txn.PaymentMethodID,
		string(txn.TransactionType),
		txn.Amount,
		txn.CurrencyID,
		txn.ExchangeRate,
		txn.AmountInAccountCurrency,
		txn.TransactionDate,
		txn.Description,
		txn.Notes,
		txn.Location,
		txn.IsRecurring,
		txn.RecurringTransactionID,
		txn.IsExcludedFromStats,
	}
}

// CreateTransactionTx inserts the transaction and its tag links inside tx.
func (r *PgxTransactionRepository) CreateTransactionTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) (*domain.Transaction, error) {
	created := txn
	err := tx.QueryRow(ctx, transactionInsert+` RETURNING id, created_at, updated_at`, transactionArgs(txn)...).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, mapWriteError(err, "create transaction")
	}
	if err := insertTags(ctx, tx, created.ID, txn.TagIDs); err != nil {
		return nil, err
	}
	if created.TagIDs == nil {
		created.TagIDs = []int64{}
	}
	return &created, nil
}

// CreateGeneratedTx inserts a rule generated transaction. A second insert for the
// same rule and date is skipped and reported as false.
func (r *PgxTransactionRepository) CreateGeneratedTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) (bool, error) {
	var id int64
	err := tx.QueryRow(ctx, transactionInsert+`
		ON CONFLICT (recurring_transaction_id, transaction_date) WHERE recurring_transaction_id IS NOT NULL
		DO NOTHING
		RETURNING id`, transactionArgs(txn)...).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, mapWriteError(err, "create generated transaction")
	}
	return true, nil
}

// UpdateTransactionTx replaces the transaction fields. Tags are replaced only when replaceTags is set.
func (r *PgxTransactionRepository) UpdateTransactionTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction, replaceTags bool) error {
	query := `
		UPDATE transactions
		SET account_id = $3, category_id = $4, payee_id = $5, payment_method_id = $6, transaction_type = $7,
			amount = $8, currency_id = $9, exchange_rate = $10, amount_in_account_currency = $11,
			transaction_date = $12, description = $13, notes = $14, location = $15,
			is_excluded_from_stats = $16, updated_at = NOW()
		WHERE id = $1 AND user_id = $2`
	tag, err := tx.Exec(ctx, query,
		txn.ID,
		txn.UserID,
		txn.AccountID,
		txn.CategoryID,
		txn.PayeeID,
		txn.PaymentMethodID,
		string(txn.TransactionType),
		txn.Amount,
		txn.CurrencyID,
		txn.ExchangeRate,
		txn.AmountInAccountCurrency,
		txn.TransactionDate,
		txn.Description,
		txn.Notes,
		txn.Location,
		txn.IsExcludedFromStats,
	)
	if err != nil {
		return mapWriteError(err, "update transaction")
	}
	if err := expectOne(tag); err != nil {
		return err
	}
	if !replaceTags {
		return nil
	}
	if _, err := tx.Exec(ctx, `DELETE FROM transaction_tags WHERE transaction_id = $1`, txn.ID); err != nil {
		return mapWriteError(err, "clear transaction tags")
	}
	return insertTags(ctx, tx, txn.ID, txn.TagIDs)
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID, userID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1 AND user_id = $2`, transactionID, userID)
	if err != nil {
		return mapWriteError(err, "delete transaction")
	}
	return expectOne(tag)
}

func insertTags(ctx context.Context, tx pgx.Tx, transactionID int64, tagIDs []int64) error {
	if len(tagIDs) == 0 {
		return nil
	}
	_, err := tx.Exec(ctx, `
		INSERT INTO transaction_tags (transaction_id, tag_id)
		SELECT $1, unnest($2::bigint[])
		ON CONFLICT DO NOTHING`, transactionID, tagIDs)
	if err != nil {
		return mapWriteError(err, "link transaction tags")
	}
	return nil
}

package pgsql

import (
	"context"

	"github.com/SscSPs/personal_finance_api/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_api/internal/core/ports/repositories"
	"github.com/SscSPs/personal_finance_api/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const goalColumns = `id, user_id, account_id, name, description, target_amount, current_amount, currency_id,
	target_date, priority, is_achieved, image_url, created_at, updated_at`

type PgxGoalRepository struct {
	BaseRepository
}

func newPgxGoalRepository(pool *pgxpool.Pool) *PgxGoalRepository {
	return &PgxGoalRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.GoalRepositoryWithTx = (*PgxGoalRepository)(nil)

func toDomainGoal(m models.Goal) domain.Goal {
	return domain.Goal{
		ID:            m.ID,
		UserID:        m.UserID,
		AccountID:     m.AccountID,
		Name:          m.Name,
		Description:   m.Description,
		TargetAmount:  m.TargetAmount,
		CurrentAmount: m.CurrentAmount,
		CurrencyID:    m.CurrencyID,
		TargetDate:    m.TargetDate,
		Priority:      m.Priority,
		IsAchieved:    m.IsAchieved,
		ImageURL:      m.ImageURL,
		AuditFields:   domain.AuditFields{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
	}
}

func toDomainContribution(m models.GoalContribution) domain.GoalContribution {
	return domain.GoalContribution{
		ID:               m.ID,
		GoalID:           m.GoalID,
		TransactionID:    m.TransactionID,
		Amount:           m.Amount,
		ContributionDate: m.ContributionDate,
		Notes:            m.Notes,
		CreatedAt:        m.CreatedAt,
	}
}

// ListGoals returns the user's goals, highest priority first.
func (r *PgxGoalRepository) ListGoals(ctx context.Context, userID int64) ([]domain.Goal, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT `+goalColumns+` FROM financial_goals WHERE user_id = $1 ORDER BY priority DESC, id`, userID)
	if err != nil {
		return nil, mapReadError(err, "list goals")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Goal])
	if err != nil {
		return nil, mapReadError(err, "list goals")
	}
	out := make([]domain.Goal, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDomainGoal(m))
	}
	return out, nil
}

// FindGoalByID returns the goal with its contributions, newest first.
func (r *PgxGoalRepository) FindGoalByID(ctx context.Context, goalID, userID int64) (*domain.Goal, error) {
	goal, err := r.findGoal(ctx, r.Pool, `SELECT `+goalColumns+` FROM financial_goals WHERE id = $1 AND user_id = $2`, goalID, userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.Pool.Query(ctx, `
		SELECT id, goal_id, transaction_id, amount, contribution_date, notes, created_at
		FROM goal_contributions
		WHERE goal_id = $1
		ORDER BY contribution_date DESC, id DESC`, goalID)
	if err != nil {
		return nil, mapReadError(err, "list goal contributions")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.GoalContribution])
	if err != nil {
		return nil, mapReadError(err, "list goal contributions")
	}
	goal.Contributions = make([]domain.GoalContribution, 0, len(ms))
	for _, m := range ms {
		goal.Contributions = append(goal.Contributions, toDomainContribution(m))
	}
	return goal, nil
}

func (r *PgxGoalRepository) LockGoalTx(ctx context.Context, tx pgx.Tx, goalID, userID int64) (*domain.Goal, error) {
	return r.findGoal(ctx, tx, `SELECT `+goalColumns+` FROM financial_goals WHERE id = $1 AND user_id = $2 FOR UPDATE`, goalID, userID)
}

func (r *PgxGoalRepository) findGoal(ctx context.Context, q querier, query string, goalID, userID int64) (*domain.Goal, error) {
	rows, err := q.Query(ctx, query, goalID, userID)
	if err != nil {
		return nil, mapReadError(err, "find goal")
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Goal])
	if err != nil {
		return nil, mapReadError(err, "find goal")
	}
	g := toDomainGoal(m)
	return &g, nil
}

func (r *PgxGoalRepository) CreateGoal(ctx context.Context, goal domain.Goal) (*domain.Goal, error) {
	created := goal
	err := r.Pool.QueryRow(ctx, `
		INSERT INTO financial_goals (user_id, account_id, name, description, target_amount, current_amount,
			currency_id, target_date, priority, is_achieved, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at`,
		goal.UserID,
		goal.AccountID,
		goal.Name,
		goal.Description,
		goal.TargetAmount,
		goal.CurrentAmount,
		goal.CurrencyID,
		goal.TargetDate,
		goal.Priority,
		goal.IsAchieved,
		goal.ImageURL,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, mapWriteError(err, "create goal")
	}
	return &created, nil
}

func (r *PgxGoalRepository) UpdateGoal(ctx context.Context, goal domain.Goal) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE financial_goals
		SET account_id = $3, name = $4, description = $5, target_amount = $6, current_amount = $7,
			currency_id = $8, target_date = $9, priority = $10, is_achieved = $11, image_url = $12,
			updated_at = NOW()
		WHERE id = $1 AND user_id = $2`,
		goal.ID,
		goal.UserID,
		goal.AccountID,
		goal.Name,
		goal.Description,
		goal.TargetAmount,
		goal.CurrentAmount,
		goal.CurrencyID,
		goal.TargetDate,
		goal.Priority,
		goal.IsAchieved,
		goal.ImageURL,
	)
	if err != nil {
		return mapWriteError(err, "update goal")
	}
	return expectOne(tag)
}

func (r *PgxGoalRepository) DeleteGoal(ctx context.Context, goalID, userID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM financial_goals WHERE id = $1 AND user_id = $2`, goalID, userID)
	if err != nil {
		return mapWriteError(err, "delete goal")
	}
	return expectOne(tag)
}

func (r *PgxGoalRepository) AddContributionTx(ctx context.Context, tx pgx.Tx, contribution domain.GoalContribution) (*domain.GoalContribution, error) {
	created := contribution
	err := tx.QueryRow(ctx, `
		INSERT INTO goal_contributions (goal_id, transaction_id, amount, contribution_date, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		contribution.GoalID,
		contribution.TransactionID,
		contribution.Amount,
		contribution.ContributionDate,
		contribution.Notes,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, mapWriteError(err, "add goal contribution")
	}
	return &created, nil
}

func (r *PgxGoalRepository) SaveProgressTx(ctx context.Context, tx pgx.Tx, goal domain.Goal) error {
	tag, err := tx.Exec(ctx, `
		UPDATE financial_goals SET current_amount = $2, is_achieved = $3, updated_at = NOW()
		WHERE id = $1`, goal.ID, goal.CurrentAmount, goal.IsAchieved)
	if err != nil {
		return mapWriteError(err, "save goal progress")
	}
	return expectOne(tag)
}

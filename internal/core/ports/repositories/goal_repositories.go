package repositories

import (
	"context"

	"github.com/SscSPs/personal_finance_api/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// GoalRepositoryWithTx persists savings goals and their contributions.
type GoalRepositoryWithTx interface {
	ListGoals(ctx context.Context, userID int64) ([]domain.Goal, error)
	// FindGoalByID returns the goal with its contributions.
	FindGoalByID(ctx context.Context, goalID, userID int64) (*domain.Goal, error)
	CreateGoal(ctx context.Context, goal domain.Goal) (*domain.Goal, error)
	UpdateGoal(ctx context.Context, goal domain.Goal) error
	DeleteGoal(ctx context.Context, goalID, userID int64) error
	LockGoalTx(ctx context.Context, tx pgx.Tx, goalID, userID int64) (*domain.Goal, error)
	AddContributionTx(ctx context.Context, tx pgx.Tx, contribution domain.GoalContribution) (*domain.GoalContribution, error)
	SaveProgressTx(ctx context.Context, tx pgx.Tx, goal domain.Goal) error
	TransactionManager
}

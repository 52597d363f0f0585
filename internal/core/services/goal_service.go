package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/personal_finance_api/internal/apperrors"
	"github.com/SscSPs/personal_finance_api/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/personal_finance_api/internal/core/ports/services"
)

type goalService struct {
	BaseService
	repo        portsrepo.GoalRepositoryWithTx
	accountRepo portsrepo.AccountReader
	sink        portssvc.NotificationSink
}

type GoalServiceOption func(*goalService)

// WithGoalNotificationSink makes the service announce goals that get achieved.
func WithGoalNotificationSink(sink portssvc.NotificationSink) GoalServiceOption {
	return func(s *goalService) { s.sink = sink }
}

func NewGoalService(repo portsrepo.GoalRepositoryWithTx, accountRepo portsrepo.AccountReader, options ...GoalServiceOption) portssvc.GoalSvc {
	svc := &goalService{repo: repo, accountRepo: accountRepo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.GoalSvc = (*goalService)(nil)

func (s *goalService) ListGoals(ctx context.Context, userID int64) ([]domain.Goal, error) {
	goals, err := s.repo.ListGoals(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list goals")
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}

func (s *goalService) GetGoal(ctx context.Context, goalID, userID int64) (*domain.Goal, error) {
	goal, err := s.repo.FindGoalByID(ctx, goalID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("goal not found")
		}
		s.LogError(ctx, err, "Failed to get goal", slog.Int64("goal_id", goalID))
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	return goal, nil
}

func (s *goalService) CreateGoal(ctx context.Context, goal domain.Goal) (*domain.Goal, error) {
	if err := s.checkAccount(ctx, goal); err != nil {
		return nil, err
	}
	goal.IsAchieved = goal.CurrentAmount.GreaterThanOrEqual(goal.TargetAmount)
	created, err := s.repo.CreateGoal(ctx, goal)
	if err != nil {
		s.LogError(ctx, err, "Failed to create goal", slog.String("name", goal.Name))
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}
	return created, nil
}

func (s *goalService) UpdateGoal(ctx context.Context, goalID int64, goal domain.Goal) (*domain.Goal, error) {
	if err := s.checkAccount(ctx, goal); err != nil {
		return nil, err
	}
	goal.ID = goalID
	goal.IsAchieved = goal.CurrentAmount.GreaterThanOrEqual(goal.TargetAmount)
	if err := s.repo.UpdateGoal(ctx, goal); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("goal not found")
		}
		s.LogError(ctx, err, "Failed to update goal", slog.Int64("goal_id", goalID))
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}
	return s.GetGoal(ctx, goalID, goal.UserID)
}

func (s *goalService) DeleteGoal(ctx context.Context, goalID, userID int64) error {
	if err := s.repo.DeleteGoal(ctx, goalID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("goal not found")
		}
		s.LogError(ctx, err, "Failed to delete goal", slog.Int64("goal_id", goalID))
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	return nil
}

// AddContribution records the contribution and advances the goal under a row lock.
func (s *goalService) AddContribution(ctx context.Context, userID int64, contribution domain.GoalContribution) (*domain.Goal, error) {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = s.repo.Rollback(ctx, tx) }()

	goal, err := s.repo.LockGoalTx(ctx, tx, contribution.GoalID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("goal not found")
		}
		return nil, fmt.Errorf("failed to lock goal: %w", err)
	}
	if _, err := s.repo.AddContributionTx(ctx, tx, contribution); err != nil {
		s.LogError(ctx, err, "Failed to add goal contribution", slog.Int64("goal_id", goal.ID))
		return nil, fmt.Errorf("failed to add contribution: %w", err)
	}

	wasAchieved := goal.IsAchieved
	goal.CurrentAmount = goal.CurrentAmount.Add(contribution.Amount)
	goal.IsAchieved = goal.CurrentAmount.GreaterThanOrEqual(goal.TargetAmount)
	if err := s.repo.SaveProgressTx(ctx, tx, *goal); err != nil {
		return nil, fmt.Errorf("failed to save goal progress: %w", err)
	}
	if err := s.repo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if goal.IsAchieved && !wasAchieved {
		s.LogInfo(ctx, "Goal achieved", slog.Int64("goal_id", goal.ID))
		if s.sink != nil {
			n := domain.Notification{
				UserID:            userID,
				Type:              domain.NotificationGoalAchieved,
				Title:             "Goal achieved",
				Message:           fmt.Sprintf("You reached your goal %q of %s", goal.Name, goal.TargetAmount.String()),
				RelatedEntityType: strPtr("financial_goal"),
				RelatedEntityID:   int64Ptr(goal.ID),
			}
			if err := s.sink.Notify(ctx, n); err != nil {
				s.LogError(ctx, err, "Failed to notify goal achievement", slog.Int64("goal_id", goal.ID))
			}
		}
	}
	return s.GetGoal(ctx, goal.ID, userID)
}

func (s *goalService) checkAccount(ctx context.Context, goal domain.Goal) error {
	if goal.AccountID == nil {
		return nil
	}
	if _, err := s.accountRepo.FindAccountByID(ctx, *goal.AccountID, goal.UserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewFieldError("accountId", "account not found")
		}
		return fmt.Errorf("failed to check account: %w", err)
	}
	return nil
}

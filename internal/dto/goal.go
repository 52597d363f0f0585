package dto

import (
	"time"

	"github.com/SscSPs/personal_finance_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GoalRequest is used for both create and full update of a goal.
type GoalRequest struct {
	AccountID     *int64           `json:"accountId" binding:"omitempty,gt=0"`
	Name          string           `json:"name" binding:"required,max=255"`
	Description   *string          `json:"description"`
	TargetAmount  *decimal.Decimal `json:"targetAmount" binding:"required,gt=0"`
	CurrentAmount *decimal.Decimal `json:"currentAmount" binding:"omitempty,min=0"`
	CurrencyID    int64            `json:"currencyId" binding:"required,gt=0"`
	TargetDate    *string          `json:"targetDate" binding:"omitempty,datetime=2006-01-02"`
	Priority      *int             `json:"priority" binding:"omitempty,min=0,max=10"`
	ImageURL      *string          `json:"imageUrl" binding:"omitempty,url,max=500"`
}

func (r GoalRequest) ToDomain(userID int64) (domain.Goal, error) {
	targetDate, err := parseOptionalDate("targetDate", r.TargetDate)
	if err != nil {
		return domain.Goal{}, err
	}
	g := domain.Goal{
		UserID:        userID,
		AccountID:     r.AccountID,
		Name:          r.Name,
		Description:   emptyToNil(r.Description),
		TargetAmount:  decimalOr(r.TargetAmount, decimal.Zero),
		CurrentAmount: decimalOr(r.CurrentAmount, decimal.Zero),
		CurrencyID:    r.CurrencyID,
		TargetDate:    targetDate,
		Priority:      intOr(r.Priority, 0),
		ImageURL:      emptyToNil(r.ImageURL),
	}
	g.IsAchieved = g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
	return g, nil
}

// ContributionRequest adds money to a goal.
type ContributionRequest struct {
	Amount           *decimal.Decimal `json:"amount" binding:"required,gt=0"`
	ContributionDate *string          `json:"contributionDate" binding:"omitempty,datetime=2006-01-02"`
	TransactionID    *int64           `json:"transactionId" binding:"omitempty,gt=0"`
	Notes            *string          `json:"notes"`
}

func (r ContributionRequest) ToDomain(goalID int64, now time.Time) (domain.GoalContribution, error) {
	date, err := parseOptionalDate("contributionDate", r.ContributionDate)
	if err != nil {
		return domain.GoalContribution{}, err
	}
	if date == nil {
		today := domain.DateOnly(now)
		date = &today
	}
	return domain.GoalContribution{
		GoalID:           goalID,
		TransactionID:    r.TransactionID,
		Amount:           decimalOr(r.Amount, decimal.Zero),
		ContributionDate: *date,
		Notes:            emptyToNil(r.Notes),
	}, nil
}

type ContributionResponse struct {
	ID               int64           `json:"id"`
	TransactionID    *int64          `json:"transactionId"`
	Amount           decimal.Decimal `json:"amount"`
	ContributionDate string          `json:"contributionDate"`
	Notes            *string         `json:"notes"`
	CreatedAt        time.Time       `json:"createdAt"`
}

type GoalResponse struct {
	ID            int64                  `json:"id"`
	AccountID     *int64                 `json:"accountId"`
	Name          string                 `json:"name"`
	Description   *string                `json:"description"`
	TargetAmount  decimal.Decimal        `json:"targetAmount"`
	CurrentAmount decimal.Decimal        `json:"currentAmount"`
	CurrencyID    int64                  `json:"currencyId"`
	TargetDate    *string                `json:"targetDate"`
	Priority      int                    `json:"priority"`
	IsAchieved    bool                   `json:"isAchieved"`
	ImageURL      *string                `json:"imageUrl"`
	Contributions []ContributionResponse `json:"contributions,omitempty"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
}

type ListGoalsResponse struct {
	Goals []GoalResponse `json:"goals"`
}

func ToContributionResponse(c *domain.GoalContribution) ContributionResponse {
	return ContributionResponse{
		ID:               c.ID,
		TransactionID:    c.TransactionID,
		Amount:           c.Amount,
		ContributionDate: domain.FormatDate(c.ContributionDate),
		Notes:            c.Notes,
		CreatedAt:        c.CreatedAt,
	}
}

func ToGoalResponse(g *domain.Goal) GoalResponse {
	resp := GoalResponse{
		ID:            g.ID,
		AccountID:     g.AccountID,
		Name:          g.Name,
		Description:   g.Description,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		CurrencyID:    g.CurrencyID,
		TargetDate:    domain.FormatDatePtr(g.TargetDate),
		Priority:      g.Priority,
		IsAchieved:    g.IsAchieved,
		ImageURL:      g.ImageURL,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
	for i := range g.Contributions {
		resp.Contributions = append(resp.Contributions, ToContributionResponse(&g.Contributions[i]))
	}
	return resp
}

func ToListGoalsResponse(goals []domain.Goal) ListGoalsResponse {
	out := make([]GoalResponse, len(goals))
	for i := range goals {
		out[i] = ToGoalResponse(&goals[i])
	}
	return ListGoalsResponse{Goals: out}
}

package dto

import (
	"errors"
	"net/http"
	"time"

	"github.com/SscSPs/personal_finance_api/internal/apperrors"
	"github.com/SscSPs/personal_finance_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecurringRequest is used for both create and full update of a recurring rule.
type RecurringRequest struct {
	AccountID        int64            `json:"accountId" binding:"required,gt=0"`
	CategoryID       *int64           `json:"categoryId" binding:"omitempty,gt=0"`
	PayeeID          *int64           `json:"payeeId" binding:"omitempty,gt=0"`
	PaymentMethodID  *int64           `json:"paymentMethodId" binding:"omitempty,gt=0"`
	TransactionType  string           `json:"transactionType" binding:"required,oneof=income expense transfer"`
	Amount           *decimal.Decimal `json:"amount" binding:"required,gt=0"`
	CurrencyID       int64            `json:"currencyId" binding:"required,gt=0"`
	Description      *string          `json:"description" binding:"omitempty,max=500"`
	Frequency        string           `json:"frequency" binding:"required,oneof=daily weekly monthly yearly"`
	IntervalValue    *int             `json:"intervalValue" binding:"omitempty,min=1"`
	StartDate        string           `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate          *string          `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	IsActive         *bool            `json:"isActive"`
	AutoCreate       *bool            `json:"autoCreate"`
	RemindBeforeDays *int             `json:"remindBeforeDays" binding:"omitempty,min=0,max=365"`
}

func (r RecurringRequest) ToDomain(userID int64) (domain.RecurringTransaction, error) {
	start, err := parseDate("startDate", r.StartDate)
	if err != nil {
		return domain.RecurringTransaction{}, err
	}
	end, err := parseOptionalDate("endDate", r.EndDate)
	if err != nil {
		return domain.RecurringTransaction{}, err
	}
	if end != nil && end.Before(start) {
		return domain.RecurringTransaction{}, apperrors.NewFieldError("endDate", "must not be before startDate")
	}
	return domain.RecurringTransaction{
		UserID:           userID,
		AccountID:        r.AccountID,
		CategoryID:       r.CategoryID,
		PayeeID:          r.PayeeID,
		PaymentMethodID:  r.PaymentMethodID,
		TransactionType:  domain.TransactionType(r.TransactionType),
		Amount:           decimalOr(r.Amount, decimal.Zero),
		CurrencyID:       r.CurrencyID,
		Description:      emptyToNil(r.Description),
		Frequency:        domain.Frequency(r.Frequency),
		IntervalValue:    intOr(r.IntervalValue, 1),
		StartDate:        start,
		EndDate:          end,
		IsActive:         boolOr(r.IsActive, true),
		AutoCreate:       boolOr(r.AutoCreate, false),
		RemindBeforeDays: intOr(r.RemindBeforeDays, 0),
	}, nil
}

// ProcessRecurringParams selects the day a manual scheduler pass runs for.
type ProcessRecurringParams struct {
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

// Today returns the requested day or the current UTC date.
func (p ProcessRecurringParams) Today(now time.Time) (time.Time, error) {
	if p.Date == "" {
		return domain.DateOnly(now.UTC()), nil
	}
	return parseDate("date", p.Date)
}

type RecurringResponse struct {
	ID                int64           `json:"id"`
	AccountID         int64           `json:"accountId"`
	CategoryID        *int64          `json:"categoryId"`
	PayeeID           *int64          `json:"payeeId"`
	PaymentMethodID   *int64          `json:"paymentMethodId"`
	TransactionType   string          `json:"transactionType"`
	Amount            decimal.Decimal `json:"amount"`
	CurrencyID        int64           `json:"currencyId"`
	Description       *string         `json:"description"`
	Frequency         string          `json:"frequency"`
	IntervalValue     int             `json:"intervalValue"`
	StartDate         string          `json:"startDate"`
	EndDate           *string         `json:"endDate"`
	NextDueDate       string          `json:"nextDueDate"`
	LastGeneratedDate *string         `json:"lastGeneratedDate"`
	LastRemindedDate  *string         `json:"lastRemindedDate"`
	IsActive          bool            `json:"isActive"`
	AutoCreate        bool            `json:"autoCreate"`
	RemindBeforeDays  int             `json:"remindBeforeDays"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

type ListRecurringResponse struct {
	RecurringTransactions []RecurringResponse `json:"recurringTransactions"`
}

func ToRecurringResponse(r *domain.RecurringTransaction) RecurringResponse {
	return RecurringResponse{
		ID:                r.ID,
		AccountID:         r.AccountID,
		CategoryID:        r.CategoryID,
		PayeeID:           r.PayeeID,
		PaymentMethodID:   r.PaymentMethodID,
		TransactionType:   string(r.TransactionType),
		Amount:            r.Amount,
		CurrencyID:        r.CurrencyID,
		Description:       r.Description,
		Frequency:         string(r.Frequency),
		IntervalValue:     r.IntervalValue,
		StartDate:         domain.FormatDate(r.StartDate),
		EndDate:           domain.FormatDatePtr(r.EndDate),
		NextDueDate:       domain.FormatDate(r.NextDueDate),
		LastGeneratedDate: domain.FormatDatePtr(r.LastGeneratedDate),
		LastRemindedDate:  domain.FormatDatePtr(r.LastRemindedDate),
		IsActive:          r.IsActive,
		AutoCreate:        r.AutoCreate,
		RemindBeforeDays:  r.RemindBeforeDays,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

func ToListRecurringResponse(rules []domain.RecurringTransaction) ListRecurringResponse {
	out := make([]RecurringResponse, len(rules))
	for i := range rules {
		out[i] = ToRecurringResponse(&rules[i])
	}
	return ListRecurringResponse{RecurringTransactions: out}
}

type RuleFailureResponse struct {
	RuleID int64  `json:"ruleId"`
	Error  string `json:"error"`
}

// ProcessResultResponse summarises a scheduler pass.
type ProcessResultResponse struct {
	Generated   int                   `json:"generated"`
	Reminded    int                   `json:"reminded"`
	Deactivated int                   `json:"deactivated"`
	Failed      []RuleFailureResponse `json:"failed"`
}

func ToProcessResultResponse(res *domain.ProcessResult) ProcessResultResponse {
	failed := make([]RuleFailureResponse, len(res.Failed))
	for i, f := range res.Failed {
		failed[i] = RuleFailureResponse{RuleID: f.RuleID, Error: ruleFailureMessage(f.Err)}
	}
	return ProcessResultResponse{
		Generated:   res.Generated,
		Reminded:    res.Reminded,
		Deactivated: res.Deactivated,
		Failed:      failed,
	}
}

// ruleFailureMessage keeps client-safe explanations and hides everything else.
func ruleFailureMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Code < http.StatusInternalServerError {
		return appErr.Message
	}
	var valErr *apperrors.ValidationError
	if errors.As(err, &valErr) && len(valErr.Fields) > 0 {
		return valErr.Fields[0].Field + ": " + valErr.Fields[0].Message
	}
	if errors.Is(err, apperrors.ErrValidation) {
		return "rule references data that is no longer valid"
	}
	return "internal error"
}

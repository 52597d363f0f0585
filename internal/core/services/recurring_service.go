package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/personal_finance_api/internal/apperrors"
	"github.com/SscSPs/personal_finance_api/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/personal_finance_api/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_api/internal/utils"
	"github.com/SscSPs/personal_finance_api/internal/utils/recurrence"
)

const relatedRecurring = "recurring_transaction"

type recurringService struct {
	BaseService
	repo          portsrepo.RecurringRepositoryWithTx
	accountRepo   portsrepo.AccountRepositoryFacade
	categoryRepo  portsrepo.CategoryRepository
	txnRepo       portsrepo.TransactionWriter
	sink          portssvc.NotificationSink
	policy        ReminderPolicy
	maxCatchUp    int
	processOnList bool
}

// RecurringServiceOption configures the recurring service.
type RecurringServiceOption func(*recurringService)

// WithNotificationSink sets where reminders are delivered. Without a sink no
// reminders are raised.
func WithNotificationSink(sink portssvc.NotificationSink) RecurringServiceOption {
	return func(s *recurringService) { s.sink = sink }
}

func WithReminderPolicy(policy ReminderPolicy) RecurringServiceOption {
	return func(s *recurringService) { s.policy = policy }
}

// WithMaxCatchUp caps how many overdue cycles of one rule a single pass generates.
func WithMaxCatchUp(n int) RecurringServiceOption {
	return func(s *recurringService) {
		if n > 0 {
			s.maxCatchUp = n
		}
	}
}

func WithProcessOnList(enabled bool) RecurringServiceOption {
	return func(s *recurringService) { s.processOnList = enabled }
}

func NewRecurringService(
	repo portsrepo.RecurringRepositoryWithTx,
	accountRepo portsrepo.AccountRepositoryFacade,
	categoryRepo portsrepo.CategoryRepository,
	txnRepo portsrepo.TransactionWriter,
	options ...RecurringServiceOption,
) portssvc.RecurringSvcFacade {
	svc := &recurringService{
		repo:         repo,
		accountRepo:  accountRepo,
		categoryRepo: categoryRepo,
		txnRepo:      txnRepo,
		policy:       OncePerCycle{},
		maxCatchUp:   12,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.RecurringSvcFacade = (*recurringService)(nil)

func (s *recurringService) ProcessOnList() bool { return s.processOnList }

func (s *recurringService) ListRecurring(ctx context.Context, userID int64) ([]domain.RecurringTransaction, error) {
	rules, err := s.repo.ListRecurring(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recurring transactions")
		return nil, fmt.Errorf("failed to list recurring transactions: %w", err)
	}
	return rules, nil
}

func (s *recurringService) GetRecurring(ctx context.Context, ruleID, userID int64) (*domain.RecurringTransaction, error) {
	rule, err := s.repo.FindRecurringByID(ctx, ruleID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("recurring transaction not found")
		}
		s.LogError(ctx, err, "Failed to get recurring transaction", slog.Int64("rule_id", ruleID))
		return nil, fmt.Errorf("failed to get recurring transaction: %w", err)
	}
	return rule, nil
}

func (s *recurringService) CreateRecurring(ctx context.Context, rule domain.RecurringTransaction) (*domain.RecurringTransaction, error) {
	if err := s.checkReferences(ctx, rule); err != nil {
		return nil, err
	}
	rule.LastGeneratedDate = nil
	rule.LastRemindedDate = nil
	if err := s.schedule(&rule); err != nil {
		return nil, err
	}

	created, err := s.repo.CreateRecurring(ctx, rule)
	if err != nil {
		s.LogError(ctx, err, "Failed to create recurring transaction")
		return nil, fmt.Errorf("failed to create recurring transaction: %w", err)
	}
	s.LogInfo(ctx, "Recurring transaction created",
		slog.Int64("rule_id", created.ID),
		slog.String("next_due_date", domain.FormatDate(created.NextDueDate)))
	return created, nil
}

// UpdateRecurring replaces the rule. The due date is recomputed from the start
// date when the schedule (start, frequency or interval) changes.
func (s *recurringService) UpdateRecurring(ctx context.Context, ruleID int64, rule domain.RecurringTransaction) (*domain.RecurringTransaction, error) {
	existing, err := s.GetRecurring(ctx, ruleID, rule.UserID)
	if err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, rule); err != nil {
		return nil, err
	}

	rule.ID = ruleID
	rule.LastGeneratedDate = existing.LastGeneratedDate
	rule.LastRemindedDate = existing.LastRemindedDate
	rule.NextDueDate = existing.NextDueDate

	scheduleChanged := !rule.StartDate.Equal(existing.StartDate) ||
		rule.Frequency != existing.Frequency ||
		rule.IntervalValue != existing.IntervalValue
	if scheduleChanged || rule.NextDueDate.Before(rule.StartDate) {
		if err := s.schedule(&rule); err != nil {
			return nil, err
		}
	} else if recurrence.Expired(rule) {
		rule.IsActive = false
	}

	if err := s.repo.UpdateRecurring(ctx, rule); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("recurring transaction not found")
		}
		s.LogError(ctx, err, "Failed to update recurring transaction", slog.Int64("rule_id", ruleID))
		return nil, fmt.Errorf("failed to update recurring transaction: %w", err)
	}
	return s.GetRecurring(ctx, ruleID, rule.UserID)
}

func (s *recurringService) DeleteRecurring(ctx context.Context, ruleID, userID int64) error {
	if err := s.repo.DeleteRecurring(ctx, ruleID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("recurring transaction not found")
		}
		s.LogError(ctx, err, "Failed to delete recurring transaction", slog.Int64("rule_id", ruleID))
		return fmt.Errorf("failed to delete recurring transaction: %w", err)
	}
	return nil
}

// ProcessDue runs one scheduler pass. Due auto-create rules are materialized,
// rules in their reminder window are reminded according to the policy, and
// rules past their end date are deactivated. Due rules without auto-create are
// left for the user to record by hand.
func (s *recurringService) ProcessDue(ctx context.Context, userID *int64, today time.Time) (*domain.ProcessResult, error) {
	today = domain.DateOnly(today)
	rules, err := s.repo.ListActionable(ctx, userID, today)
	if err != nil {
		s.LogError(ctx, err, "Failed to list actionable recurring transactions")
		return nil, fmt.Errorf("failed to list actionable recurring transactions: %w", err)
	}

	result := &domain.ProcessResult{Failed: []domain.RuleFailure{}}
	for _, rule := range rules {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		switch {
		case recurrence.Expired(rule):
			if err := s.repo.Deactivate(ctx, rule.ID); err != nil {
				s.fail(ctx, result, rule, err, userID == nil)
				continue
			}
			result.Deactivated++

		case recurrence.IsDue(rule, today) && rule.AutoCreate:
			generated, deactivated, err := s.materialize(ctx, rule, today)
			if err != nil {
				s.fail(ctx, result, rule, err, userID == nil)
				continue
			}
			result.Generated += generated
			if deactivated {
				result.Deactivated++
			}

		case recurrence.InReminderWindow(rule, today) && s.sink != nil && s.policy.ShouldRemind(rule, today):
			if err := s.remind(ctx, rule, today); err != nil {
				s.fail(ctx, result, rule, err, userID == nil)
				continue
			}
			result.Reminded++
		}
	}

	s.LogInfo(ctx, "Recurring transactions processed",
		slog.String("date", domain.FormatDate(today)),
		slog.Int("rules", len(rules)),
		slog.Int("generated", result.Generated),
		slog.Int("reminded", result.Reminded),
		slog.Int("deactivated", result.Deactivated),
		slog.Int("failed", len(result.Failed)))
	return result, nil
}

// materialize generates every due cycle of one rule inside a single database
// transaction. The rule row is locked and re-checked first, so concurrent passes
// never generate the same cycle twice. Any error rolls back the whole rule.
func (s *recurringService) materialize(ctx context.Context, candidate domain.RecurringTransaction, today time.Time) (int, bool, error) {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return 0, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = s.repo.Rollback(ctx, tx) }()

	rule, err := s.repo.LockRecurringTx(ctx, tx, candidate.ID, candidate.UserID)
	if err != nil {
		return 0, false, fmt.Errorf("failed to lock rule: %w", err)
	}
	if !rule.AutoCreate || !recurrence.IsDue(*rule, today) {
		return 0, false, s.repo.Commit(ctx, tx)
	}

	account, err := s.accountRepo.FindAccountByIDTx(ctx, tx, rule.AccountID, rule.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return 0, false, apperrors.NewBadRequestError(fmt.Sprintf("account %d is no longer available", rule.AccountID))
		}
		return 0, false, fmt.Errorf("failed to load account: %w", err)
	}
	if rule.CategoryID != nil {
		visible, err := s.categoryRepo.CategoryVisibleTx(ctx, tx, *rule.CategoryID, rule.UserID)
		if err != nil {
			return 0, false, fmt.Errorf("failed to check category: %w", err)
		}
		if !visible {
			return 0, false, apperrors.NewBadRequestError(fmt.Sprintf("category %d is no longer available", *rule.CategoryID))
		}
	}

	generated := 0
	for i := 0; i < s.maxCatchUp && recurrence.IsDue(*rule, today); i++ {
		txn := rule.NewTransaction()
		utils.NormalizeTransaction(&txn, *account)

		inserted, err := s.txnRepo.CreateGeneratedTx(ctx, tx, txn)
		if err != nil {
			return 0, false, fmt.Errorf("failed to generate transaction for %s: %w", domain.FormatDate(txn.TransactionDate), err)
		}
		if inserted {
			generated++
		}

		dueDate := rule.NextDueDate
		rule.LastGeneratedDate = &dueDate
		next, err := recurrence.Next(*rule)
		if err != nil {
			return 0, false, err
		}
		rule.NextDueDate = next
	}

	deactivated := false
	if recurrence.Expired(*rule) {
		rule.IsActive = false
		deactivated = true
	}

	if err := s.repo.SaveScheduleTx(ctx, tx, *rule); err != nil {
		return 0, false, fmt.Errorf("failed to save schedule: %w", err)
	}
	if err := s.repo.Commit(ctx, tx); err != nil {
		return 0, false, fmt.Errorf("failed to commit: %w", err)
	}
	return generated, deactivated, nil
}

func (s *recurringService) remind(ctx context.Context, rule domain.RecurringTransaction, today time.Time) error {
	if err := s.sink.Notify(ctx, reminderNotification(rule)); err != nil {
		return fmt.Errorf("failed to deliver reminder: %w", err)
	}
	if err := s.repo.MarkReminded(ctx, rule.ID, today); err != nil {
		return fmt.Errorf("failed to record reminder: %w", err)
	}
	return nil
}

// fail records a failed rule. Sweeps across all users also notify the owner,
// since nobody sees the pass result.
func (s *recurringService) fail(ctx context.Context, result *domain.ProcessResult, rule domain.RecurringTransaction, err error, notifyOwner bool) {
	s.LogError(ctx, err, "Failed to process recurring transaction",
		slog.Int64("rule_id", rule.ID),
		slog.Int64("user_id", rule.UserID))
	result.Failed = append(result.Failed, domain.RuleFailure{RuleID: rule.ID, Err: err})

	if !notifyOwner || s.sink == nil {
		return
	}
	n := domain.Notification{
		UserID:            rule.UserID,
		Type:              domain.NotificationRecurringFailed,
		Title:             "Recurring transaction could not be processed",
		Message:           fmt.Sprintf("%s due on %s: %v", describeRule(rule), domain.FormatDate(rule.NextDueDate), err),
		RelatedEntityType: strPtr(relatedRecurring),
		RelatedEntityID:   int64Ptr(rule.ID),
	}
	if nerr := s.sink.Notify(ctx, n); nerr != nil {
		s.LogError(ctx, nerr, "Failed to notify about failed recurring transaction", slog.Int64("rule_id", rule.ID))
	}
}

// schedule sets the next due date of a rule whose schedule was (re)defined.
func (s *recurringService) schedule(rule *domain.RecurringTransaction) error {
	if rule.IntervalValue < 1 {
		return apperrors.NewFieldError("intervalValue", "must be at least 1")
	}
	next, err := recurrence.InitialDueDate(*rule)
	if err != nil {
		return apperrors.NewFieldError("frequency", err.Error())
	}
	rule.NextDueDate = next
	if recurrence.Expired(*rule) {
		rule.IsActive = false
	}
	return nil
}

func (s *recurringService) checkReferences(ctx context.Context, rule domain.RecurringTransaction) error {
	var fields []apperrors.FieldError
	if _, err := s.accountRepo.FindAccountByID(ctx, rule.AccountID, rule.UserID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("failed to check account: %w", err)
		}
		return apperrors.NewNotFoundError("account not found")
	}
	if rule.CategoryID != nil {
		if _, err := s.categoryRepo.FindVisibleCategory(ctx, *rule.CategoryID, rule.UserID); err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("failed to check category: %w", err)
			}
			fields = append(fields, apperrors.FieldError{Field: "categoryId", Message: "category not found"})
		}
	}
	if len(fields) > 0 {
		return &apperrors.ValidationError{Fields: fields}
	}
	return nil
}

func reminderNotification(rule domain.RecurringTransaction) domain.Notification {
	return domain.Notification{
		UserID:            rule.UserID,
		Type:              domain.NotificationRecurringReminder,
		Title:             "Upcoming recurring transaction",
		Message:           fmt.Sprintf("%s is due on %s", describeRule(rule), domain.FormatDate(rule.NextDueDate)),
		RelatedEntityType: strPtr(relatedRecurring),
		RelatedEntityID:   int64Ptr(rule.ID),
	}
}

func describeRule(rule domain.RecurringTransaction) string {
	label := string(rule.TransactionType)
	if rule.Description != nil && *rule.Description != "" {
		label = *rule.Description
	}
	return fmt.Sprintf("%s (%s)", label, rule.Amount.String())
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

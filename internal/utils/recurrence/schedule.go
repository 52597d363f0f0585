// Package recurrence computes due dates for recurring transaction rules.
//
// Month and year steps are anchored on the rule's start date: the day of month
// (and month, for yearly rules) is taken from the start date and clamped to the
// last day of the target month when that month is shorter. A rule starting on
// Jan 31 is due Feb 29 (leap year), Mar 31, Apr 30, ... and never drifts.
package recurrence

import (
	"fmt"
	"time"

	"github.com/SscSPs/personal_finance_api/internal/core/domain"
)

// NextDueDate returns the due date following from for the given frequency.
func NextDueDate(from time.Time, freq domain.Frequency, interval int, anchor time.Time) (time.Time, error) {
	if interval < 1 {
		return time.Time{}, fmt.Errorf("interval must be at least 1, got %d", interval)
	}
	from = domain.DateOnly(from)
	switch freq {
	case domain.FrequencyDaily:
		return from.AddDate(0, 0, interval), nil
	case domain.FrequencyWeekly:
		return from.AddDate(0, 0, 7*interval), nil
	case domain.FrequencyMonthly:
		return addMonthsClamped(from, interval, anchor.Day()), nil
	case domain.FrequencyYearly:
		return clampedDate(from.Year()+interval, anchor.Month(), anchor.Day()), nil
	default:
		return time.Time{}, fmt.Errorf("unsupported frequency %q", freq)
	}
}

// Next advances a rule from its current due date.
func Next(rule domain.RecurringTransaction) (time.Time, error) {
	return NextDueDate(rule.NextDueDate, rule.Frequency, rule.IntervalValue, rule.StartDate)
}

// InitialDueDate is the due date of a rule whose schedule was (re)defined:
// the start date, or the step after the last generated date when that is later.
func InitialDueDate(rule domain.RecurringTransaction) (time.Time, error) {
	start := domain.DateOnly(rule.StartDate)
	if rule.LastGeneratedDate == nil || rule.LastGeneratedDate.Before(start) {
		return start, nil
	}
	next, err := NextDueDate(*rule.LastGeneratedDate, rule.Frequency, rule.IntervalValue, start)
	if err != nil {
		return time.Time{}, err
	}
	if next.Before(start) {
		return start, nil
	}
	return next, nil
}

// Expired reports whether the rule's next due date lies past its end date.
func Expired(rule domain.RecurringTransaction) bool {
	return rule.EndDate != nil && rule.NextDueDate.After(domain.DateOnly(*rule.EndDate))
}

// IsDue reports whether a transaction instance should exist for the current cycle.
func IsDue(rule domain.RecurringTransaction, today time.Time) bool {
	return rule.IsActive && !rule.NextDueDate.After(domain.DateOnly(today)) && !Expired(rule)
}

// ReminderWindowStart is the first day a reminder may be raised for the current cycle.
func ReminderWindowStart(rule domain.RecurringTransaction) time.Time {
	return rule.NextDueDate.AddDate(0, 0, -rule.RemindBeforeDays)
}

// InReminderWindow reports whether today falls in the reminder window of a
// cycle that is not yet due.
func InReminderWindow(rule domain.RecurringTransaction, today time.Time) bool {
	if rule.RemindBeforeDays <= 0 || !rule.IsActive || Expired(rule) {
		return false
	}
	today = domain.DateOnly(today)
	return today.Before(rule.NextDueDate) && !today.Before(ReminderWindowStart(rule))
}

func addMonthsClamped(t time.Time, months int, day int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	return clampedDate(first.Year(), first.Month(), day)
}

func clampedDate(year int, month time.Month, day int) time.Time {
	if last := daysIn(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

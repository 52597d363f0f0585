package recurrence_test

import (
	"testing"
	"time"

	"github.com/SscSPs/personal_finance_api/internal/core/domain"
	"github.com/SscSPs/personal_finance_api/internal/utils/recurrence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestNextDueDate(t *testing.T) {
	tests := []struct {
		name     string
		from     time.Time
		freq     domain.Frequency
		interval int
		anchor   time.Time
		want     time.Time
	}{
		{"daily", date(2024, 2, 28), domain.FrequencyDaily, 1, date(2024, 1, 1), date(2024, 2, 29)},
		{"every three days", date(2024, 12, 30), domain.FrequencyDaily, 3, date(2024, 1, 1), date(2025, 1, 2)},
		{"weekly", date(2024, 1, 1), domain.FrequencyWeekly, 1, date(2024, 1, 1), date(2024, 1, 8)},
		{"biweekly", date(2024, 1, 1), domain.FrequencyWeekly, 2, date(2024, 1, 1), date(2024, 1, 15)},
		{"monthly keeps day", date(2024, 1, 15), domain.FrequencyMonthly, 1, date(2024, 1, 15), date(2024, 2, 15)},
		{"monthly clamps to leap february", date(2024, 1, 31), domain.FrequencyMonthly, 1, date(2024, 1, 31), date(2024, 2, 29)},
		{"monthly clamps to short february", date(2023, 1, 31), domain.FrequencyMonthly, 1, date(2023, 1, 31), date(2023, 2, 28)},
		{"monthly returns to anchor day", date(2024, 2, 29), domain.FrequencyMonthly, 1, date(2024, 1, 31), date(2024, 3, 31)},
		{"monthly clamps to 30 day month", date(2024, 3, 31), domain.FrequencyMonthly, 1, date(2024, 1, 31), date(2024, 4, 30)},
		{"quarterly across year end", date(2024, 11, 30), domain.FrequencyMonthly, 3, date(2024, 8, 30), date(2025, 2, 28)},
		{"yearly", date(2024, 6, 1), domain.FrequencyYearly, 1, date(2024, 6, 1), date(2025, 6, 1)},
		{"yearly leap day clamps", date(2024, 2, 29), domain.FrequencyYearly, 1, date(2024, 2, 29), date(2025, 2, 28)},
		{"yearly leap day restored", date(2027, 2, 28), domain.FrequencyYearly, 1, date(2024, 2, 29), date(2028, 2, 29)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := recurrence.NextDueDate(tt.from, tt.freq, tt.interval, tt.anchor)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextDueDate_Errors(t *testing.T) {
	_, err := recurrence.NextDueDate(date(2024, 1, 1), domain.FrequencyDaily, 0, date(2024, 1, 1))
	assert.Error(t, err)

	_, err = recurrence.NextDueDate(date(2024, 1, 1), domain.Frequency("hourly"), 1, date(2024, 1, 1))
	assert.Error(t, err)
}

func TestNext_MonthlyFromJan31PinsClampPolicy(t *testing.T) {
	rule := domain.RecurringTransaction{
		Frequency:     domain.FrequencyMonthly,
		IntervalValue: 1,
		StartDate:     date(2024, 1, 31),
		NextDueDate:   date(2024, 1, 31),
	}

	want := []time.Time{date(2024, 2, 29), date(2024, 3, 31), date(2024, 4, 30), date(2024, 5, 31)}
	for _, w := range want {
		next, err := recurrence.Next(rule)
		require.NoError(t, err)
		assert.Equal(t, w, next)
		rule.NextDueDate = next
	}
}

func TestInitialDueDate(t *testing.T) {
	rule := domain.RecurringTransaction{
		Frequency:     domain.FrequencyMonthly,
		IntervalValue: 1,
		StartDate:     date(2024, 1, 10),
	}
	got, err := recurrence.InitialDueDate(rule)
	require.NoError(t, err)
	assert.Equal(t, date(2024, 1, 10), got)

	rule.LastGeneratedDate = datePtr(2024, 3, 10)
	got, err = recurrence.InitialDueDate(rule)
	require.NoError(t, err)
	assert.Equal(t, date(2024, 4, 10), got)

	rule.StartDate = date(2024, 6, 1)
	got, err = recurrence.InitialDueDate(rule)
	require.NoError(t, err)
	assert.Equal(t, date(2024, 6, 1), got, "never earlier than the start date")
}

func TestIsDue(t *testing.T) {
	base := domain.RecurringTransaction{
		IsActive:    true,
		NextDueDate: date(2024, 3, 10),
	}
	today := date(2024, 3, 10)

	assert.True(t, recurrence.IsDue(base, today), "due on the day")
	assert.True(t, recurrence.IsDue(base, today.AddDate(0, 0, 5)), "overdue is still due")
	assert.False(t, recurrence.IsDue(base, today.AddDate(0, 0, -1)), "not due the day before")

	inactive := base
	inactive.IsActive = false
	assert.False(t, recurrence.IsDue(inactive, today))

	ended := base
	ended.EndDate = datePtr(2024, 3, 9)
	assert.False(t, recurrence.IsDue(ended, today))
	assert.True(t, recurrence.Expired(ended))

	endsToday := base
	endsToday.EndDate = datePtr(2024, 3, 10)
	assert.True(t, recurrence.IsDue(endsToday, today))
}

func TestInReminderWindow(t *testing.T) {
	rule := domain.RecurringTransaction{
		IsActive:         true,
		NextDueDate:      date(2024, 3, 10),
		RemindBeforeDays: 3,
	}

	assert.False(t, recurrence.InReminderWindow(rule, date(2024, 3, 6)))
	assert.True(t, recurrence.InReminderWindow(rule, date(2024, 3, 7)))
	assert.True(t, recurrence.InReminderWindow(rule, date(2024, 3, 9)))
	assert.False(t, recurrence.InReminderWindow(rule, date(2024, 3, 10)), "due cycles are materialized, not reminded")

	rule.RemindBeforeDays = 0
	assert.False(t, recurrence.InReminderWindow(rule, date(2024, 3, 9)))
}

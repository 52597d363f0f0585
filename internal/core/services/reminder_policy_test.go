package services_test

import (
	"testing"
	"time"

	"github.com/SscSPs/personal_finance_api/internal/core/domain"
	"github.com/SscSPs/personal_finance_api/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderPolicies(t *testing.T) {
	base := domain.RecurringTransaction{
		NextDueDate:      date(2024, 3, 31),
		RemindBeforeDays: 5,
		IsActive:         true,
	}
	withReminder := func(on *time.Time) domain.RecurringTransaction {
		r := base
		r.LastRemindedDate = on
		return r
	}
	today := date(2024, 3, 29)

	tests := []struct {
		name   string
		policy string
		rule   domain.RecurringTransaction
		want   bool
	}{
		{"once per cycle, never reminded", "once_per_cycle", withReminder(nil), true},
		{"once per cycle, reminded in this window", "once_per_cycle", withReminder(datePtr(2024, 3, 26)), false},
		{"once per cycle, reminded last cycle", "once_per_cycle", withReminder(datePtr(2024, 2, 25)), true},
		{"daily, reminded yesterday", "daily", withReminder(datePtr(2024, 3, 28)), true},
		{"daily, reminded today", "daily", withReminder(datePtr(2024, 3, 29)), false},
		{"always", "always", withReminder(datePtr(2024, 3, 29)), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy, err := services.GetReminderPolicy(tt.policy)
			require.NoError(t, err)
			assert.Equal(t, tt.want, policy.ShouldRemind(tt.rule, today))
		})
	}
}

func TestGetReminderPolicy(t *testing.T) {
	policy, err := services.GetReminderPolicy("")
	require.NoError(t, err)
	assert.IsType(t, services.OncePerCycle{}, policy)

	_, err = services.GetReminderPolicy("hourly")
	assert.Error(t, err)

	assert.Contains(t, services.ReminderPolicyNames(), "daily")
}

package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/personal_finance_api/internal/core/domain"
	"github.com/SscSPs/personal_finance_api/internal/utils/recurrence"
)

// ReminderPolicy decides whether a rule inside its reminder window should be
// reminded about again on a given day.
type ReminderPolicy interface {
	ShouldRemind(rule domain.RecurringTransaction, today time.Time) bool
}

// OncePerCycle reminds once per due cycle: only when no reminder was raised
// since the current cycle's reminder window opened.
type OncePerCycle struct{}

func (OncePerCycle) ShouldRemind(rule domain.RecurringTransaction, _ time.Time) bool {
	if rule.LastRemindedDate == nil {
		return true
	}
	return domain.DateOnly(*rule.LastRemindedDate).Before(recurrence.ReminderWindowStart(rule))
}

// Daily reminds at most once per calendar day while the window is open.
type Daily struct{}

func (Daily) ShouldRemind(rule domain.RecurringTransaction, today time.Time) bool {
	if rule.LastRemindedDate == nil {
		return true
	}
	return domain.DateOnly(*rule.LastRemindedDate).Before(domain.DateOnly(today))
}

// Always reminds on every pass.
type Always struct{}

func (Always) ShouldRemind(domain.RecurringTransaction, time.Time) bool { return true }

const DefaultReminderPolicy = "once_per_cycle"

var reminderPolicies = map[string]ReminderPolicy{
	DefaultReminderPolicy: OncePerCycle{},
	"daily":               Daily{},
	"always":              Always{},
}

// GetReminderPolicy returns the registered policy with the given name.
// An empty name selects the default.
func GetReminderPolicy(name string) (ReminderPolicy, error) {
	if name == "" {
		name = DefaultReminderPolicy
	}
	policy, ok := reminderPolicies[name]
	if !ok {
		return nil, fmt.Errorf("unknown reminder policy %q (known: %v)", name, ReminderPolicyNames())
	}
	return policy, nil
}

// RegisterReminderPolicy adds or replaces a named policy.
func RegisterReminderPolicy(name string, policy ReminderPolicy) {
	reminderPolicies[name] = policy
}

func ReminderPolicyNames() []string {
	names := make([]string, 0, len(reminderPolicies))
	for name := range reminderPolicies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

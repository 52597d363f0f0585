// Package budgeting holds the pure arithmetic behind budget spend tracking.
package budgeting

import (
	"time"

	"github.com/SscSPs/personal_finance_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// SpendWindow returns the inclusive date window [start, min(end ?? asOf, asOf)].
// ok is false when the window is empty, i.e. the budget starts after asOf.
func SpendWindow(start time.Time, end *time.Time, asOf time.Time) (from, to time.Time, ok bool) {
	from = domain.DateOnly(start)
	to = domain.DateOnly(asOf)
	if end != nil {
		if e := domain.DateOnly(*end); e.Before(to) {
			to = e
		}
	}
	return from, to, !to.Before(from)
}

// Percentage returns spent as a percentage of amount, rounded to two places.
// A non-positive amount yields zero.
func Percentage(spent, amount decimal.Decimal) decimal.Decimal {
	if !amount.IsPositive() {
		return decimal.Zero
	}
	return spent.Div(amount).Mul(hundred).Round(2)
}

// SpendFilterFor builds the transaction predicate for a budget evaluated at asOf.
func SpendFilterFor(b domain.Budget, asOf time.Time) (domain.SpendFilter, bool) {
	from, to, ok := SpendWindow(b.StartDate, b.EndDate, asOf)
	return domain.SpendFilter{
		UserID:     b.UserID,
		CategoryID: b.CategoryID,
		AccountIDs: b.AccountIDs,
		From:       from,
		To:         to,
	}, ok
}

// Evaluate derives the spend state of a budget from the summed spend.
func Evaluate(b domain.Budget, spent decimal.Decimal) domain.BudgetSpend {
	pct := Percentage(spent, b.Amount)
	return domain.BudgetSpend{
		Spent:          spent,
		Percentage:     pct,
		AlertTriggered: spent.IsPositive() && pct.GreaterThanOrEqual(b.AlertThreshold),
	}
}

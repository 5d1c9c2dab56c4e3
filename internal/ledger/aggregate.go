// Package ledger derives summary figures from snapshots of entries.
//
// Every function is pure: inputs are never mutated and no state is kept
// between calls. Division by zero is reported through ErrDivisionByZero and
// never surfaces as NaN or Inf.
package ledger

import (
	"errors"

	"github.com/shopspring/decimal"

	"sakura/internal/core"
)

// Status is the budget health tier.
type Status string

const (
	Good    Status = "good"
	Warning Status = "warning"
	Danger  Status = "danger"
)

var ErrDivisionByZero = errors.New("division by zero")

var hundred = decimal.NewFromInt(100)

// Tier thresholds in percent of the limit; boundaries belong to the
// stricter tier.
var (
	dangerPercent  = decimal.NewFromInt(90)
	warningPercent = decimal.NewFromInt(70)
)

// TotalOf sums the value of every entry. An empty slice totals zero.
func TotalOf[E core.Entry](entries []E) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Value())
	}
	return total
}

// TotalByCategory sums the entries whose category equals category.
// Unknown categories total zero.
func TotalByCategory[E core.Entry](entries []E, category string) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if e.Category() == category {
			total = total.Add(e.Value())
		}
	}
	return total
}

// PercentOfGoal returns achieved / goal × 100, unclamped.
func PercentOfGoal(achieved, goal decimal.Decimal) (decimal.Decimal, error) {
	if goal.IsZero() {
		return decimal.Zero, ErrDivisionByZero
	}
	return achieved.Mul(hundred).Div(goal), nil
}

// ClampPercent bounds p to [0, 100] for progress bar widths.
func ClampPercent(p decimal.Decimal) decimal.Decimal {
	if p.IsNegative() {
		return decimal.Zero
	}
	if p.GreaterThan(hundred) {
		return hundred
	}
	return p
}

// ProfitLossResult summarizes a portfolio.
type ProfitLossResult struct {
	Invested decimal.Decimal
	Current  decimal.Decimal
	Absolute decimal.Decimal
	Percent  decimal.Decimal
}

// ProfitLoss computes Σ current − Σ invested and its percentage of the
// invested total. When nothing is invested the absolute figures are still
// returned together with ErrDivisionByZero.
func ProfitLoss(investments []core.Investment) (ProfitLossResult, error) {
	var r ProfitLossResult
	r.Invested = TotalOf(investments)
	r.Current = decimal.Zero
	for _, v := range investments {
		r.Current = r.Current.Add(v.CurrentValue())
	}
	r.Absolute = r.Current.Sub(r.Invested)
	if r.Invested.IsZero() {
		r.Percent = decimal.Zero
		return r, ErrDivisionByZero
	}
	r.Percent = r.Absolute.Mul(hundred).Div(r.Invested)
	return r, nil
}

// BudgetStatus classifies spent against limit: danger at 90% or more,
// warning at 70% or more, good otherwise.
func BudgetStatus(spent, limit decimal.Decimal) (Status, error) {
	if limit.IsZero() {
		return "", ErrDivisionByZero
	}
	// spent/limit >= p/100  <=>  spent*100 >= limit*p  (limit > 0)
	scaled := spent.Mul(hundred)
	switch {
	case scaled.GreaterThanOrEqual(limit.Mul(dangerPercent)):
		return Danger, nil
	case scaled.GreaterThanOrEqual(limit.Mul(warningPercent)):
		return Warning, nil
	default:
		return Good, nil
	}
}

// Savings returns income − expenses.
func Savings(income, expenses decimal.Decimal) decimal.Decimal {
	return income.Sub(expenses)
}

// SavingsRate returns savings as a percentage of income.
func SavingsRate(savings, income decimal.Decimal) (decimal.Decimal, error) {
	return PercentOfGoal(savings, income)
}

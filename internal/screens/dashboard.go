package screens

import (
	"errors"

	"github.com/shopspring/decimal"

	"sakura/internal/core"
	"sakura/internal/ledger"
)

// DashboardSummary is the overview page. Expenses covers every outflow:
// expenses, beauty spend and gifts.
type DashboardSummary struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Savings  decimal.Decimal
	Goal     decimal.Decimal

	// SavingsRate and GoalProgress are invalid when their divisor is zero.
	SavingsRate  decimal.NullDecimal
	GoalProgress decimal.NullDecimal
	// GoalBarWidth is GoalProgress clamped to [0, 100]; zero when invalid.
	GoalBarWidth decimal.Decimal

	Preview []PreviewCategory
}

// PreviewCategory is one tile of the category strip.
type PreviewCategory struct {
	Name   string
	Emoji  string
	Amount decimal.Decimal
}

func nullable(v decimal.Decimal, err error) (decimal.NullDecimal, error) {
	if errors.Is(err, ledger.ErrDivisionByZero) {
		return decimal.NullDecimal{}, nil
	}
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(v), nil
}

// Dashboard derives the overview from current snapshots of every screen.
func (a *App) Dashboard() (DashboardSummary, error) {
	expenses := a.Expenses.Entries()
	income := ledger.TotalOf(a.Income.Entries())
	outflow := ledger.TotalOf(expenses).
		Add(ledger.TotalOf(a.Beauty.Entries())).
		Add(ledger.TotalOf(a.Gifts.Entries()))
	savings := ledger.Savings(income, outflow)

	rate, err := nullable(ledger.SavingsRate(savings, income))
	if err != nil {
		return DashboardSummary{}, err
	}
	progress, err := nullable(ledger.PercentOfGoal(savings, a.goal))
	if err != nil {
		return DashboardSummary{}, err
	}
	bar := decimal.Zero
	if progress.Valid {
		bar = ledger.ClampPercent(progress.Decimal)
	}

	portfolio, err := a.Investments.Portfolio()
	if err != nil && !errors.Is(err, ledger.ErrDivisionByZero) {
		return DashboardSummary{}, err
	}

	return DashboardSummary{
		Income:       income,
		Expenses:     outflow,
		Savings:      savings,
		Goal:         a.goal,
		SavingsRate:  rate,
		GoalProgress: progress,
		GoalBarWidth: bar,
		Preview: []PreviewCategory{
			{Name: "food", Emoji: core.Food.Info().Emoji, Amount: ledger.TotalByCategory(expenses, string(core.Food))},
			{Name: "beauty", Emoji: "💄", Amount: ledger.TotalOf(a.Beauty.Entries())},
			{Name: "entertainment", Emoji: core.Entertainment.Info().Emoji, Amount: ledger.TotalByCategory(expenses, string(core.Entertainment))},
			{Name: "investments", Emoji: core.Stock.Info().Emoji, Amount: portfolio.Invested},
		},
	}, nil
}

package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sakura/internal/core"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, got.Equal(dec(want)), "expected %s, got %s", want, got)
}

func expense(amount string, c core.ExpenseCategory, month int) core.Expense {
	return core.Expense{
		ID:          core.ID(amount + string(c)),
		Description: "x",
		Amount:      dec(amount),
		Kind:        c,
		Date:        core.NewDate(2024, month, 10),
	}
}

func TestTotalOf(t *testing.T) {
	assertDecimal(t, "0", TotalOf([]core.Expense{}))
	assertDecimal(t, "0", TotalOf[core.Expense](nil))

	incomes := []core.Income{
		{Source: "Main Salary", Amount: dec("4200"), Type: core.Salary},
		{Source: "Freelance", Amount: dec("800"), Type: core.Freelance},
	}
	assertDecimal(t, "5000", TotalOf(incomes))

	expenses := []core.Expense{
		expense("0.10", core.Food, 1),
		expense("0.20", core.Food, 1),
	}
	assertDecimal(t, "0.3", TotalOf(expenses))
}

func TestTotalByCategoryPartition(t *testing.T) {
	expenses := []core.Expense{
		expense("120", core.Food, 1),
		expense("45", core.Clothes, 1),
		expense("15", core.Food, 1),
		expense("60.5", core.Transport, 2),
	}

	assertDecimal(t, "135", TotalByCategory(expenses, string(core.Food)))
	assertDecimal(t, "0", TotalByCategory(expenses, "rent"))
	assertDecimal(t, "0", TotalByCategory(expenses, string(core.Health)))

	seen := map[string]bool{}
	sum := decimal.Zero
	for _, e := range expenses {
		if seen[e.Category()] {
			continue
		}
		seen[e.Category()] = true
		sum = sum.Add(TotalByCategory(expenses, e.Category()))
	}
	assert.True(t, sum.Equal(TotalOf(expenses)), "partition %s != total %s", sum, TotalOf(expenses))
}

func TestPercentOfGoal(t *testing.T) {
	p, err := PercentOfGoal(dec("1800"), dec("2000"))
	require.NoError(t, err)
	assertDecimal(t, "90", p)

	p, err = PercentOfGoal(dec("2000"), dec("2000"))
	require.NoError(t, err)
	assertDecimal(t, "100", p)

	// unclamped above the goal
	p, err = PercentOfGoal(dec("3000"), dec("2000"))
	require.NoError(t, err)
	assertDecimal(t, "150", p)
	assertDecimal(t, "100", ClampPercent(p))
	assertDecimal(t, "0", ClampPercent(dec("-5")))
	assertDecimal(t, "42.5", ClampPercent(dec("42.5")))

	_, err = PercentOfGoal(dec("10"), decimal.Zero)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestPercentOfGoalIsLinear(t *testing.T) {
	goal := dec("400")
	for _, a := range []string{"1", "17", "250", "399.5"} {
		single, err := PercentOfGoal(dec(a), goal)
		require.NoError(t, err)
		double, err := PercentOfGoal(dec(a).Mul(decimal.NewFromInt(2)), goal)
		require.NoError(t, err)
		assert.Truef(t, double.Equal(single.Mul(decimal.NewFromInt(2))), "not linear for %s", a)
	}
}

func TestProfitLoss(t *testing.T) {
	investments := []core.Investment{
		{Name: "Reliance Industries", Quantity: dec("10"), BuyPrice: dec("2500"), CurrentPrice: dec("2650"), Type: core.Stock},
		{Name: "SBI Bluechip Fund", Quantity: dec("100"), BuyPrice: dec("50"), CurrentPrice: dec("55"), Type: core.MutualFund},
	}
	r, err := ProfitLoss(investments)
	require.NoError(t, err)

	// 2500×10 + 50×100 and 2650×10 + 55×100
	assertDecimal(t, "30000", r.Invested)
	assertDecimal(t, "32000", r.Current)
	assertDecimal(t, "2000", r.Absolute)
	assertDecimal(t, "6.67", r.Percent.Round(2))
}

func TestProfitLossFlatPrices(t *testing.T) {
	investments := []core.Investment{
		{Quantity: dec("3"), BuyPrice: dec("12.5"), CurrentPrice: dec("12.5")},
		{Quantity: dec("0.25"), BuyPrice: dec("40000"), CurrentPrice: dec("40000")},
	}
	r, err := ProfitLoss(investments)
	require.NoError(t, err)
	assertDecimal(t, "0", r.Absolute)
	assertDecimal(t, "0", r.Percent)
}

func TestProfitLossNothingInvested(t *testing.T) {
	r, err := ProfitLoss(nil)
	assert.ErrorIs(t, err, ErrDivisionByZero)
	assertDecimal(t, "0", r.Absolute)
	assertDecimal(t, "0", r.Percent)
}

func TestBudgetStatus(t *testing.T) {
	tests := []struct {
		spent string
		limit string
		want  Status
	}{
		{"0", "100", Good},
		{"69", "100", Good},
		{"70", "100", Warning},
		{"89", "100", Warning},
		{"90", "100", Danger},
		{"150", "100", Danger},
		{"120", "500", Good},
		{"345", "500", Good},
		{"350", "500", Warning},
		{"450", "500", Danger},
		{"0.7", "1", Warning},
	}
	for _, tt := range tests {
		t.Run(tt.spent+"/"+tt.limit, func(t *testing.T) {
			got, err := BudgetStatus(dec(tt.spent), dec(tt.limit))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := BudgetStatus(dec("10"), decimal.Zero)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestSavingsRate(t *testing.T) {
	savings := Savings(dec("5000"), dec("3200"))
	assertDecimal(t, "1800", savings)

	rate, err := SavingsRate(savings, dec("5000"))
	require.NoError(t, err)
	assertDecimal(t, "36", rate)

	_, err = SavingsRate(savings, decimal.Zero)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

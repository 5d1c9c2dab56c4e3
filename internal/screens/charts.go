package screens

import (
	"errors"

	"github.com/shopspring/decimal"

	"sakura/internal/core"
	"sakura/internal/ledger"
)

// SpendingSlice is one segment of the spending pie.
type SpendingSlice struct {
	ledger.Share
	Label string
	Color string
}

type ChartsView struct {
	Spending []SpendingSlice
	Monthly  []core.MonthOverview
	Growth   []core.MonthOverview
}

const (
	beautySlice = "beauty"
	giftsSlice  = "gifts"
)

// Charts derives the chart series from the same outflows the dashboard
// counts. Spending is empty while nothing has been spent.
func (a *App) Charts() (ChartsView, error) {
	expenses, beauty, gifts := a.Expenses.Entries(), a.Beauty.Entries(), a.Gifts.Entries()

	amounts := ledger.ByCategory(expenses)
	if total := ledger.TotalOf(beauty); total.IsPositive() {
		amounts = append(amounts, core.CategoryAmount{Name: beautySlice, Amount: total})
	}
	if total := ledger.TotalOf(gifts); total.IsPositive() {
		amounts = append(amounts, core.CategoryAmount{Name: giftsSlice, Amount: total})
	}

	var spending []SpendingSlice
	shares, err := ledger.Shares(amounts)
	switch {
	case errors.Is(err, ledger.ErrDivisionByZero):
	case err != nil:
		return ChartsView{}, err
	default:
		spending = make([]SpendingSlice, 0, len(shares))
		for _, s := range shares {
			spending = append(spending, sliceFor(s))
		}
	}

	outflows := ledger.AsEntries(expenses)
	outflows = append(outflows, ledger.AsEntries(beauty)...)
	outflows = append(outflows, ledger.AsEntries(gifts)...)
	monthly := ledger.Monthly(a.Income.Entries(), outflows)
	return ChartsView{
		Spending: spending,
		Monthly:  monthly,
		Growth:   ledger.CumulativeSavings(monthly),
	}, nil
}

func sliceFor(s ledger.Share) SpendingSlice {
	switch s.Name {
	case beautySlice:
		return SpendingSlice{Share: s, Label: "Beauty & Self-care", Color: core.Skincare.Info().Color}
	case giftsSlice:
		return SpendingSlice{Share: s, Label: "Gifts", Color: core.Birthday.Info().Color}
	}
	info := core.ExpenseCategory(s.Name).Info()
	return SpendingSlice{Share: s, Label: info.Label, Color: info.Color}
}

// TotalSpent sums every slice of the spending pie.
func (v ChartsView) TotalSpent() decimal.Decimal {
	total := decimal.Zero
	for _, s := range v.Spending {
		total = total.Add(s.Amount)
	}
	return total
}

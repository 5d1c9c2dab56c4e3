package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"sakura/internal/core"
)

// Share is one slice of a category breakdown.
type Share struct {
	core.CategoryAmount
	Percent decimal.Decimal
}

// ByCategory totals entries per category, in order of first appearance.
// The amounts partition TotalOf(entries).
func ByCategory[E core.Entry](entries []E) []core.CategoryAmount {
	index := make(map[string]int)
	var out []core.CategoryAmount
	for _, e := range entries {
		key := e.Category()
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, core.CategoryAmount{Name: key, Amount: decimal.Zero})
		}
		out[i].Amount = out[i].Amount.Add(e.Value())
	}
	return out
}

// Shares converts category amounts into percentages of their sum.
func Shares(amounts []core.CategoryAmount) ([]Share, error) {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a.Amount)
	}
	if total.IsZero() {
		return nil, ErrDivisionByZero
	}
	out := make([]Share, 0, len(amounts))
	for _, a := range amounts {
		out = append(out, Share{
			CategoryAmount: a,
			Percent:        a.Amount.Mul(hundred).Div(total),
		})
	}
	return out, nil
}

type monthKey struct {
	year  int
	month int
}

// AsEntries widens a typed slice so entries of different domains can be
// combined.
func AsEntries[E core.Entry](entries []E) []core.Entry {
	out := make([]core.Entry, len(entries))
	for i, e := range entries {
		out[i] = e
	}
	return out
}

// Monthly groups incomes and outflows by calendar month, ascending. Every
// outflow counts towards the month's Expenses.
func Monthly(incomes []core.Income, outflows []core.Entry) []core.MonthOverview {
	months := make(map[monthKey]*core.MonthOverview)
	get := func(d core.Date) *core.MonthOverview {
		k := monthKey{year: d.Year(), month: d.Month()}
		m, ok := months[k]
		if !ok {
			m = &core.MonthOverview{
				Year:     k.year,
				Month:    k.month,
				Income:   decimal.Zero,
				Expenses: decimal.Zero,
			}
			months[k] = m
		}
		return m
	}
	for _, i := range incomes {
		m := get(i.Date)
		m.Income = m.Income.Add(i.Amount)
	}
	for _, o := range outflows {
		m := get(o.On())
		m.Expenses = m.Expenses.Add(o.Value())
	}

	out := make([]core.MonthOverview, 0, len(months))
	for _, m := range months {
		m.Savings = Savings(m.Income, m.Expenses)
		out = append(out, *m)
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Year != out[b].Year {
			return out[a].Year < out[b].Year
		}
		return out[a].Month < out[b].Month
	})
	return out
}

// CumulativeSavings returns a copy of months whose Savings is the running
// total up to and including that month.
func CumulativeSavings(months []core.MonthOverview) []core.MonthOverview {
	out := make([]core.MonthOverview, len(months))
	running := decimal.Zero
	for i, m := range months {
		running = running.Add(m.Savings)
		m.Savings = running
		out[i] = m
	}
	return out
}

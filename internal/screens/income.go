package screens

import (
	"github.com/shopspring/decimal"

	"sakura/internal/core"
	"sakura/internal/ledger"
)

type IncomeScreen struct {
	ledgerScreen[core.Income]
}

// IncomeSummary is the figure block at the top of the income screen.
type IncomeSummary struct {
	Total     decimal.Decimal
	Recurring decimal.Decimal
	Sources   int
	ByType    []core.CategoryAmount
}

// Add validates form and appends a new income.
func (s *IncomeScreen) Add(form IncomeForm) (core.Income, error) {
	return s.add(form.build)
}

func (s *IncomeScreen) Summary() IncomeSummary {
	incomes := s.Entries()
	recurring := decimal.Zero
	for _, in := range incomes {
		if in.Recurring {
			recurring = recurring.Add(in.Amount)
		}
	}
	return IncomeSummary{
		Total:     ledger.TotalOf(incomes),
		Recurring: recurring,
		Sources:   len(incomes),
		ByType:    ledger.ByCategory(incomes),
	}
}

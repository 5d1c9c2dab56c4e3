package screens

import (
	"github.com/shopspring/decimal"

	"sakura/internal/core"
	"sakura/internal/ledger"
)

type BeautyScreen struct {
	ledgerScreen[core.Beauty]
}

type BeautySummary struct {
	Total      decimal.Decimal
	Count      int
	ByCategory []core.CategoryAmount
}

// Add validates form and lists the new entry first.
func (s *BeautyScreen) Add(form BeautyForm) (core.Beauty, error) {
	return s.add(form.build)
}

func (s *BeautyScreen) Summary() BeautySummary {
	entries := s.Entries()
	return BeautySummary{
		Total:      ledger.TotalOf(entries),
		Count:      len(entries),
		ByCategory: ledger.ByCategory(entries),
	}
}

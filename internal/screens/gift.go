package screens

import (
	"github.com/shopspring/decimal"

	"sakura/internal/core"
	"sakura/internal/ledger"
)

type GiftScreen struct {
	ledgerScreen[core.Gift]
}

type GiftSummary struct {
	Total      decimal.Decimal
	Count      int
	ByOccasion []core.CategoryAmount
}

// Add validates form and lists the new gift first.
func (s *GiftScreen) Add(form GiftForm) (core.Gift, error) {
	return s.add(form.build)
}

func (s *GiftScreen) Summary() GiftSummary {
	gifts := s.Entries()
	return GiftSummary{
		Total:      ledger.TotalOf(gifts),
		Count:      len(gifts),
		ByOccasion: ledger.ByCategory(gifts),
	}
}

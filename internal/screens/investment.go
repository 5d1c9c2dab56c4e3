package screens

import (
	"sakura/internal/core"
	"sakura/internal/ledger"
)

type InvestmentScreen struct {
	ledgerScreen[core.Investment]
}

// Add validates form and lists the new holding first.
func (s *InvestmentScreen) Add(form InvestmentForm) (core.Investment, error) {
	return s.add(form.build)
}

// Portfolio returns invested, current value and profit/loss. The error is
// ledger.ErrDivisionByZero when nothing is invested; the absolute figures
// are still filled in.
func (s *InvestmentScreen) Portfolio() (ledger.ProfitLossResult, error) {
	return ledger.ProfitLoss(s.Entries())
}

package screens

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"sakura/internal/core"
	"sakura/internal/ledger"
	"sakura/internal/log"
)

type ExpenseScreen struct {
	ledgerScreen[core.Expense]

	mu     sync.Mutex
	limits []categoryLimit
}

type categoryLimit struct {
	category core.ExpenseCategory
	limit    decimal.Decimal
}

// BudgetView is one row of the budget overview.
type BudgetView struct {
	core.BudgetLimit
	Info     core.CategoryInfo
	Percent  decimal.Decimal // unclamped
	BarWidth decimal.Decimal // clamped to [0, 100]
	Status   ledger.Status
}

type ExpenseSummary struct {
	Total      decimal.Decimal
	Count      int
	ByCategory []core.CategoryAmount
}

// Add validates form and appends a new expense.
func (s *ExpenseScreen) Add(form ExpenseForm) (core.Expense, error) {
	return s.add(form.build)
}

// SetBudgetLimit sets the cap of category, adding the budget when missing.
// Limits must be positive.
func (s *ExpenseScreen) SetBudgetLimit(category core.ExpenseCategory, limit decimal.Decimal) error {
	if _, err := core.ParseExpenseCategory(string(category)); err != nil {
		return fieldError("category", err)
	}
	if !limit.IsPositive() {
		return fieldError("limit", core.ErrInvalidAmount)
	}

	s.mu.Lock()
	found := false
	for i := range s.limits {
		if s.limits[i].category == category {
			s.limits[i].limit = limit
			found = true
			break
		}
	}
	if !found {
		s.limits = append(s.limits, categoryLimit{category: category, limit: limit})
	}
	s.mu.Unlock()

	s.logger.Info("Budget limit set",
		log.FieldOperation, log.OpUpdate,
		log.FieldCategory, string(category),
		log.FieldAmount, limit.String())
	return nil
}

// SetBudgetLimitText parses a typed limit and sets it.
func (s *ExpenseScreen) SetBudgetLimitText(category, limit string) error {
	c, err := core.ParseExpenseCategory(category)
	if err != nil {
		return fieldError("category", err)
	}
	v, err := amountField("limit", limit)
	if err != nil {
		return err
	}
	return s.SetBudgetLimit(c, v)
}

// Budgets returns every budget with Spent recomputed from the current
// expense entries.
func (s *ExpenseScreen) Budgets() ([]BudgetView, error) {
	s.mu.Lock()
	limits := append([]categoryLimit(nil), s.limits...)
	s.mu.Unlock()

	expenses := s.Entries()
	out := make([]BudgetView, 0, len(limits))
	for _, l := range limits {
		spent := ledger.TotalByCategory(expenses, string(l.category))
		percent, err := ledger.PercentOfGoal(spent, l.limit)
		if err != nil {
			return nil, fmt.Errorf("budget %s: %w", l.category, err)
		}
		status, err := ledger.BudgetStatus(spent, l.limit)
		if err != nil {
			return nil, fmt.Errorf("budget %s: %w", l.category, err)
		}
		out = append(out, BudgetView{
			BudgetLimit: core.BudgetLimit{Category: l.category, Limit: l.limit, Spent: spent},
			Info:        l.category.Info(),
			Percent:     percent,
			BarWidth:    ledger.ClampPercent(percent),
			Status:      status,
		})
	}
	return out, nil
}

// Budget returns the budget row of one category.
func (s *ExpenseScreen) Budget(category core.ExpenseCategory) (BudgetView, error) {
	budgets, err := s.Budgets()
	if err != nil {
		return BudgetView{}, err
	}
	for _, b := range budgets {
		if b.Category == category {
			return b, nil
		}
	}
	return BudgetView{}, fmt.Errorf("budget %s: %w", category, ErrNotFound)
}

func (s *ExpenseScreen) Summary() ExpenseSummary {
	expenses := s.Entries()
	return ExpenseSummary{
		Total:      ledger.TotalOf(expenses),
		Count:      len(expenses),
		ByCategory: ledger.ByCategory(expenses),
	}
}

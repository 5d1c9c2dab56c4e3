package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Note is a free-text record. Its color always follows its category.
type Note struct {
	ID        ID
	Title     string
	Content   string
	Category  NoteCategory
	Favorite  bool
	CreatedAt Date
	UpdatedAt Date
}

func (n Note) Color() string {
	return n.Category.Info().Color
}

func (n Note) Validate() error {
	if err := requireText("title", n.Title); err != nil {
		return err
	}
	if strings.TrimSpace(n.Content) == "" {
		return invalid("content", ErrRequired)
	}
	if !isOneOf(n.Category, NoteCategories()) {
		return invalid("category", ErrUnknownCategory)
	}
	return nil
}

// BudgetLimit is a spending cap for one expense category. Spent is derived
// from the expense entries of that category when the budget is read.
type BudgetLimit struct {
	Category ExpenseCategory
	Limit    decimal.Decimal
	Spent    decimal.Decimal
}

// Remaining returns Limit − Spent; negative when the budget is exceeded.
func (b BudgetLimit) Remaining() decimal.Decimal {
	return b.Limit.Sub(b.Spent)
}

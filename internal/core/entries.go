package core

import "github.com/shopspring/decimal"

type (
	Income struct {
		ID        ID
		Source    string
		Amount    decimal.Decimal
		Type      IncomeType
		Date      Date
		Recurring bool
	}

	Expense struct {
		ID          ID
		Description string
		Amount      decimal.Decimal
		Kind        ExpenseCategory
		Date        Date
	}

	// Investment is a holding; its Value is the cost basis.
	Investment struct {
		ID           ID
		Name         string
		Quantity     decimal.Decimal
		BuyPrice     decimal.Decimal
		CurrentPrice decimal.Decimal
		Type         InvestmentType
		Date         Date
	}

	Gift struct {
		ID        ID
		Recipient string
		Gift      string
		Amount    decimal.Decimal
		Occasion  GiftOccasion
		Date      Date
	}

	Beauty struct {
		ID      ID
		Product string
		Amount  decimal.Decimal
		Kind    BeautyCategory
		Date    Date
	}
)

var (
	_ Entry = Income{}
	_ Entry = Expense{}
	_ Entry = Investment{}
	_ Entry = Gift{}
	_ Entry = Beauty{}
)

func (i Income) EntryID() ID            { return i.ID }
func (i Income) Value() decimal.Decimal { return i.Amount }
func (i Income) Category() string       { return string(i.Type) }
func (i Income) On() Date               { return i.Date }

func (e Expense) EntryID() ID            { return e.ID }
func (e Expense) Value() decimal.Decimal { return e.Amount }
func (e Expense) Category() string       { return string(e.Kind) }
func (e Expense) On() Date               { return e.Date }

func (v Investment) EntryID() ID            { return v.ID }
func (v Investment) Value() decimal.Decimal { return v.Invested() }
func (v Investment) Category() string       { return string(v.Type) }
func (v Investment) On() Date               { return v.Date }

// Invested returns BuyPrice × Quantity.
func (v Investment) Invested() decimal.Decimal {
	return v.BuyPrice.Mul(v.Quantity)
}

// CurrentValue returns CurrentPrice × Quantity.
func (v Investment) CurrentValue() decimal.Decimal {
	return v.CurrentPrice.Mul(v.Quantity)
}

func (g Gift) EntryID() ID            { return g.ID }
func (g Gift) Value() decimal.Decimal { return g.Amount }
func (g Gift) Category() string       { return string(g.Occasion) }
func (g Gift) On() Date               { return g.Date }

func (b Beauty) EntryID() ID            { return b.ID }
func (b Beauty) Value() decimal.Decimal { return b.Amount }
func (b Beauty) Category() string       { return string(b.Kind) }
func (b Beauty) On() Date               { return b.Date }

func (i Income) Validate() error {
	if err := requireText("source", i.Source); err != nil {
		return err
	}
	if err := requirePositive("amount", i.Amount); err != nil {
		return err
	}
	if !isOneOf(i.Type, IncomeTypes()) {
		return invalid("type", ErrUnknownCategory)
	}
	return requireDate("date", i.Date)
}

func (e Expense) Validate() error {
	if err := requireText("description", e.Description); err != nil {
		return err
	}
	if err := requirePositive("amount", e.Amount); err != nil {
		return err
	}
	if !isOneOf(e.Kind, ExpenseCategories()) {
		return invalid("category", ErrUnknownCategory)
	}
	return requireDate("date", e.Date)
}

func (v Investment) Validate() error {
	if err := requireText("name", v.Name); err != nil {
		return err
	}
	if err := requirePositive("quantity", v.Quantity); err != nil {
		return err
	}
	if err := requirePositive("buy_price", v.BuyPrice); err != nil {
		return err
	}
	if err := requirePositive("current_price", v.CurrentPrice); err != nil {
		return err
	}
	if !isOneOf(v.Type, InvestmentTypes()) {
		return invalid("type", ErrUnknownCategory)
	}
	return requireDate("date", v.Date)
}

func (g Gift) Validate() error {
	if err := requireText("recipient", g.Recipient); err != nil {
		return err
	}
	if err := requireText("gift", g.Gift); err != nil {
		return err
	}
	if err := requirePositive("amount", g.Amount); err != nil {
		return err
	}
	if !isOneOf(g.Occasion, GiftOccasions()) {
		return invalid("occasion", ErrUnknownCategory)
	}
	return requireDate("date", g.Date)
}

func (b Beauty) Validate() error {
	if err := requireText("product", b.Product); err != nil {
		return err
	}
	if err := requirePositive("amount", b.Amount); err != nil {
		return err
	}
	if !isOneOf(b.Kind, BeautyCategories()) {
		return invalid("category", ErrUnknownCategory)
	}
	return requireDate("date", b.Date)
}

package screens

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"sakura/internal/core"
)

// Form surfaces hand over raw strings exactly as typed or selected.
type (
	IncomeForm struct {
		Source    string
		Amount    string
		Type      string
		Date      string
		Recurring bool
	}

	ExpenseForm struct {
		Description string
		Amount      string
		Category    string
		Date        string
	}

	InvestmentForm struct {
		Name         string
		Quantity     string
		BuyPrice     string
		CurrentPrice string
		Type         string
		Date         string
	}

	GiftForm struct {
		Recipient string
		Gift      string
		Amount    string
		Occasion  string
		Date      string
	}

	BeautyForm struct {
		Product  string
		Amount   string
		Category string
		Date     string
	}

	NoteForm struct {
		Title    string
		Content  string
		Category string
	}
)

func fieldError(field string, err error) error {
	var ve *core.ValidationError
	if errors.As(err, &ve) {
		return err
	}
	return &core.ValidationError{Field: field, Reason: err}
}

func requiredField(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fieldError(field, core.ErrRequired)
	}
	return value, nil
}

func amountField(field, value string) (decimal.Decimal, error) {
	v, err := core.ParseAmount(value)
	if err != nil {
		return decimal.Zero, fieldError(field, err)
	}
	return v, nil
}

// dateField parses value, falling back to today when the field was left
// blank, which is what the form pre-fills.
func dateField(value string, today core.Date) (core.Date, error) {
	if strings.TrimSpace(value) == "" {
		return today, nil
	}
	d, err := core.ParseDate(value)
	if err != nil {
		return core.Date{}, fieldError("date", err)
	}
	return d, nil
}

func (f IncomeForm) build(id core.ID, today core.Date) (core.Income, error) {
	source, err := requiredField("source", f.Source)
	if err != nil {
		return core.Income{}, err
	}
	amount, err := amountField("amount", f.Amount)
	if err != nil {
		return core.Income{}, err
	}
	typ, err := core.ParseIncomeType(f.Type)
	if err != nil {
		return core.Income{}, fieldError("type", err)
	}
	date, err := dateField(f.Date, today)
	if err != nil {
		return core.Income{}, err
	}
	in := core.Income{ID: id, Source: source, Amount: amount, Type: typ, Date: date, Recurring: f.Recurring}
	return in, in.Validate()
}

func (f ExpenseForm) build(id core.ID, today core.Date) (core.Expense, error) {
	desc, err := requiredField("description", f.Description)
	if err != nil {
		return core.Expense{}, err
	}
	amount, err := amountField("amount", f.Amount)
	if err != nil {
		return core.Expense{}, err
	}
	kind, err := core.ParseExpenseCategory(f.Category)
	if err != nil {
		return core.Expense{}, fieldError("category", err)
	}
	date, err := dateField(f.Date, today)
	if err != nil {
		return core.Expense{}, err
	}
	e := core.Expense{ID: id, Description: desc, Amount: amount, Kind: kind, Date: date}
	return e, e.Validate()
}

func (f InvestmentForm) build(id core.ID, today core.Date) (core.Investment, error) {
	name, err := requiredField("name", f.Name)
	if err != nil {
		return core.Investment{}, err
	}
	qty, err := amountField("quantity", f.Quantity)
	if err != nil {
		return core.Investment{}, err
	}
	buy, err := amountField("buy_price", f.BuyPrice)
	if err != nil {
		return core.Investment{}, err
	}
	current, err := amountField("current_price", f.CurrentPrice)
	if err != nil {
		return core.Investment{}, err
	}
	typ, err := core.ParseInvestmentType(f.Type)
	if err != nil {
		return core.Investment{}, fieldError("type", err)
	}
	date, err := dateField(f.Date, today)
	if err != nil {
		return core.Investment{}, err
	}
	v := core.Investment{ID: id, Name: name, Quantity: qty, BuyPrice: buy, CurrentPrice: current, Type: typ, Date: date}
	return v, v.Validate()
}

func (f GiftForm) build(id core.ID, today core.Date) (core.Gift, error) {
	recipient, err := requiredField("recipient", f.Recipient)
	if err != nil {
		return core.Gift{}, err
	}
	gift, err := requiredField("gift", f.Gift)
	if err != nil {
		return core.Gift{}, err
	}
	amount, err := amountField("amount", f.Amount)
	if err != nil {
		return core.Gift{}, err
	}
	occasion, err := core.ParseGiftOccasion(f.Occasion)
	if err != nil {
		return core.Gift{}, fieldError("occasion", err)
	}
	date, err := dateField(f.Date, today)
	if err != nil {
		return core.Gift{}, err
	}
	g := core.Gift{ID: id, Recipient: recipient, Gift: gift, Amount: amount, Occasion: occasion, Date: date}
	return g, g.Validate()
}

func (f BeautyForm) build(id core.ID, today core.Date) (core.Beauty, error) {
	product, err := requiredField("product", f.Product)
	if err != nil {
		return core.Beauty{}, err
	}
	amount, err := amountField("amount", f.Amount)
	if err != nil {
		return core.Beauty{}, err
	}
	kind, err := core.ParseBeautyCategory(f.Category)
	if err != nil {
		return core.Beauty{}, fieldError("category", err)
	}
	date, err := dateField(f.Date, today)
	if err != nil {
		return core.Beauty{}, err
	}
	b := core.Beauty{ID: id, Product: product, Amount: amount, Kind: kind, Date: date}
	return b, b.Validate()
}

func (f NoteForm) parse() (title, content string, category core.NoteCategory, err error) {
	if title, err = requiredField("title", f.Title); err != nil {
		return
	}
	if content, err = requiredField("content", f.Content); err != nil {
		return
	}
	if category, err = core.ParseNoteCategory(f.Category); err != nil {
		err = fieldError("category", err)
	}
	return
}

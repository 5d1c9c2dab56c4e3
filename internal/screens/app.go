package screens

import (
	"fmt"

	"github.com/shopspring/decimal"

	"sakura/internal/core"
	"sakura/internal/log"
	"sakura/internal/store/memory"
)

// Options configures NewApp. Zero values fall back to UUIDv7 ids, a discard
// logger and the current UTC date.
type Options struct {
	IDs         IDGenerator
	Logger      *log.Logger
	Today       func() core.Date
	SavingsGoal decimal.Decimal
}

// App holds the state of every screen for one session.
type App struct {
	Income      *IncomeScreen
	Expenses    *ExpenseScreen
	Investments *InvestmentScreen
	Gifts       *GiftScreen
	Beauty      *BeautyScreen
	Notes       *NotesBoard

	goal   decimal.Decimal
	logger *log.Logger
}

func (o Options) withDefaults() Options {
	if o.IDs == nil {
		o.IDs = UUIDGenerator{}
	}
	if o.Logger == nil {
		o.Logger = log.Discard()
	}
	if o.Today == nil {
		o.Today = core.Today
	}
	return o
}

// NewApp returns an App with every screen empty.
func NewApp(opts Options) *App {
	return newApp(opts, seed{})
}

type seed struct {
	incomes     []core.Income
	expenses    []core.Expense
	investments []core.Investment
	gifts       []core.Gift
	beauty      []core.Beauty
	notes       []core.Note
}

func newApp(opts Options, s seed) *App {
	opts = opts.withDefaults()
	logger := opts.Logger.WithComponent(log.ComponentScreens)

	base := func(name string) (IDGenerator, func() core.Date, *log.Logger) {
		return opts.IDs, opts.Today, logger.With(log.FieldScreen, name)
	}

	a := &App{goal: opts.SavingsGoal, logger: logger}

	ids, today, l := base(PageIncome)
	a.Income = &IncomeScreen{ledgerScreen[core.Income]{
		name: PageIncome, entries: memory.New(s.incomes...), ids: ids, today: today, logger: l,
	}}
	ids, today, l = base(PageExpenses)
	a.Expenses = &ExpenseScreen{ledgerScreen: ledgerScreen[core.Expense]{
		name: PageExpenses, entries: memory.New(s.expenses...), ids: ids, today: today, logger: l,
	}}
	ids, today, l = base(PageInvestments)
	a.Investments = &InvestmentScreen{ledgerScreen[core.Investment]{
		name: PageInvestments, entries: memory.New(s.investments...), ids: ids, today: today, newestFirst: true, logger: l,
	}}
	ids, today, l = base(PageGifts)
	a.Gifts = &GiftScreen{ledgerScreen[core.Gift]{
		name: PageGifts, entries: memory.New(s.gifts...), ids: ids, today: today, newestFirst: true, logger: l,
	}}
	ids, today, l = base(PageBeauty)
	a.Beauty = &BeautyScreen{ledgerScreen[core.Beauty]{
		name: PageBeauty, entries: memory.New(s.beauty...), ids: ids, today: today, newestFirst: true, logger: l,
	}}
	ids, today, l = base(PageNotes)
	a.Notes = &NotesBoard{notes: s.notes, ids: ids, today: today, logger: l}

	return a
}

// Goal returns the savings goal shown on the dashboard.
func (a *App) Goal() decimal.Decimal {
	return a.goal
}

// NewDemoApp returns an App pre-filled with the sample data every screen
// shows on first launch.
func NewDemoApp(opts Options) (*App, error) {
	opts = opts.withDefaults()
	id := opts.IDs.NewID
	d := core.NewDate
	n := decimal.NewFromInt

	s := seed{
		incomes: []core.Income{
			{ID: id(), Source: "Main Salary", Amount: n(4200), Type: core.Salary, Date: d(2024, 1, 1), Recurring: true},
			{ID: id(), Source: "Freelance Project", Amount: n(800), Type: core.Freelance, Date: d(2024, 1, 15)},
		},
		expenses: []core.Expense{
			{ID: id(), Description: "Grocery Shopping", Amount: n(120), Kind: core.Food, Date: d(2024, 1, 15)},
			{ID: id(), Description: "Cute Top from Zara", Amount: n(45), Kind: core.Clothes, Date: d(2024, 1, 14)},
			{ID: id(), Description: "Coffee Date", Amount: n(15), Kind: core.Food, Date: d(2024, 1, 13)},
		},
		investments: []core.Investment{
			{ID: id(), Name: "Reliance Industries", Quantity: n(10), BuyPrice: n(2500), CurrentPrice: n(2650), Type: core.Stock, Date: d(2024, 1, 2)},
			{ID: id(), Name: "SBI Bluechip Fund", Quantity: n(100), BuyPrice: n(50), CurrentPrice: n(55), Type: core.MutualFund, Date: d(2024, 1, 2)},
		},
		gifts: []core.Gift{
			{ID: id(), Recipient: "Mom", Gift: "Perfume Set", Amount: n(3500), Occasion: core.Birthday, Date: d(2024, 1, 20)},
			{ID: id(), Recipient: "Best Friend", Gift: "Jewelry", Amount: n(2000), Occasion: core.JustBecause, Date: d(2024, 1, 12)},
		},
		beauty: []core.Beauty{
			{ID: id(), Product: "Facial Treatment", Amount: n(2500), Kind: core.Spa, Date: d(2024, 1, 15)},
			{ID: id(), Product: "Hair Serum", Amount: n(800), Kind: core.Haircare, Date: d(2024, 1, 10)},
		},
		notes: []core.Note{
			{
				ID:        id(),
				Title:     "Dream Vacation to Japan 🌸",
				Content:   "Save $3000 for cherry blossom season trip. Visit Tokyo, Kyoto, and see Mount Fuji. Budget breakdown: Flight $800, Hotel $1000, Food & Activities $1200.",
				Category:  core.Dream,
				Favorite:  true,
				CreatedAt: d(2024, 1, 10),
				UpdatedAt: d(2024, 1, 10),
			},
			{
				ID:        id(),
				Title:     "Monthly Budget Goals 🎯",
				Content:   "Food: $500, Beauty: $300, Clothes: $200, Entertainment: $150, Savings: $2000. Try to cook more at home to save on food expenses.",
				Category:  core.Goal,
				CreatedAt: d(2024, 1, 8),
				UpdatedAt: d(2024, 1, 12),
			},
			{
				ID:        id(),
				Title:     "Skincare Routine Investment 💄",
				Content:   "Research good skincare products. Current routine needs improvement. Budget $200/month for quality products. Check reviews for The Ordinary and Cetaphil.",
				Category:  core.Idea,
				Favorite:  true,
				CreatedAt: d(2024, 1, 5),
				UpdatedAt: d(2024, 1, 5),
			},
		},
	}

	a := newApp(opts, s)
	for _, b := range []struct {
		category core.ExpenseCategory
		limit    int64
	}{
		{core.Food, 500},
		{core.Clothes, 300},
		{core.Entertainment, 200},
		{core.Transport, 150},
	} {
		if err := a.Expenses.SetBudgetLimit(b.category, n(b.limit)); err != nil {
			return nil, fmt.Errorf("seed budget %s: %w", b.category, err)
		}
	}
	a.logger.Info("Demo data loaded",
		log.FieldOperation, log.OpStartup,
		log.FieldCount, a.Income.Len()+a.Expenses.Len()+a.Investments.Len()+a.Gifts.Len()+a.Beauty.Len()+a.Notes.Len())
	return a, nil
}

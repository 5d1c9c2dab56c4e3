package core

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestDateValidate(t *testing.T) {
	cases := []struct {
		d  Date
		ok bool
	}{
		{NewDate(2025, 1, 1), true},
		{NewDate(2025, 12, 31), true},
		{Date{Time: time.Time{}}, false}, // zero time
	}
	for i, tc := range cases {
		err := tc.d.Validate()
		if tc.ok && err != nil {
			t.Fatalf("case %d expected ok, got %v", i, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-15")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if d.Year() != 2024 || d.Month() != 1 || d.Day() != 15 {
		t.Fatalf("unexpected date %v", d)
	}
	if d.String() != "2024-01-15" {
		t.Fatalf("unexpected string %q", d.String())
	}
	if _, err := ParseDate(""); !errors.Is(err, ErrRequired) {
		t.Fatalf("expected ErrRequired, got %v", err)
	}
	if _, err := ParseDate("15/01/2024"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestExpenseValidate(t *testing.T) {
	good := Expense{
		Description: "Grocery Shopping",
		Amount:      decimal.NewFromInt(120),
		Kind:        Food,
		Date:        NewDate(2024, 1, 15),
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []struct {
		e     Expense
		field string
	}{
		{Expense{Description: "", Amount: decimal.NewFromInt(1), Kind: Food, Date: NewDate(2024, 1, 1)}, "description"},
		{Expense{Description: "a", Amount: decimal.Zero, Kind: Food, Date: NewDate(2024, 1, 1)}, "amount"},
		{Expense{Description: "a", Amount: decimal.NewFromInt(-3), Kind: Food, Date: NewDate(2024, 1, 1)}, "amount"},
		{Expense{Description: "a", Amount: decimal.NewFromInt(1), Kind: "rent", Date: NewDate(2024, 1, 1)}, "category"},
		{Expense{Description: "a", Amount: decimal.NewFromInt(1), Kind: Food}, "date"},
	}
	for i, tc := range bads {
		err := tc.e.Validate()
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("case %d expected ValidationError, got %v", i, err)
		}
		if ve.Field != tc.field {
			t.Fatalf("case %d expected field %q, got %q", i, tc.field, ve.Field)
		}
	}
}

func TestTextLimitCountsCharacters(t *testing.T) {
	e := Expense{
		Description: strings.Repeat("🌸", 200),
		Amount:      decimal.NewFromInt(1),
		Kind:        Food,
		Date:        NewDate(2024, 1, 1),
	}
	if err := e.Validate(); err != nil {
		t.Fatalf("200 characters should pass, got %v", err)
	}

	e.Description += "🌸"
	err := e.Validate()
	if !errors.Is(err, ErrTooLong) {
		t.Fatalf("201 characters should be too long, got %v", err)
	}
}

func TestInvestmentValues(t *testing.T) {
	v := Investment{
		Name:         "Reliance Industries",
		Quantity:     decimal.NewFromInt(10),
		BuyPrice:     decimal.NewFromInt(2500),
		CurrentPrice: decimal.NewFromInt(2650),
		Type:         Stock,
		Date:         NewDate(2024, 1, 1),
	}
	if err := v.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if !v.Value().Equal(decimal.NewFromInt(25000)) {
		t.Fatalf("value = %s, want 25000", v.Value())
	}
	if !v.CurrentValue().Equal(decimal.NewFromInt(26500)) {
		t.Fatalf("current = %s, want 26500", v.CurrentValue())
	}
}

func TestCategoryInfoFallbacks(t *testing.T) {
	if got := ExpenseCategory("rent").Info().ID; got != string(OtherExpense) {
		t.Fatalf("expense fallback = %q", got)
	}
	if got := IncomeType("lottery").Info().ID; got != string(OtherIncome) {
		t.Fatalf("income fallback = %q", got)
	}
	if got := InvestmentType("bonds").Info().ID; got != string(Stock) {
		t.Fatalf("investment fallback = %q", got)
	}
	if got := GiftOccasion("wedding").Info().ID; got != string(Birthday) {
		t.Fatalf("gift fallback = %q", got)
	}
	if got := BeautyCategory("nails").Info().ID; got != string(Skincare) {
		t.Fatalf("beauty fallback = %q", got)
	}
	if got := NoteCategory("todo").Info().ID; got != string(Dream) {
		t.Fatalf("note fallback = %q", got)
	}
	for _, c := range ExpenseCategories() {
		if c.Info().ID != string(c) {
			t.Fatalf("category %q maps to %q", c, c.Info().ID)
		}
	}
}

func TestParseEnums(t *testing.T) {
	if c, err := ParseExpenseCategory(" Food "); err != nil || c != Food {
		t.Fatalf("got %q, %v", c, err)
	}
	if _, err := ParseInvestmentType("bonds"); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
	if _, err := ParseGiftOccasion(""); !errors.Is(err, ErrRequired) {
		t.Fatalf("expected ErrRequired, got %v", err)
	}
}

func TestNoteColorFollowsCategory(t *testing.T) {
	n := Note{Title: "Trip", Content: "Japan", Category: Dream}
	if n.Color() != Dream.Info().Color {
		t.Fatalf("unexpected color %q", n.Color())
	}
	n.Category = Idea
	if n.Color() != Idea.Info().Color {
		t.Fatalf("color did not follow category: %q", n.Color())
	}
	n.Content = "   "
	if err := n.Validate(); err == nil {
		t.Fatalf("expected error for blank content")
	}
}

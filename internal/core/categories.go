package core

import "strings"

// CategoryInfo is the display metadata of a category. Color is a gradient
// token understood by the presentation layer.
type CategoryInfo struct {
	ID    string
	Label string
	Emoji string
	Color string
}

type (
	IncomeType      string
	ExpenseCategory string
	InvestmentType  string
	GiftOccasion    string
	BeautyCategory  string
	NoteCategory    string
)

const (
	Salary           IncomeType = "salary"
	Freelance        IncomeType = "freelance"
	InvestmentIncome IncomeType = "investment"
	OtherIncome      IncomeType = "other"
)

const (
	Food          ExpenseCategory = "food"
	Clothes       ExpenseCategory = "clothes"
	Entertainment ExpenseCategory = "entertainment"
	Transport     ExpenseCategory = "transport"
	Health        ExpenseCategory = "health"
	OtherExpense  ExpenseCategory = "other"
)

const (
	Stock      InvestmentType = "stock"
	MutualFund InvestmentType = "mutual-fund"
	Crypto     InvestmentType = "crypto"
	Gold       InvestmentType = "gold"
)

const (
	Birthday    GiftOccasion = "birthday"
	Anniversary GiftOccasion = "anniversary"
	Holiday     GiftOccasion = "holiday"
	JustBecause GiftOccasion = "justbecause"
)

const (
	Skincare BeautyCategory = "skincare"
	Haircare BeautyCategory = "haircare"
	Spa      BeautyCategory = "spa"
	Wellness BeautyCategory = "wellness"
)

const (
	Dream    NoteCategory = "dream"
	Goal     NoteCategory = "goal"
	Reminder NoteCategory = "reminder"
	Idea     NoteCategory = "idea"
)

func IncomeTypes() []IncomeType {
	return []IncomeType{Salary, Freelance, InvestmentIncome, OtherIncome}
}

func ExpenseCategories() []ExpenseCategory {
	return []ExpenseCategory{Food, Clothes, Entertainment, Transport, Health, OtherExpense}
}

func InvestmentTypes() []InvestmentType {
	return []InvestmentType{Stock, MutualFund, Crypto, Gold}
}

func GiftOccasions() []GiftOccasion {
	return []GiftOccasion{Birthday, Anniversary, Holiday, JustBecause}
}

func BeautyCategories() []BeautyCategory {
	return []BeautyCategory{Skincare, Haircare, Spa, Wellness}
}

func NoteCategories() []NoteCategory {
	return []NoteCategory{Dream, Goal, Reminder, Idea}
}

// Info returns display metadata; unknown types render as "other".
func (t IncomeType) Info() CategoryInfo {
	switch t {
	case Salary:
		return CategoryInfo{ID: string(Salary), Label: "Salary", Emoji: "💼", Color: "from-blue-400 to-indigo-400"}
	case Freelance:
		return CategoryInfo{ID: string(Freelance), Label: "Freelance", Emoji: "✨", Color: "from-purple-400 to-violet-400"}
	case InvestmentIncome:
		return CategoryInfo{ID: string(InvestmentIncome), Label: "Investment", Emoji: "📈", Color: "from-green-400 to-emerald-400"}
	default:
		return CategoryInfo{ID: string(OtherIncome), Label: "Other", Emoji: "💰", Color: "from-gray-400 to-slate-400"}
	}
}

// Info returns display metadata; unknown categories render as "other".
func (c ExpenseCategory) Info() CategoryInfo {
	switch c {
	case Food:
		return CategoryInfo{ID: string(Food), Label: "Food & Drinks", Emoji: "🍱", Color: "from-orange-400 to-red-400"}
	case Clothes:
		return CategoryInfo{ID: string(Clothes), Label: "Clothes & Fashion", Emoji: "👗", Color: "from-pink-400 to-rose-400"}
	case Entertainment:
		return CategoryInfo{ID: string(Entertainment), Label: "Entertainment", Emoji: "🎉", Color: "from-purple-400 to-violet-400"}
	case Transport:
		return CategoryInfo{ID: string(Transport), Label: "Transport", Emoji: "🚗", Color: "from-blue-400 to-indigo-400"}
	case Health:
		return CategoryInfo{ID: string(Health), Label: "Health & Wellness", Emoji: "💊", Color: "from-green-400 to-emerald-400"}
	default:
		return CategoryInfo{ID: string(OtherExpense), Label: "Other", Emoji: "💸", Color: "from-gray-400 to-slate-400"}
	}
}

// Info returns display metadata; unknown types render as stocks.
func (t InvestmentType) Info() CategoryInfo {
	switch t {
	case MutualFund:
		return CategoryInfo{ID: string(MutualFund), Label: "Mutual Funds", Emoji: "💼", Color: "from-green-400 to-emerald-400"}
	case Crypto:
		return CategoryInfo{ID: string(Crypto), Label: "Cryptocurrency", Emoji: "🪙", Color: "from-amber-400 to-orange-400"}
	case Gold:
		return CategoryInfo{ID: string(Gold), Label: "Gold", Emoji: "🏆", Color: "from-yellow-400 to-amber-400"}
	default:
		return CategoryInfo{ID: string(Stock), Label: "Stocks", Emoji: "📈", Color: "from-blue-400 to-indigo-400"}
	}
}

// Info returns display metadata; unknown occasions render as birthdays.
func (o GiftOccasion) Info() CategoryInfo {
	switch o {
	case Anniversary:
		return CategoryInfo{ID: string(Anniversary), Label: "Anniversary", Emoji: "💕", Color: "from-red-400 to-pink-400"}
	case Holiday:
		return CategoryInfo{ID: string(Holiday), Label: "Holiday", Emoji: "🎄", Color: "from-green-400 to-emerald-400"}
	case JustBecause:
		return CategoryInfo{ID: string(JustBecause), Label: "Just Because", Emoji: "✨", Color: "from-purple-400 to-violet-400"}
	default:
		return CategoryInfo{ID: string(Birthday), Label: "Birthday", Emoji: "🎂", Color: "from-pink-400 to-rose-400"}
	}
}

// Info returns display metadata; unknown categories render as skincare.
func (c BeautyCategory) Info() CategoryInfo {
	switch c {
	case Haircare:
		return CategoryInfo{ID: string(Haircare), Label: "Haircare", Emoji: "💇", Color: "from-purple-400 to-violet-400"}
	case Spa:
		return CategoryInfo{ID: string(Spa), Label: "Spa & Massage", Emoji: "💆", Color: "from-blue-400 to-indigo-400"}
	case Wellness:
		return CategoryInfo{ID: string(Wellness), Label: "Wellness", Emoji: "🧘", Color: "from-green-400 to-emerald-400"}
	default:
		return CategoryInfo{ID: string(Skincare), Label: "Skincare", Emoji: "✨", Color: "from-pink-400 to-rose-400"}
	}
}

// Info returns display metadata; unknown categories render as dreams.
func (c NoteCategory) Info() CategoryInfo {
	switch c {
	case Goal:
		return CategoryInfo{ID: string(Goal), Label: "Financial Goals", Emoji: "🎯", Color: "from-purple-400 to-violet-400"}
	case Reminder:
		return CategoryInfo{ID: string(Reminder), Label: "Reminders", Emoji: "⏰", Color: "from-blue-400 to-indigo-400"}
	case Idea:
		return CategoryInfo{ID: string(Idea), Label: "Ideas & Tips", Emoji: "💡", Color: "from-green-400 to-emerald-400"}
	default:
		return CategoryInfo{ID: string(Dream), Label: "Dreams & Wishes", Emoji: "✨", Color: "from-pink-400 to-rose-400"}
	}
}

func ParseIncomeType(s string) (IncomeType, error) {
	return parseEnum(s, IncomeTypes())
}

func ParseExpenseCategory(s string) (ExpenseCategory, error) {
	return parseEnum(s, ExpenseCategories())
}

func ParseInvestmentType(s string) (InvestmentType, error) {
	return parseEnum(s, InvestmentTypes())
}

func ParseGiftOccasion(s string) (GiftOccasion, error) {
	return parseEnum(s, GiftOccasions())
}

func ParseBeautyCategory(s string) (BeautyCategory, error) {
	return parseEnum(s, BeautyCategories())
}

func ParseNoteCategory(s string) (NoteCategory, error) {
	return parseEnum(s, NoteCategories())
}

func parseEnum[T ~string](s string, valid []T) (T, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", ErrRequired
	}
	for _, v := range valid {
		if string(v) == s {
			return v, nil
		}
	}
	return "", ErrUnknownCategory
}

func isOneOf[T ~string](v T, valid []T) bool {
	for _, x := range valid {
		if x == v {
			return true
		}
	}
	return false
}

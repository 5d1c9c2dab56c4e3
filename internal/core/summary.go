package core

import "github.com/shopspring/decimal"

// CategoryAmount represents an amount aggregated by category key.
type CategoryAmount struct {
	Name   string
	Amount decimal.Decimal
}

// MonthOverview is a compact summary for a specific year+month.
type MonthOverview struct {
	Year     int
	Month    int // 1-12
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Savings  decimal.Decimal
}

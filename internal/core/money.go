// Package core provides money parsing and handling utilities.
//
// This file contains functions for parsing monetary amounts from form strings
// into exact decimals.
package core

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a decimal string to an exact positive decimal.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators. Signs,
// exponents, grouping separators and zero are rejected.
//
// Examples:
//
//	ParseAmount("12.34") -> 12.34, nil
//	ParseAmount("12,34") -> 12.34, nil
//	ParseAmount("0")     -> 0, ErrInvalidAmount
//	ParseAmount("")      -> 0, ErrRequired
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrRequired
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return decimal.Zero, ErrInvalidAmount
	}
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return decimal.Zero, ErrInvalidAmount
	}
	for _, part := range parts {
		for _, r := range part {
			if !unicode.IsDigit(r) {
				return decimal.Zero, ErrInvalidAmount
			}
		}
	}
	if parts[0] == "" {
		s = "0" + s
	}
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if !v.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	return v, nil
}

// FormatAmount renders an amount with two decimals for logs and previews.
// Currency symbols belong to the presentation layer.
func FormatAmount(v decimal.Decimal) string {
	return v.StringFixed(2)
}

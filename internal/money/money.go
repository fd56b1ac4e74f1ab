// Package money converts between major currency units (the decimal
// representation used in receipts and error messages) and the integer
// minor units the payment provider deals in.
package money

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// MajorToMinor scales a major-unit amount to minor units, truncating any
// fraction smaller than one minor unit. No rounding.
func MajorToMinor(major decimal.Decimal) int64 {
	return major.Mul(hundred).IntPart()
}

// MinorToMajor converts minor units back to a major-unit decimal by plain
// division; no currency-aware rounding.
func MinorToMajor(minor int64) decimal.Decimal {
	return decimal.NewFromInt(minor).Div(hundred)
}

// FormatMinor renders a minor-unit amount as a two-decimal major-unit
// string, e.g. 1500 -> "15.00".
func FormatMinor(minor int64) string {
	return MinorToMajor(minor).StringFixed(2)
}

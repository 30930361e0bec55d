package utils

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// HijriYearOffset approximates the Hijri year as Gregorian year + 579.
// This is not a calendar conversion; it drifts by about a year every 33 years
// and is wrong for part of every Gregorian year. Reminder labels depend on it as is.
const HijriYearOffset = 579

// LunarYearDays is the length used for lunar_yearly recurrence.
const LunarYearDays = 354

// ApproximateHijriYear returns the Hijri year label for t.
func ApproximateHijriYear(t time.Time) string {
	return strconv.Itoa(t.Year() + HijriYearOffset)
}

// CalculateDueDate returns the date days after start.
func CalculateDueDate(start time.Time, days int) time.Time {
	return start.AddDate(0, 0, days)
}

// NextOccurrence advances t by one recurrence period.
// The second return value is false for an unknown pattern.
func NextOccurrence(t time.Time, pattern string) (time.Time, bool) {
	return occurrence(t, pattern, 1)
}

// NextOccurrenceAfter returns the first occurrence of t's schedule strictly after now.
// Each candidate is n whole periods from t, so month-end overflow does not compound.
func NextOccurrenceAfter(t, now time.Time, pattern string) (time.Time, bool) {
	for n := 1; ; n++ {
		next, ok := occurrence(t, pattern, n)
		if !ok {
			return t, false
		}
		if next.After(now) {
			return next, true
		}
	}
}

func occurrence(t time.Time, pattern string, n int) (time.Time, bool) {
	switch pattern {
	case "weekly":
		return t.AddDate(0, 0, 7*n), true
	case "monthly":
		return t.AddDate(0, n, 0), true
	case "yearly":
		return t.AddDate(n, 0, 0), true
	case "lunar_yearly":
		return t.AddDate(0, 0, LunarYearDays*n), true
	default:
		return t, false
	}
}

// IsDateOverdue checks if date is before now
func IsDateOverdue(date, now time.Time) bool {
	return now.After(date)
}

// Percentage returns part/whole*100 rounded to 2 places, or zero when whole is zero.
func Percentage(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(decimal.NewFromInt(100)).Round(2)
}

// FormatMoney renders an amount with two decimals followed by the currency code.
func FormatMoney(amount decimal.Decimal, currency string) string {
	return amount.StringFixed(2) + " " + strings.ToUpper(currency)
}

// NormalizeCurrency trims and upper-cases a currency code.
func NormalizeCurrency(currency string) string {
	return strings.ToUpper(strings.TrimSpace(currency))
}

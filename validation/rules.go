package validation

import (
	"math"
	"regexp"
)

// The check functions below return "" when the value passes or is absent.
// Presence is checked separately so single-field and form validators agree.

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func checkTransactionType(v any) string {
	if !present(v) {
		return ""
	}
	if !TransactionType(stringOf(v)).IsValid() {
		return InvalidTransactionType
	}
	return ""
}

func checkAmount(v any, minAmount float64) string {
	if !present(v) {
		return ""
	}
	n := parseNumber(v)
	if math.IsNaN(n) || n < minAmount {
		return InvalidAmount
	}
	return ""
}

func checkMaxLength(v any, maxLen int, msg func(int) string) string {
	if !present(v) {
		return ""
	}
	if trimmedLength(v) > maxLen {
		return msg(maxLen)
	}
	return ""
}

func checkDueDay(v any) string {
	if !present(v) {
		return ""
	}
	n := parseNumber(v)
	if math.IsNaN(n) || n != math.Trunc(n) || n < MinDueDay || n > MaxDueDay {
		return InvalidDueDay
	}
	return ""
}

func checkEmail(v any) string {
	if !present(v) {
		return ""
	}
	if !emailPattern.MatchString(stringOf(v)) {
		return InvalidEmail
	}
	return ""
}

// field runs check on a single required value.
func field(name string, v any, check func(any) string) FieldResult {
	if !present(v) {
		return FieldResult{Error: Required(name)}
	}
	return FieldResult{Error: check(v)}
}

// optionalField runs check on a value that may be left empty.
func optionalField(v any, check func(any) string) FieldResult {
	return FieldResult{Error: check(v)}
}

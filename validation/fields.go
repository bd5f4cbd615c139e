package validation

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Fields is a submitted form keyed by field name. Values usually come from
// text inputs as strings, but numbers, booleans and nil are accepted too.
type Fields map[string]any

// present reports whether v counts as filled in. nil, empty strings, zero,
// NaN, false and nil pointers are absent; anything else is present.
func present(v any) bool {
	if v == nil {
		return false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.Len() > 0
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	}
	return true
}

func stringOf(v any) string {
	if v == nil {
		return ""
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String()
	}
	return fmt.Sprint(v)
}

// parseNumber reads the longest numeric prefix of v after leading
// whitespace, so "12abc" is 12. It returns NaN when no number can be read.
func parseNumber(v any) float64 {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	}

	s := strings.TrimLeftFunc(stringOf(v), isSpace)
	prefix := numericPrefix(s)
	if prefix == "" {
		return math.NaN()
	}

	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil && !isRangeErr(err) {
		return math.NaN()
	}
	return f
}

func isRangeErr(err error) bool {
	numErr, ok := err.(*strconv.NumError)
	return ok && numErr.Err == strconv.ErrRange
}

// numericPrefix returns the leading decimal literal of s, or "" if s does not
// start with one.
func numericPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		return s[:i] + "Inf"
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return ""
	}

	end := i
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			end = k
		}
	}

	return strings.TrimSuffix(s[:end], ".")
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// trimmedLength is the number of characters in v once surrounding
// whitespace is removed.
func trimmedLength(v any) int {
	return utf8.RuneCountInString(strings.TrimFunc(stringOf(v), isSpace))
}

// ParseAmount reads an amount the way the validators do. ok is false when v
// does not start with a number.
func ParseAmount(v any) (amount float64, ok bool) {
	n := parseNumber(v)
	return n, !math.IsNaN(n)
}

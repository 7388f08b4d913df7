package validator

import (
	"strings"
	"unicode/utf8"
)

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: newError(field, KindBlank, map[string]any{"field": field}),
	}
}

// Present validates an arbitrary presence condition computed by the caller.
func Present(field string, present bool) Rule {
	return Rule{
		Check: func() bool { return present },
		Error: newError(field, KindBlank, map[string]any{"field": field}),
	}
}

// MinLen validates that a string holds at least min characters.
// Length is counted in runes, not bytes.
func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: newError(field, KindTooShort, map[string]any{
			"field": field,
			"count": min,
		}),
	}
}

// Unique validates the outcome of a uniqueness lookup done by the caller.
func Unique(field string, taken bool) Rule {
	return Rule{
		Check: func() bool { return !taken },
		Error: newError(field, KindTaken, map[string]any{"field": field}),
	}
}

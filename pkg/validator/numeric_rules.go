package validator

// Number validates that a value was recognised as a number.
func Number(field string, isNumber bool) Rule {
	return Rule{
		Check: func() bool { return isNumber },
		Error: newError(field, KindNotANumber, map[string]any{"field": field}),
	}
}

// MinNum validates that a numeric value is greater than or equal to the minimum.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: newError(field, KindGreaterThanOrEqualTo, map[string]any{
			"field": field,
			"count": min,
		}),
	}
}

package validator

import "regexp"

// Format validates value against a precompiled pattern.
func Format(field, value string, pattern *regexp.Regexp) Rule {
	return Rule{
		Check: func() bool {
			return pattern.MatchString(value)
		},
		Error: newError(field, KindInvalid, map[string]any{"field": field}),
	}
}

// When applies rule only if cond holds; otherwise the rule passes.
// Useful for rules that make no sense on blank input.
func When(cond bool, rule Rule) Rule {
	check := rule.Check
	return Rule{
		Check: func() bool {
			return !cond || check()
		},
		Error: rule.Error,
	}
}

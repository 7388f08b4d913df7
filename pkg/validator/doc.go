// Package validator provides small declarative validation rules and the glue
// needed to turn their failures into localized, per-field messages.
//
// A Rule pairs a Check function with a ValidationError describing what went
// wrong. The error carries a symbolic Kind (blank, too_short, taken, ...) and
// the values needed to render it, but no hard-coded text: the message is
// produced later by a Translator, keyed by "errors.messages.<kind>".
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Required("title", p.Title),
//	    validator.MinLen("title", p.Title, 10),
//	    validator.MinNum("price", price, 0.01),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    msgs := validator.Localize(verrs, translator, "en").Messages()
//	    // msgs["title"] == []string{"can't be blank", ...}
//	}
//
// Apply evaluates every rule, so a field may collect several violations. They
// are reported in rule order.
//
// # Error Handling
//
// ValidationErrors implements error and matches ErrValidationFailed with
// errors.Is. Use ExtractValidationErrors to get at the individual violations.
//
// Rules that need I/O (such as a uniqueness lookup) should do the lookup
// first and feed the outcome into a rule like Unique, keeping this package
// free of side effects and safe for concurrent use.
package validator

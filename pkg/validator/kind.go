package validator

// Kind is a symbolic category of validation failure. The human readable
// message for a kind lives in the translation table under TranslationKey.
type Kind string

const (
	KindBlank                Kind = "blank"
	KindTooShort             Kind = "too_short"
	KindTaken                Kind = "taken"
	KindNotANumber           Kind = "not_a_number"
	KindGreaterThanOrEqualTo Kind = "greater_than_or_equal_to"
	KindInvalid              Kind = "invalid"
)

// MessagesPrefix is the translation namespace shared by all kinds.
const MessagesPrefix = "errors.messages."

// TranslationKey returns the translation key for the kind,
// e.g. "errors.messages.taken".
func (k Kind) TranslationKey() string {
	return MessagesPrefix + string(k)
}

// newError builds a ValidationError for kind with the given substitution values.
func newError(field string, kind Kind, values map[string]any) ValidationError {
	return ValidationError{
		Field:             field,
		Kind:              kind,
		TranslationKey:    kind.TranslationKey(),
		TranslationValues: values,
	}
}

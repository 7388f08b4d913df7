package validator

import (
	"fmt"
	"slices"
)

// Translator resolves a translation key for a language. Arguments are
// name/value pairs substituted into the translated template.
// *i18n.Translator satisfies this interface.
type Translator interface {
	T(lang, key string, args ...string) string
}

// MessageFor returns the message for a violation kind in the given language.
func MessageFor(tr Translator, lang string, kind Kind, values map[string]any) string {
	return tr.T(lang, kind.TranslationKey(), translationArgs(values)...)
}

// Localize returns a copy of errs with every Message produced by tr.
// The receiver is left untouched so the same result can be localized
// into several languages.
func Localize(errs ValidationErrors, tr Translator, lang string) ValidationErrors {
	if errs == nil {
		return nil
	}

	out := make(ValidationErrors, len(errs))
	for i, err := range errs {
		err.Message = tr.T(lang, err.TranslationKey, translationArgs(err.TranslationValues)...)
		out[i] = err
	}
	return out
}

// translationArgs flattens values into sorted name/value pairs.
func translationArgs(values map[string]any) []string {
	if len(values) == 0 {
		return nil
	}

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	slices.Sort(names)

	args := make([]string, 0, len(values)*2)
	for _, name := range names {
		args = append(args, name, fmt.Sprint(values[name]))
	}
	return args
}

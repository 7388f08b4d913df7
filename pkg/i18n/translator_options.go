package i18n

import (
	"log/slog"

	"github.com/dmitrymomot/depot/pkg/logger"
)

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the last language in the lookup chain.
// POSIX names are accepted ("de_DE.UTF-8" becomes "de-DE"); blank is ignored.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang = normalizeTag(lang); lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithFallbackToKey makes T return the key itself when no language in the
// chain has it. On by default.
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) {
		t.fallbackToKey = fallback
	}
}

// WithLogger sets the translator logger. Records carry component=i18n.
// Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(t *Translator) {
		if l != nil {
			t.logger = l.With(logger.Component("i18n"))
		}
	}
}

// WithMissingTranslationsLogging logs a warning for every lookup that
// falls through the whole chain. Off by default.
func WithMissingTranslationsLogging(enabled bool) Option {
	return func(t *Translator) {
		t.missingLogMode = enabled
	}
}

// WithNoLogging discards all translator logs, including missing keys.
func WithNoLogging() Option {
	return func(t *Translator) {
		t.logger = logger.Discard()
		t.missingLogMode = false
	}
}

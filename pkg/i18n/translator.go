package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/dmitrymomot/depot/pkg/logger"
)

// Translator represents a struct that handles translation functionality.
// It uses an adapter to load translations from various sources.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
	adapter        TranslationAdapter
}

// NewTranslator creates a new Translator instance with the given adapter and options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:    DefaultLanguage,
		fallbackToKey:  true,
		missingLogMode: false,
		logger:         logger.Discard(),
		adapter:        adapter,
	}

	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}

	if err := t.validateTranslations(translations); err != nil {
		return nil, err
	}

	t.translations = translations
	t.logger.InfoContext(ctx, "Translations loaded",
		"languages", t.supportedLanguages(),
		"default", t.defaultLang,
	)
	return t, nil
}

// Reload re-reads translations from the adapter and swaps them in atomically.
// On error the previously loaded translations stay in place.
func (t *Translator) Reload(ctx context.Context) error {
	translations, err := t.adapter.Load(ctx)
	if err != nil {
		return err
	}
	if err := t.validateTranslations(translations); err != nil {
		return err
	}

	t.mu.Lock()
	t.translations = translations
	t.mu.Unlock()
	return nil
}

func (t *Translator) validateTranslations(trans map[string]map[string]any) error {
	if len(trans) == 0 {
		t.logger.Warn("No translations provided")
		return nil
	}

	for lang, translations := range trans {
		if lang == "" {
			return ErrEmptyLanguageCode
		}
		if translations == nil {
			return fmt.Errorf("nil translations map for language: %s", lang)
		}
	}
	return nil
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// SupportedLanguages returns a list of language codes that have translations available.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

// DefaultLanguage returns the language used when the requested one has no translation.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// getTranslation traverses a nested map using dot-separated keys.
// For example, key "errors.messages.taken" will traverse m["errors"] then ["messages"] then ["taken"].
func getTranslation(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		if i == len(parts)-1 {
			val, ok := current[part]
			return val, ok
		}

		next, ok := current[part]
		if !ok {
			return nil, false
		}

		currentMap, ok := next.(map[string]any)
		if !ok {
			anyMap, isAnyMap := next.(map[any]any)
			if !isAnyMap {
				return nil, false
			}

			currentMap = make(map[string]any, len(anyMap))
			for k, v := range anyMap {
				if ks, ok := k.(string); ok {
					currentMap[ks] = v
				}
			}
		}

		current = currentMap
	}

	return nil, false
}

// candidates lists the languages to search for lang, most specific first:
// the language itself, its base language, then the default language.
func (t *Translator) candidates(lang string) []string {
	out := make([]string, 0, 3)
	add := func(l string) {
		if l == "" {
			return
		}
		for _, seen := range out {
			if seen == l {
				return
			}
		}
		out = append(out, l)
	}

	add(lang)
	add(BaseLanguage(lang))
	add(t.defaultLang)
	return out
}

// lookup returns the first string translation for key along the fallback chain.
// Caller must hold the read lock.
func (t *Translator) lookup(lang, key string) (string, bool) {
	for _, l := range t.candidates(lang) {
		langMap, ok := t.translations[l]
		if !ok {
			continue
		}

		val, ok := getTranslation(langMap, key)
		if !ok {
			continue
		}

		switch v := val.(type) {
		case string:
			return v, true
		case fmt.Stringer:
			return v.String(), true
		default:
			if t.missingLogMode {
				t.logger.Warn("Translation is not a string", logger.Locale(l), slog.String("key", key), slog.String("type", fmt.Sprintf("%T", v)))
			}
		}
	}
	return "", false
}

// HasTranslation checks if a translation exists for the given language and key,
// without falling back to other languages.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		return false
	}

	_, ok = getTranslation(langMap, key)
	return ok
}

func buildParams(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

// Regex to find named parameters in the form %{name}
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// sprintf substitutes "%{key}" placeholders from name/value pairs.
// Unknown placeholders are kept as-is.
func sprintf(tmpl string, args []string) string {
	if len(args) == 0 {
		return tmpl
	}
	params := buildParams(args)
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if val, ok := params[name]; ok {
			return val
		}
		return match
	})
}

// T translates a key for the given language.
// Arguments are key-value pairs: translator.T("en", "errors.messages.too_short", "count", "10")
// substitutes "%{count}" in the template.
//
// Lookup falls back from the requested language ("de-AT") to its base
// language ("de") and then to the default language. If nothing matches and
// FallbackToKey is enabled, the key itself is returned; otherwise "".
func (t *Translator) T(lang, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if tmpl, ok := t.lookup(lang, key); ok {
		return sprintf(tmpl, args)
	}

	if t.missingLogMode {
		t.logger.Warn("Translation not found", logger.Locale(lang), slog.String("key", key))
	}
	if t.fallbackToKey {
		return sprintf(key, args)
	}
	return ""
}

// Td translates a key with an explicit default used when no translation is found.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if tmpl, ok := t.lookup(lang, key); ok {
		return sprintf(tmpl, args)
	}
	return sprintf(defaultValue, args)
}

// Tc translates a key using the locale stored in the context.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	lang, ok := LocaleFromContext(ctx)
	if !ok {
		lang = t.defaultLang
	}
	return t.T(lang, key, args...)
}

// ExportJSON returns all translations for a language as a JSON string.
func (t *Translator) ExportJSON(lang string) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	translations, ok := t.translations[lang]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrLanguageNotSupported, lang)
	}

	bytes, err := json.Marshal(translations)
	if err != nil {
		return "", errors.Join(ErrFailedToMarshalJSON, err)
	}

	return string(bytes), nil
}

// Package i18n provides a small, thread-safe translation layer.
//
// Translations are loaded once through a TranslationAdapter (in-memory map,
// single file, directory on disk, or any fs.FS such as an embed.FS) and parsed
// by a Parser (YAML or JSON). Keys are dot-separated paths into the nested
// translation tree, e.g. "errors.messages.taken", and templates may contain
// named placeholders in the form %{name}.
//
// # Usage
//
//	adapter := i18n.NewFSAdapter(i18n.NewYAMLParser(), localesFS, "locales")
//	tr, err := i18n.NewTranslator(ctx, adapter, i18n.WithDefaultLanguage("en"))
//	if err != nil {
//	    return err
//	}
//
//	msg := tr.T("en", "errors.messages.too_short", "count", "10")
//	// "is too short and must contain at least 10 characters"
//
// # Fallback
//
// T looks the key up in the requested language, then in its base language
// ("de" for "de-AT"), then in the default language. Only when all of them
// miss does it fall back to returning the key (WithFallbackToKey, on by
// default).
//
// ResolveLocale maps user supplied locale names, including POSIX forms such as
// "de_DE.UTF-8", onto the supported set using golang.org/x/text/language.
//
// # Error Handling
//
// Loading and parsing failures wrap the sentinel errors in errors.go and can
// be checked with errors.Is.
package i18n

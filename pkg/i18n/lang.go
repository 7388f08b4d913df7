package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is the language used when nothing else is configured.
const DefaultLanguage = "en"

// normalizeTag converts POSIX locale names such as "de_DE.UTF-8" or
// "pt_BR@euro" into BCP 47 form ("de-DE", "pt-BR").
func normalizeTag(tag string) string {
	tag = strings.TrimSpace(tag)
	if i := strings.IndexAny(tag, ".@"); i >= 0 {
		tag = tag[:i]
	}
	return strings.ReplaceAll(tag, "_", "-")
}

// BaseLanguage returns the base language subtag of a locale ("de" for "de-AT").
// Returns "" when the tag cannot be parsed.
func BaseLanguage(tag string) string {
	tag = normalizeTag(tag)
	if tag == "" {
		return ""
	}

	t, err := language.Parse(tag)
	if err != nil {
		if i := strings.Index(tag, "-"); i > 0 {
			return strings.ToLower(tag[:i])
		}
		return ""
	}

	base, conf := t.Base()
	if conf == language.No {
		return ""
	}
	return base.String()
}

// ResolveLocale picks the supported language that best matches tag, which may
// be a BCP 47 tag ("en-GB") or a POSIX locale ("de_DE.UTF-8", as found in LANG).
// Returns defaultLang when tag is empty, "C"/"POSIX", or matches nothing.
func ResolveLocale(tag string, supported []string, defaultLang string) string {
	tag = normalizeTag(tag)
	if tag == "" || tag == "C" || tag == "POSIX" || len(supported) == 0 {
		return defaultLang
	}

	desired, err := language.Parse(tag)
	if err != nil {
		return defaultLang
	}

	tags := make([]language.Tag, 0, len(supported))
	idx := make([]int, 0, len(supported))
	for i, s := range supported {
		st, err := language.Parse(s)
		if err != nil {
			continue
		}
		tags = append(tags, st)
		idx = append(idx, i)
	}
	if len(tags) == 0 {
		return defaultLang
	}

	_, i, conf := language.NewMatcher(tags).Match(desired)
	if conf == language.No {
		return defaultLang
	}
	return supported[idx[i]]
}

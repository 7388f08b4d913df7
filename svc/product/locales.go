package product

import (
	"context"
	"strings"

	"github.com/dmitrymomot/depot/pkg/i18n"
	"github.com/dmitrymomot/depot/pkg/validator"
)

const (
	fullMessageFormatKey = "errors.format"
	attributeKeyPrefix   = "attributes.product."
)

// NewTranslator loads the bundled locales (en, de).
func NewTranslator(ctx context.Context, opts ...i18n.Option) (*i18n.Translator, error) {
	return i18n.NewTranslator(ctx, i18n.NewFSAdapter(i18n.NewYAMLParser(), Locales(), "."), opts...)
}

// FullMessages renders every violation in err as "<Attribute> <message>",
// e.g. "Title can't be blank", in rule order.
func (v *Validator) FullMessages(ctx context.Context, err error) []string {
	errs := validator.ExtractValidationErrors(err)
	if errs.IsEmpty() {
		return nil
	}

	locale := v.Locale(ctx)
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, v.tr.T(locale, fullMessageFormatKey,
			"attribute", v.attributeName(locale, e.Field),
			"message", e.Text(),
		))
	}
	return out
}

func (v *Validator) attributeName(locale, field string) string {
	key := attributeKeyPrefix + field
	if name := v.tr.T(locale, key); name != "" && name != key {
		return name
	}
	return humanize(field)
}

// humanize turns "image_url" into "Image url".
func humanize(field string) string {
	s := strings.ReplaceAll(field, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

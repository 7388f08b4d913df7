package product

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/dmitrymomot/depot/pkg/i18n"
	"github.com/dmitrymomot/depot/pkg/validator"
)

const (
	MinTitleLength = 10
	MinPrice       = 0.01
)

// imageURLPattern accepts any prefix ending in a gif, jpg or png extension.
var imageURLPattern = regexp.MustCompile(`(?i)\.(gif|jpg|png)$`)

// Validator checks products against the catalog rules. Messages are produced
// by the translator in the locale stored in the context (see i18n.SetLocale)
// or in the validator's default locale.
type Validator struct {
	store  Store
	tr     validator.Translator
	locale string
}

// NewValidator returns a validator that looks up title uniqueness in store.
func NewValidator(store Store, tr validator.Translator, defaultLocale string) (*Validator, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	if tr == nil {
		return nil, ErrNilTranslator
	}
	if defaultLocale == "" {
		defaultLocale = i18n.DefaultLanguage
	}
	return &Validator{store: store, tr: tr, locale: defaultLocale}, nil
}

// Validate returns nil for a valid product and localized
// validator.ValidationErrors otherwise. Any other error comes from the
// uniqueness lookup. p is never modified.
func (v *Validator) Validate(ctx context.Context, p *Product) error {
	start := time.Now()
	errs, err := v.check(ctx, p)
	observeValidation(errs, err, time.Since(start))
	if err != nil {
		return err
	}
	if errs.IsEmpty() {
		return nil
	}
	return validator.Localize(errs, v.tr, v.Locale(ctx))
}

// Locale returns the locale messages are rendered in for ctx.
func (v *Validator) Locale(ctx context.Context) string {
	if locale, ok := i18n.LocaleFromContext(ctx); ok && locale != "" {
		return locale
	}
	return v.locale
}

// MessageFor returns the localized message for a violation kind.
func (v *Validator) MessageFor(ctx context.Context, kind validator.Kind, values map[string]any) string {
	return validator.MessageFor(v.tr, v.Locale(ctx), kind, values)
}

func (v *Validator) check(ctx context.Context, p *Product) (validator.ValidationErrors, error) {
	if p == nil {
		p = &Product{}
	}

	taken, err := v.titleTaken(ctx, p)
	if err != nil {
		return nil, err
	}

	price, isNumber := p.Price.Float64()

	err = validator.Apply(
		validator.Required(FieldTitle, p.Title),
		validator.MinLen(FieldTitle, p.Title, MinTitleLength),
		validator.Unique(FieldTitle, taken),
		validator.Required(FieldDescription, p.Description),
		validator.Present(FieldPrice, !p.Price.IsBlank()),
		validator.Number(FieldPrice, isNumber),
		validator.When(isNumber, validator.MinNum(FieldPrice, price, MinPrice)),
		validator.Required(FieldImageURL, p.ImageURL),
		validator.When(strings.TrimSpace(p.ImageURL) != "",
			validator.Format(FieldImageURL, p.ImageURL, imageURLPattern)),
	)
	return validator.ExtractValidationErrors(err), nil
}

// titleTaken reports whether another stored product already uses p.Title.
func (v *Validator) titleTaken(ctx context.Context, p *Product) (bool, error) {
	if strings.TrimSpace(p.Title) == "" {
		return false, nil
	}
	existing, err := v.store.FindByTitle(ctx, p.Title)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Join(ErrStoreFailure, fmt.Errorf("find by title: %w", err))
	}
	return existing != nil && existing.ID != p.ID, nil
}

// Messages returns field to messages for a validation error, or nil when err
// carries no violations.
func Messages(err error) map[string][]string {
	errs := validator.ExtractValidationErrors(err)
	if errs.IsEmpty() {
		return nil
	}
	return errs.Messages()
}

// taken returns the localized title uniqueness violation.
func (v *Validator) taken(ctx context.Context) error {
	errs := validator.ExtractValidationErrors(validator.Apply(validator.Unique(FieldTitle, true)))
	return validator.Localize(errs, v.tr, v.Locale(ctx))
}

package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/depot/pkg/i18n"
)

func TestBaseLanguage(t *testing.T) {
	tests := map[string]string{
		"de-AT":       "de",
		"en":          "en",
		"pt_BR.UTF-8": "pt",
		"":            "",
	}
	for in, want := range tests {
		assert.Equal(t, want, i18n.BaseLanguage(in), in)
	}
}

func TestResolveLocale(t *testing.T) {
	supported := []string{"en", "de"}

	tests := []struct {
		name string
		tag  string
		want string
	}{
		{"exact", "de", "de"},
		{"region", "de-CH", "de"},
		{"posix", "de_DE.UTF-8", "de"},
		{"posix with modifier", "en_GB@euro", "en"},
		{"unsupported", "ja-JP", "en"},
		{"empty", "", "en"},
		{"C locale", "C", "en"},
		{"garbage", "!!", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, i18n.ResolveLocale(tt.tag, supported, "en"))
		})
	}

	t.Run("no supported languages", func(t *testing.T) {
		assert.Equal(t, "en", i18n.ResolveLocale("de", nil, "en"))
	})
}

func TestLocaleContext(t *testing.T) {
	_, ok := i18n.LocaleFromContext(context.Background())
	assert.False(t, ok)
	assert.Equal(t, i18n.DefaultLanguage, i18n.GetLocale(context.Background()))

	ctx := i18n.SetLocale(context.Background(), "de")
	locale, ok := i18n.LocaleFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "de", locale)
	assert.Equal(t, "de", i18n.GetLocale(ctx))
}

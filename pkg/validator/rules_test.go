package validator_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/depot/pkg/validator"
)

func TestRequired(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"non-empty", "yyy", true},
		{"empty", "", false},
		{"whitespace only", " \t\n", false},
		{"padded", "  x  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := validator.Required("description", tt.value)
			assert.Equal(t, tt.want, rule.Check())
			assert.Equal(t, "description", rule.Error.Field)
			assert.Equal(t, validator.KindBlank, rule.Error.Kind)
			assert.Equal(t, "errors.messages.blank", rule.Error.TranslationKey)
		})
	}
}

func TestPresent(t *testing.T) {
	assert.True(t, validator.Present("price", true).Check())
	assert.False(t, validator.Present("price", false).Check())
	assert.Equal(t, validator.KindBlank, validator.Present("price", false).Error.Kind)
}

func TestMinLen(t *testing.T) {
	t.Parallel()

	t.Run("boundary", func(t *testing.T) {
		assert.False(t, validator.MinLen("title", "christmas", 10).Check())
		assert.True(t, validator.MinLen("title", "motorcycle", 10).Check())
	})

	t.Run("counts runes not bytes", func(t *testing.T) {
		// 9 characters, 18 bytes
		assert.False(t, validator.MinLen("title", "ПрограммИ", 10).Check())
		assert.True(t, validator.MinLen("title", "Программир", 10).Check())
	})

	t.Run("error carries count", func(t *testing.T) {
		rule := validator.MinLen("title", "ball", 10)
		assert.Equal(t, validator.KindTooShort, rule.Error.Kind)
		assert.Equal(t, 10, rule.Error.TranslationValues["count"])
	})
}

func TestNumberAndMinNum(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.Number("price", true).Check())
	assert.False(t, validator.Number("price", false).Check())
	assert.Equal(t, validator.KindNotANumber, validator.Number("price", false).Error.Kind)

	for _, v := range []float64{-1, 0, 0.009} {
		assert.False(t, validator.MinNum("price", v, 0.01).Check(), "%v", v)
	}
	for _, v := range []float64{0.01, 1, 1000} {
		assert.True(t, validator.MinNum("price", v, 0.01).Check(), "%v", v)
	}

	rule := validator.MinNum("price", 0.0, 0.01)
	assert.Equal(t, validator.KindGreaterThanOrEqualTo, rule.Error.Kind)
	assert.Equal(t, 0.01, rule.Error.TranslationValues["count"])
}

func TestUnique(t *testing.T) {
	assert.True(t, validator.Unique("title", false).Check())
	rule := validator.Unique("title", true)
	assert.False(t, rule.Check())
	assert.Equal(t, "errors.messages.taken", rule.Error.TranslationKey)
}

func TestFormatAndWhen(t *testing.T) {
	t.Parallel()

	pattern := regexp.MustCompile(`(?i)\.(gif|jpg|png)$`)

	assert.True(t, validator.Format("image_url", "fred.gif", pattern).Check())
	assert.False(t, validator.Format("image_url", "fred.doc", pattern).Check())
	assert.Equal(t, validator.KindInvalid, validator.Format("image_url", "", pattern).Error.Kind)

	t.Run("when skips rule on false condition", func(t *testing.T) {
		rule := validator.When(false, validator.Format("image_url", "", pattern))
		assert.True(t, rule.Check())
	})

	t.Run("when applies rule on true condition", func(t *testing.T) {
		rule := validator.When(true, validator.Format("image_url", "fred.doc", pattern))
		assert.False(t, rule.Check())
		assert.Equal(t, validator.KindInvalid, rule.Error.Kind)
	})
}

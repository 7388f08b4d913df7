package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/depot/pkg/i18n"
)

func TestYAMLParser(t *testing.T) {
	p := i18n.NewYAMLParser()

	t.Run("nested", func(t *testing.T) {
		got, err := p.Parse(context.Background(), enYAML)
		require.NoError(t, err)
		messages := got["en"]["errors"].(map[string]any)["messages"].(map[string]any)
		assert.Equal(t, "has already been taken", messages["taken"])
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := p.Parse(context.Background(), "en: [")
		require.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("top level must be maps", func(t *testing.T) {
		_, err := p.Parse(context.Background(), "en: hello")
		require.ErrorIs(t, err, i18n.ErrInvalidTranslation)
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := p.Parse(context.Background(), "# nothing")
		require.ErrorIs(t, err, i18n.ErrInvalidTranslation)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := p.Parse(ctx, enYAML)
		require.ErrorIs(t, err, i18n.ErrParsingCancelled)
	})

	t.Run("extensions", func(t *testing.T) {
		assert.True(t, p.SupportsFileExtension("yml"))
		assert.True(t, p.SupportsFileExtension(".YAML"))
		assert.False(t, p.SupportsFileExtension("json"))
	})
}

func TestJSONParser(t *testing.T) {
	p := i18n.NewJSONParser()

	got, err := p.Parse(context.Background(), `{"en":{"errors":{"messages":{"blank":"can't be blank"}}}}`)
	require.NoError(t, err)
	assert.Contains(t, got, "en")

	_, err = p.Parse(context.Background(), `{"en":`)
	require.ErrorIs(t, err, i18n.ErrFailedToParseJSON)

	_, err = p.Parse(context.Background(), `{"en":"flat"}`)
	require.ErrorIs(t, err, i18n.ErrInvalidTranslation)

	assert.True(t, p.SupportsFileExtension(".json"))
	assert.False(t, p.SupportsFileExtension("yml"))
}

func TestNewParserForFile(t *testing.T) {
	assert.IsType(t, &i18n.YAMLParser{}, i18n.NewParserForFile("en.yml"))
	assert.IsType(t, &i18n.YAMLParser{}, i18n.NewParserForFile("en.YAML"))
	assert.IsType(t, &i18n.JSONParser{}, i18n.NewParserForFile("en.json"))
	assert.Nil(t, i18n.NewParserForFile("en.toml"))
	assert.Nil(t, i18n.NewParserForFile("README"))
}

package product_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/depot/svc/product"
)

func TestLoadFixtures(t *testing.T) {
	t.Parallel()

	t.Run("loads named records", func(t *testing.T) {
		store := product.NewMemoryStore()
		fixtures := loadFixtures(t, store)

		assert.Equal(t, []string{"one", "ruby", "two"}, fixtures.Names())

		ruby, err := fixtures.Get("ruby")
		require.NoError(t, err)
		assert.Equal(t, product.FixtureID("ruby"), ruby.ID)
		assert.Equal(t, "Programming Ruby 1.9", ruby.Title)
		assert.Equal(t, "ruby.png", ruby.ImageURL)
		price, ok := ruby.Price.Float64()
		require.True(t, ok)
		assert.InDelta(t, 49.5, price, 1e-9)

		stored, err := store.FindByTitle(context.Background(), ruby.Title)
		require.NoError(t, err)
		assert.Equal(t, ruby.ID, stored.ID)
	})

	t.Run("fixture ids are stable", func(t *testing.T) {
		assert.Equal(t, product.FixtureID("ruby"), product.FixtureID("ruby"))
		assert.NotEqual(t, product.FixtureID("ruby"), product.FixtureID("one"))
	})

	t.Run("unknown fixture", func(t *testing.T) {
		fixtures := loadFixtures(t, product.NewMemoryStore())
		_, err := fixtures.Get("python")
		assert.ErrorIs(t, err, product.ErrUnknownFixture)
	})

	t.Run("fixtures bypass validation", func(t *testing.T) {
		store := product.NewMemoryStore()
		fixtures, err := product.LoadFixtures(context.Background(), store, strings.NewReader("short:\n  title: ball\n"))
		require.NoError(t, err)
		p, err := fixtures.Get("short")
		require.NoError(t, err)
		assert.True(t, p.Price.IsBlank())
	})

	t.Run("empty input", func(t *testing.T) {
		fixtures, err := product.LoadFixtures(context.Background(), product.NewMemoryStore(), strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, fixtures)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := product.LoadFixtures(context.Background(), product.NewMemoryStore(), strings.NewReader("ruby: [unterminated"))
		assert.ErrorIs(t, err, product.ErrInvalidFixture)
	})

	t.Run("duplicate titles", func(t *testing.T) {
		in := "a:\n  title: Same Same Same\nb:\n  title: Same Same Same\n"
		_, err := product.LoadFixtures(context.Background(), product.NewMemoryStore(), strings.NewReader(in))
		assert.ErrorIs(t, err, product.ErrDuplicateTitle)
	})

	t.Run("nil store", func(t *testing.T) {
		_, err := product.LoadFixtures(context.Background(), nil, strings.NewReader(""))
		assert.ErrorIs(t, err, product.ErrNilStore)
	})
}

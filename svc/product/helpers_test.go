package product_test

import (
	"context"
	"os"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/depot/pkg/i18n"
	"github.com/dmitrymomot/depot/svc/product"
)

func newTranslator(t *testing.T) *i18n.Translator {
	t.Helper()
	tr, err := product.NewTranslator(context.Background(), i18n.WithNoLogging())
	require.NoError(t, err)
	return tr
}

func newService(t *testing.T, store product.Store, opts ...product.ServiceOption) product.Service {
	t.Helper()
	opts = append([]product.ServiceOption{product.WithLogger(slogt.New(t))}, opts...)
	svc, err := product.NewService(store, newTranslator(t), opts...)
	require.NoError(t, err)
	return svc
}

func loadFixtures(t *testing.T, store product.Store) product.Fixtures {
	t.Helper()
	f, err := os.Open("testdata/products.yml")
	require.NoError(t, err)
	defer f.Close()

	fixtures, err := product.LoadFixtures(context.Background(), store, f)
	require.NoError(t, err)
	return fixtures
}

// validAttrs returns attributes that pass every rule. Override fields per case.
func validAttrs() product.Attributes {
	return product.Attributes{
		Title:       "My Book Title",
		Description: "yyy",
		Price:       product.NewPrice(1),
		ImageURL:    "fred.gif",
	}
}

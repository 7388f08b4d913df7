package product_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/depot/pkg/i18n"
	"github.com/dmitrymomot/depot/pkg/validator"
	"github.com/dmitrymomot/depot/svc/product"
)

// failingStore fails every call with err.
type failingStore struct{ err error }

func (s failingStore) FindByTitle(context.Context, string) (*product.Product, error) {
	return nil, s.err
}
func (s failingStore) Get(context.Context, uuid.UUID) (*product.Product, error) { return nil, s.err }
func (s failingStore) List(context.Context) ([]*product.Product, error) { return nil, s.err }
func (s failingStore) Create(context.Context, *product.Product) error { return s.err }
func (s failingStore) Update(context.Context, *product.Product) error { return s.err }
func (s failingStore) Delete(context.Context, uuid.UUID) error { return s.err }

// racingStore hides existing titles from lookups, simulating another writer
// inserting the same title between validation and write.
type racingStore struct{ *product.MemoryStore }

func (racingStore) FindByTitle(context.Context, string) (*product.Product, error) {
	return nil, product.ErrNotFound
}

// silentStore answers title lookups with neither a product nor ErrNotFound.
type silentStore struct{ *product.MemoryStore }

func (silentStore) FindByTitle(context.Context, string) (*product.Product, error) {
	return nil, nil
}

func TestServiceSave(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	t.Run("creates valid product", func(t *testing.T) {
		store := product.NewMemoryStore()
		svc := newService(t, store, product.WithClock(clock))

		p := product.New(validAttrs())
		require.NoError(t, svc.Save(context.Background(), p))
		assert.False(t, p.IsNew())
		assert.Equal(t, now, p.CreatedAt)
		assert.Equal(t, now, p.UpdatedAt)

		stored, err := svc.Get(context.Background(), p.ID)
		require.NoError(t, err)
		assert.Equal(t, p, stored)
	})

	t.Run("invalid product is not written", func(t *testing.T) {
		store := product.NewMemoryStore()
		svc := newService(t, store)

		p := product.New(product.Attributes{Title: "ball"})
		err := svc.Save(context.Background(), p)
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.True(t, p.IsNew())

		list, err := store.List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("nil product is invalid", func(t *testing.T) {
		svc := newService(t, product.NewMemoryStore())
		err := svc.Save(context.Background(), nil)
		assert.True(t, validator.IsValidationError(err))
	})

	t.Run("updates existing product", func(t *testing.T) {
		store := product.NewMemoryStore()
		svc := newService(t, store, product.WithClock(clock))
		ctx := context.Background()

		p := product.New(validAttrs())
		require.NoError(t, svc.Save(ctx, p))
		id := p.ID

		now2 := now.Add(time.Hour)
		svc = newService(t, store, product.WithClock(func() time.Time { return now2 }))
		p.Title = "A Different Title"
		require.NoError(t, svc.Save(ctx, p))
		assert.Equal(t, id, p.ID)
		assert.Equal(t, now, p.CreatedAt)
		assert.Equal(t, now2, p.UpdatedAt)

		_, err := svc.FindByTitle(ctx, "My Book Title")
		assert.ErrorIs(t, err, product.ErrNotFound)
		got, err := svc.FindByTitle(ctx, "A Different Title")
		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
	})

	t.Run("update cannot steal another title", func(t *testing.T) {
		store := product.NewMemoryStore()
		fixtures := loadFixtures(t, store)
		svc := newService(t, store)

		one, err := fixtures.Get("one")
		require.NoError(t, err)
		ruby, err := fixtures.Get("ruby")
		require.NoError(t, err)

		one.Title = ruby.Title
		err = svc.Save(context.Background(), one)
		assert.Equal(t, []string{"has already been taken"}, product.Messages(err)["title"])
	})

	t.Run("duplicate title on write becomes taken violation", func(t *testing.T) {
		store := racingStore{product.NewMemoryStore()}
		svc := newService(t, store)
		ctx := i18n.SetLocale(context.Background(), "de")

		require.NoError(t, svc.Save(ctx, product.New(validAttrs())))

		p := product.New(validAttrs())
		err := svc.Save(ctx, p)
		require.Error(t, err)
		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 1)
		assert.True(t, errs.HasKind("title", validator.KindTaken))
		assert.Equal(t, []string{"ist bereits vergeben"}, errs.Get("title"))
		assert.True(t, p.IsNew())
	})

	t.Run("store failure", func(t *testing.T) {
		boom := errors.New("disk full")
		store := &flakyStore{MemoryStore: product.NewMemoryStore(), createErr: boom}
		svc := newService(t, store)

		p := product.New(validAttrs())
		err := svc.Save(context.Background(), p)
		assert.ErrorIs(t, err, boom)
		assert.ErrorIs(t, err, product.ErrStoreFailure)
		assert.False(t, validator.IsValidationError(err))
		assert.True(t, p.IsNew())
	})

	t.Run("update of deleted product", func(t *testing.T) {
		store := product.NewMemoryStore()
		svc := newService(t, store)
		ctx := context.Background()

		p := product.New(validAttrs())
		require.NoError(t, svc.Save(ctx, p))
		require.NoError(t, svc.Delete(ctx, p.ID))

		err := svc.Save(ctx, p)
		assert.ErrorIs(t, err, product.ErrNotFound)
	})
}

type flakyStore struct {
	*product.MemoryStore
	createErr error
}

func (s *flakyStore) Create(ctx context.Context, p *product.Product) error {
	if s.createErr != nil {
		return s.createErr
	}
	return s.MemoryStore.Create(ctx, p)
}

func TestServiceQueries(t *testing.T) {
	t.Parallel()

	store := product.NewMemoryStore()
	fixtures := loadFixtures(t, store)
	svc := newService(t, store)
	ctx := context.Background()

	t.Run("list is ordered by title", func(t *testing.T) {
		list, err := svc.List(ctx)
		require.NoError(t, err)
		titles := make([]string, 0, len(list))
		for _, p := range list {
			titles = append(titles, p.Title)
		}
		assert.Equal(t, []string{"MyString One", "MyString Two", "Programming Ruby 1.9"}, titles)
	})

	t.Run("get by fixture id", func(t *testing.T) {
		p, err := svc.Get(ctx, product.FixtureID("ruby"))
		require.NoError(t, err)
		want, _ := fixtures.Get("ruby")
		assert.Equal(t, want.Title, p.Title)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Get(ctx, uuid.New())
		assert.ErrorIs(t, err, product.ErrNotFound)
		assert.NotErrorIs(t, err, product.ErrStoreFailure)
	})

	t.Run("delete unknown id", func(t *testing.T) {
		assert.ErrorIs(t, svc.Delete(ctx, uuid.New()), product.ErrNotFound)
	})

	t.Run("store errors are wrapped", func(t *testing.T) {
		boom := errors.New("timeout")
		failing := newService(t, failingStore{err: boom})
		_, err := failing.List(ctx)
		assert.ErrorIs(t, err, product.ErrStoreFailure)
		assert.ErrorIs(t, err, boom)
	})
}

func TestNewService(t *testing.T) {
	t.Parallel()

	_, err := product.NewService(nil, newTranslator(t))
	assert.ErrorIs(t, err, product.ErrNilStore)

	_, err = product.NewService(product.NewMemoryStore(), nil)
	assert.ErrorIs(t, err, product.ErrNilTranslator)
}

func TestServiceSave_NilLookupResult(t *testing.T) {
	t.Parallel()

	svc := newService(t, silentStore{product.NewMemoryStore()})
	p := product.New(validAttrs())

	require.NotPanics(t, func() {
		require.NoError(t, svc.Save(context.Background(), p))
	})
	assert.False(t, p.IsNew())
}

func TestServiceLogging(t *testing.T) {
	t.Parallel()

	save := func(t *testing.T, opts ...product.ServiceOption) string {
		t.Helper()
		var buf bytes.Buffer
		opts = append(opts, product.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
		svc := newService(t, product.NewMemoryStore(), opts...)
		require.NoError(t, svc.Save(context.Background(), product.New(validAttrs())))
		return buf.String()
	}

	t.Run("without store name", func(t *testing.T) {
		out := save(t)
		assert.Contains(t, out, "product saved")
		assert.Contains(t, out, "component=product")
		assert.Contains(t, out, "duration=")
		assert.NotContains(t, out, "store=")
	})

	t.Run("with store name", func(t *testing.T) {
		out := save(t, product.WithStoreName("memory"))
		assert.Contains(t, out, "store=memory")
	})
}

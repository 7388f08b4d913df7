package product

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// fixtureNamespace seeds deterministic fixture IDs, so the same fixture name
// always maps to the same product ID.
var fixtureNamespace = uuid.MustParse("7f1c7f6e-3b0a-4d7e-9a43-4c1f3b0f2a11")

type fixtureRecord struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Price       Price  `yaml:"price"`
	ImageURL    string `yaml:"image_url"`
}

// Fixtures maps fixture names to the products inserted for them.
type Fixtures map[string]*Product

// Get returns a copy of the named fixture.
func (f Fixtures) Get(name string) (*Product, error) {
	p, ok := f[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFixture, name)
	}
	return p.Clone(), nil
}

// Names returns fixture names in sorted order.
func (f Fixtures) Names() []string {
	return slices.Sorted(maps.Keys(f))
}

// FixtureID returns the product ID assigned to the fixture with this name.
func FixtureID(name string) uuid.UUID {
	return uuid.NewSHA1(fixtureNamespace, []byte(name))
}

// LoadFixtures reads named products from YAML and inserts them into store in
// name order. Fixtures are test data and are not validated.
//
//	ruby:
//	  title: Programming Ruby 1.9
//	  description: Ruby is the fastest growing and most exciting dynamic language out there.
//	  price: 49.50
//	  image_url: ruby.png
func LoadFixtures(ctx context.Context, store Store, r io.Reader) (Fixtures, error) {
	if store == nil {
		return nil, ErrNilStore
	}

	var records map[string]fixtureRecord
	if err := yaml.NewDecoder(r).Decode(&records); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrInvalidFixture, err)
	}

	now := time.Now().UTC()
	out := make(Fixtures, len(records))
	for _, name := range slices.Sorted(maps.Keys(records)) {
		rec := records[name]
		p := &Product{
			ID:          FixtureID(name),
			Title:       rec.Title,
			Description: rec.Description,
			Price:       rec.Price,
			ImageURL:    rec.ImageURL,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := store.Create(ctx, p); err != nil {
			return nil, fmt.Errorf("fixture %q: %w", name, err)
		}
		out[name] = p
	}
	return out, nil
}

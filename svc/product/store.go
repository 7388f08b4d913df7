package product

import (
	"context"

	"github.com/google/uuid"
)

// Store persists products. Implementations must be safe for concurrent use
// and must enforce title uniqueness themselves, reporting ErrDuplicateTitle,
// so that concurrent saves cannot both succeed.
type Store interface {
	// FindByTitle returns the product with exactly this title or ErrNotFound.
	FindByTitle(ctx context.Context, title string) (*Product, error)
	// Get returns ErrNotFound for unknown ids.
	Get(ctx context.Context, id uuid.UUID) (*Product, error)
	// List returns all products ordered by title.
	List(ctx context.Context) ([]*Product, error)
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

package product

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/depot/pkg/pg"
)

// Querier is the subset of *pgxpool.Pool and pgx.Tx used by PostgresStore.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	productColumns = `id, title, description, price, image_url, created_at, updated_at`

	primaryKeyConstraint = "products_pkey"
)

// PostgresStore keeps products in the products table created by Migrations.
// Title uniqueness is enforced by the products_title_key constraint.
type PostgresStore struct {
	db Querier
}

func NewPostgresStore(db Querier) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindByTitle(ctx context.Context, title string) (*Product, error) {
	row := s.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE title = $1`, title)
	return scanOne(row)
}

func (s *PostgresStore) Get(ctx context.Context, id uuid.UUID) (*Product, error) {
	row := s.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	return scanOne(row)
}

func (s *PostgresStore) List(ctx context.Context) ([]*Product, error) {
	rows, err := s.db.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY title, id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Product, error) {
		return scanProduct(row)
	})
}

func (s *PostgresStore) Create(ctx context.Context, p *Product) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO products (`+productColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.Title, p.Description, p.Price, p.ImageURL, p.CreatedAt, p.UpdatedAt,
	)
	return mapPgError(err)
}

func (s *PostgresStore) Update(ctx context.Context, p *Product) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE products
		    SET title = $2, description = $3, price = $4, image_url = $5, updated_at = $6
		  WHERE id = $1`,
		p.ID, p.Title, p.Description, p.Price, p.ImageURL, p.UpdatedAt,
	)
	if err != nil {
		return mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanOne(row pgx.Row) (*Product, error) {
	p, err := scanProduct(row)
	if pg.IsNotFoundError(err) {
		return nil, ErrNotFound
	}
	return p, err
}

func scanProduct(row pgx.Row) (*Product, error) {
	var p Product
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Price, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func mapPgError(err error) error {
	if err == nil {
		return nil
	}
	if pg.IsDuplicateKeyError(err) {
		if pg.ConstraintName(err) == primaryKeyConstraint {
			return errors.Join(ErrDuplicateID, err)
		}
		return errors.Join(ErrDuplicateTitle, err)
	}
	return err
}

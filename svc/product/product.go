package product

import (
	"time"

	"github.com/google/uuid"
)

// Field names used in validation results.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldImageURL    = "image_url"
)

// Product is a catalog entry. A zero ID means the product has not been saved.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       Price     `json:"price"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Attributes holds candidate field values. Omitted fields stay blank, so
// partially filled products can be built for negative checks.
type Attributes struct {
	Title       string
	Description string
	Price       Price
	ImageURL    string
}

// New builds an unsaved product from attrs.
func New(attrs Attributes) *Product {
	return &Product{
		Title:       attrs.Title,
		Description: attrs.Description,
		Price:       attrs.Price,
		ImageURL:    attrs.ImageURL,
	}
}

// IsNew reports whether the product has not been persisted yet.
func (p *Product) IsNew() bool {
	return p.ID == uuid.Nil
}

// Clone returns a copy that shares no state with p.
func (p *Product) Clone() *Product {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

package product

import "errors"

var (
	ErrNotFound       = errors.New("product not found")
	ErrDuplicateTitle = errors.New("product title already exists")
	ErrDuplicateID    = errors.New("product id already exists")
	ErrNilStore       = errors.New("product store is nil")
	ErrNilTranslator  = errors.New("product translator is nil")
	ErrStoreFailure   = errors.New("product store failure")
	ErrInvalidFixture = errors.New("invalid product fixture")
	ErrUnknownFixture = errors.New("unknown product fixture")
)

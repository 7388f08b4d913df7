package product

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/depot/pkg/i18n"
	"github.com/dmitrymomot/depot/pkg/logger"
	"github.com/dmitrymomot/depot/pkg/validator"
)

// Service manages the product catalog. Every write goes through validation.
type Service interface {
	// Save validates p and writes it. An invalid product is not written and
	// the returned error is a validator.ValidationErrors. On success p gets
	// its ID and timestamps; on failure p is left unchanged.
	Save(ctx context.Context, p *Product) error
	// Validate checks p without writing it.
	Validate(ctx context.Context, p *Product) error
	Get(ctx context.Context, id uuid.UUID) (*Product, error)
	FindByTitle(ctx context.Context, title string) (*Product, error)
	List(ctx context.Context) ([]*Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	store     Store
	validator *Validator
	logger    *slog.Logger
	locale    string
	storeName string
	now       func() time.Time
}

// ServiceOption configures a product service during construction.
type ServiceOption func(*service)

// WithLogger sets the service logger. Nil is ignored.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithLocale sets the locale used when the context carries none.
func WithLocale(locale string) ServiceOption {
	return func(s *service) {
		if locale != "" {
			s.locale = locale
		}
	}
}

// WithClock overrides time.Now for timestamps.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithStoreName labels log records with the storage backend name.
func WithStoreName(name string) ServiceOption {
	return func(s *service) {
		s.storeName = name
	}
}

// NewService creates a product service over store. Messages are rendered by tr.
func NewService(store Store, tr validator.Translator, opts ...ServiceOption) (Service, error) {
	s := &service{
		store:  store,
		logger: logger.Discard(),
		locale: i18n.DefaultLanguage,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	v, err := NewValidator(store, tr, s.locale)
	if err != nil {
		return nil, err
	}
	s.validator = v
	s.logger = s.logger.With(logger.Component("product"))
	if s.storeName != "" {
		s.logger = s.logger.With(logger.Store(s.storeName))
	}

	return s, nil
}

func (s *service) Validate(ctx context.Context, p *Product) error {
	return s.validator.Validate(ctx, p)
}

func (s *service) Save(ctx context.Context, p *Product) (err error) {
	start := time.Now()
	defer func() { observeSave(err) }()

	if p == nil {
		p = &Product{}
	}
	if err := s.validator.Validate(ctx, p); err != nil {
		if errs := validator.ExtractValidationErrors(err); errs != nil {
			s.logger.DebugContext(ctx, "product rejected",
				logger.Title(p.Title),
				logger.Fields(errs.Fields()),
				logger.Locale(s.validator.Locale(ctx)),
			)
		}
		return err
	}

	candidate := p.Clone()
	now := s.now().UTC()
	candidate.UpdatedAt = now

	if candidate.IsNew() {
		candidate.ID = uuid.New()
		candidate.CreatedAt = now
		err = s.store.Create(ctx, candidate)
	} else {
		err = s.store.Update(ctx, candidate)
	}

	switch {
	case errors.Is(err, ErrDuplicateTitle):
		// Another writer took the title between the lookup and the write.
		s.logger.InfoContext(ctx, "product title taken on write", logger.Title(p.Title))
		return s.validator.taken(ctx)
	case err != nil:
		s.logger.ErrorContext(ctx, "failed to save product",
			logger.ProductID(candidate.ID),
			logger.Error(err),
		)
		return errors.Join(ErrStoreFailure, err)
	}

	*p = *candidate
	s.logger.InfoContext(ctx, "product saved",
		logger.ProductID(p.ID),
		logger.Title(p.Title),
		logger.Duration(time.Since(start)),
	)
	return nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Product, error) {
	p, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	return p, nil
}

func (s *service) FindByTitle(ctx context.Context, title string) (*Product, error) {
	p, err := s.store.FindByTitle(ctx, title)
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	return p, nil
}

func (s *service) List(ctx context.Context) ([]*Product, error) {
	list, err := s.store.List(ctx)
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	return list, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return wrapStoreErr(err)
	}
	s.logger.InfoContext(ctx, "product deleted", logger.ProductID(id))
	return nil
}

// wrapStoreErr passes ErrNotFound through untouched and marks everything
// else as a store failure.
func wrapStoreErr(err error) error {
	if errors.Is(err, ErrNotFound) {
		return err
	}
	return errors.Join(ErrStoreFailure, err)
}

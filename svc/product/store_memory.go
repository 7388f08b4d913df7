package product

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore keeps products in process memory. Each instance is independent,
// which makes it the store of choice for tests.
type MemoryStore struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*Product
	byTitle map[string]uuid.UUID
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:    make(map[uuid.UUID]*Product),
		byTitle: make(map[string]uuid.UUID),
	}
}

func (s *MemoryStore) FindByTitle(_ context.Context, title string) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byTitle[title]
	if !ok {
		return nil, ErrNotFound
	}
	return s.byID[id].Clone(), nil
}

func (s *MemoryStore) Get(_ context.Context, id uuid.UUID) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p.Clone(), nil
}

func (s *MemoryStore) List(_ context.Context) ([]*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Product, 0, len(s.byID))
	for _, p := range s.byID {
		out = append(out, p.Clone())
	}
	slices.SortFunc(out, func(a, b *Product) int {
		return cmp.Or(cmp.Compare(a.Title, b.Title), cmp.Compare(a.ID.String(), b.ID.String()))
	})
	return out, nil
}

func (s *MemoryStore) Create(_ context.Context, p *Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byTitle[p.Title]; ok {
		return ErrDuplicateTitle
	}
	if _, ok := s.byID[p.ID]; ok {
		return ErrDuplicateID
	}
	s.byID[p.ID] = p.Clone()
	s.byTitle[p.Title] = p.ID
	return nil
}

func (s *MemoryStore) Update(_ context.Context, p *Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.byID[p.ID]
	if !ok {
		return ErrNotFound
	}
	if owner, ok := s.byTitle[p.Title]; ok && owner != p.ID {
		return ErrDuplicateTitle
	}
	delete(s.byTitle, old.Title)
	s.byID[p.ID] = p.Clone()
	s.byTitle[p.Title] = p.ID
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.byID[id]
	if !ok {
		return ErrNotFound
	}
	delete(s.byTitle, p.Title)
	delete(s.byID, id)
	return nil
}

package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/devfolio/pkg/domain"
)

// Store implements ports.DocumentStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.Document
	mu   sync.RWMutex
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		data: make(map[string]*domain.Document),
	}
}

// Save keeps a deep copy of doc, so later changes by the caller are not seen.
func (s *Store) Save(ctx context.Context, id string, doc *domain.Document) error {
	if err := domain.ValidateID(id); err != nil {
		return err
	}
	copied, err := doc.Clone()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = copied
	return nil
}

// Load returns a copy of the stored document.
func (s *Store) Load(ctx context.Context, id string) (*domain.Document, error) {
	s.mu.RLock()
	doc, ok := s.data[id]
	s.mu.RUnlock()

	if !ok {
		return nil, domain.ErrDocumentNotFound
	}
	return doc.Clone()
}

// Delete removes the document.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

// List returns the stored IDs in order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

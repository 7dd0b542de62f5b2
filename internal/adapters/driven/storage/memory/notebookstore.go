package memory

import (
	"context"
	"sync"

	"github.com/tomestack/tome/internal/core/domain"
	"github.com/tomestack/tome/internal/core/ports/driven"
)

// Ensure NotebookStore implements the interface.
var _ driven.NotebookStore = (*NotebookStore)(nil)

// NotebookStore is an in-memory implementation of driven.NotebookStore.
// It holds the notebooks of the current session; nothing is persisted
// across runs. Update applies pure notebook transformations under the
// store's lock, which serializes concurrent edits to the same notebook.
type NotebookStore struct {
	mu        sync.RWMutex
	notebooks map[string]domain.Notebook
	order     []string
}

// NewNotebookStore creates a new in-memory notebook store.
func NewNotebookStore() *NotebookStore {
	return &NotebookStore{
		notebooks: make(map[string]domain.Notebook),
	}
}

// Save stores or replaces a notebook.
func (s *NotebookStore) Save(_ context.Context, notebook domain.Notebook) error {
	if notebook.ID == "" {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.notebooks[notebook.ID]; !exists {
		s.order = append(s.order, notebook.ID)
	}
	s.notebooks[notebook.ID] = notebook
	return nil
}

// Get retrieves a notebook by ID.
func (s *NotebookStore) Get(_ context.Context, id string) (*domain.Notebook, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notebook, ok := s.notebooks[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &notebook, nil
}

// List returns all notebooks in creation order.
func (s *NotebookStore) List(_ context.Context) ([]domain.Notebook, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Notebook, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.notebooks[id])
	}
	return result, nil
}

// Update atomically applies a pure transformation to the notebook.
func (s *NotebookStore) Update(_ context.Context, id string, apply func(domain.Notebook) domain.Notebook) (*domain.Notebook, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notebook, ok := s.notebooks[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	updated := apply(notebook)
	s.notebooks[id] = updated
	return &updated, nil
}

// Delete removes a notebook.
func (s *NotebookStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.notebooks[id]; !ok {
		return nil
	}
	delete(s.notebooks, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tomestack/tome/internal/core/domain"
	"github.com/tomestack/tome/internal/core/ports/driven"
	"github.com/tomestack/tome/internal/core/ports/driving"
)

// Ensure NotebookService implements the interface.
var _ driving.NotebookService = (*NotebookService)(nil)

// NotebookService manages notebooks and the sources within them.
// Mutations go through the store's Update, which serializes concurrent
// edits to the same notebook (single-writer convention).
type NotebookService struct {
	store     driven.NotebookStore
	ingestion driving.IngestionService
}

// NewNotebookService creates a new notebook service.
func NewNotebookService(store driven.NotebookStore, ingestion driving.IngestionService) *NotebookService {
	return &NotebookService{
		store:     store,
		ingestion: ingestion,
	}
}

// Create makes a new empty notebook with the given title.
func (s *NotebookService) Create(ctx context.Context, title string) (*domain.Notebook, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domain.ErrInvalidInput
	}

	notebook := domain.Notebook{
		ID:        uuid.New().String(),
		Title:     title,
		UpdatedAt: time.Now(),
	}
	if err := s.store.Save(ctx, notebook); err != nil {
		return nil, err
	}
	return &notebook, nil
}

// Get retrieves a notebook by ID.
func (s *NotebookService) Get(ctx context.Context, id string) (*domain.Notebook, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.Get(ctx, id)
}

// List returns all notebooks.
func (s *NotebookService) List(ctx context.Context) ([]domain.Notebook, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.List(ctx)
}

// Rename retitles a notebook. Blank or unchanged titles are a no-op.
func (s *NotebookService) Rename(ctx context.Context, id, newTitle string) (*domain.Notebook, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.Update(ctx, id, func(n domain.Notebook) domain.Notebook {
		return n.Rename(newTitle)
	})
}

// AddSource ingests the request and appends the result to the notebook.
// Ingestion runs before any store access, so a failed or abandoned
// ingestion leaves the notebook untouched.
func (s *NotebookService) AddSource(ctx context.Context, notebookID string, req domain.IngestionRequest) (*domain.Source, error) {
	if s.store == nil || s.ingestion == nil {
		return nil, domain.ErrNotImplemented
	}

	// Verify the notebook exists before doing any expensive work.
	if _, err := s.store.Get(ctx, notebookID); err != nil {
		return nil, err
	}

	source, err := s.ingestion.Ingest(ctx, req)
	if err != nil {
		return nil, err
	}

	if _, err := s.store.Update(ctx, notebookID, func(n domain.Notebook) domain.Notebook {
		return n.AddSource(*source)
	}); err != nil {
		return nil, err
	}

	return source, nil
}

// RemoveSource deletes a source from the notebook by ID.
func (s *NotebookService) RemoveSource(ctx context.Context, notebookID, sourceID string) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	_, err := s.store.Update(ctx, notebookID, func(n domain.Notebook) domain.Notebook {
		return n.DeleteSource(sourceID)
	})
	return err
}

// EditSourceTitle retitles a source within the notebook.
func (s *NotebookService) EditSourceTitle(ctx context.Context, notebookID, sourceID, newTitle string) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	_, err := s.store.Update(ctx, notebookID, func(n domain.Notebook) domain.Notebook {
		return n.EditSourceTitle(sourceID, newTitle)
	})
	return err
}

// FilterSources returns the notebook's sources matching the query.
func (s *NotebookService) FilterSources(ctx context.Context, notebookID, query string) ([]domain.Source, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	notebook, err := s.store.Get(ctx, notebookID)
	if err != nil {
		return nil, err
	}
	return domain.FilterSources(notebook.Sources, query), nil
}

package driving

import (
	"context"

	"github.com/tomestack/tome/internal/core/domain"
)

// NotebookService manages notebooks and the sources within them.
type NotebookService interface {
	// Create makes a new empty notebook with the given title.
	Create(ctx context.Context, title string) (*domain.Notebook, error)

	// Get retrieves a notebook by ID.
	Get(ctx context.Context, id string) (*domain.Notebook, error)

	// List returns all notebooks.
	List(ctx context.Context) ([]domain.Notebook, error)

	// Rename retitles a notebook. Blank or unchanged titles are a no-op.
	Rename(ctx context.Context, id, newTitle string) (*domain.Notebook, error)

	// AddSource ingests the request and appends the resulting source to
	// the notebook. Returns the accepted source.
	AddSource(ctx context.Context, notebookID string, req domain.IngestionRequest) (*domain.Source, error)

	// RemoveSource deletes a source from the notebook by ID.
	RemoveSource(ctx context.Context, notebookID, sourceID string) error

	// EditSourceTitle retitles a source within the notebook. Blank or
	// unchanged titles are a no-op.
	EditSourceTitle(ctx context.Context, notebookID, sourceID, newTitle string) error

	// FilterSources returns the notebook's sources matching the query.
	// An empty query returns all sources.
	FilterSources(ctx context.Context, notebookID, query string) ([]domain.Source, error)
}

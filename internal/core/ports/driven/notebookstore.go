package driven

import (
	"context"

	"github.com/tomestack/tome/internal/core/domain"
)

// NotebookStore holds the notebooks of the current session.
//
// Notebook mutations are pure value transformations; the store is the
// single-writer seam that applies them. Update runs the given function
// under the store's lock and replaces the stored value with its result,
// so concurrent edits to the same notebook are serialized.
type NotebookStore interface {
	// Save stores or replaces a notebook.
	Save(ctx context.Context, notebook domain.Notebook) error

	// Get retrieves a notebook by ID.
	Get(ctx context.Context, id string) (*domain.Notebook, error)

	// List returns all notebooks.
	List(ctx context.Context) ([]domain.Notebook, error)

	// Update atomically applies a pure transformation to the notebook
	// with the given ID and returns the new value.
	Update(ctx context.Context, id string, apply func(domain.Notebook) domain.Notebook) (*domain.Notebook, error)

	// Delete removes a notebook.
	Delete(ctx context.Context, id string) error
}

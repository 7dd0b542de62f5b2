package driving

import (
	"context"

	"github.com/tomestack/tome/internal/core/domain"
)

// IngestionService turns an arbitrary user input into a validated source.
type IngestionService interface {
	// Ingest normalizes the request into a Source ready for insertion
	// into a notebook. It either returns a complete valid source or an
	// error; no partial side effects are applied. Fatal conditions are
	// domain.ErrInvalidInput (malformed URL or reference),
	// domain.ErrMissingInput (required file absent) and
	// domain.ErrEmptyContent (nothing groundable was produced).
	Ingest(ctx context.Context, req domain.IngestionRequest) (*domain.Source, error)
}

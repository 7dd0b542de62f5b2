package mcp

import (
	"github.com/tomestack/tome/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Notebook manages notebooks and their sources.
	Notebook driving.NotebookService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Notebook == nil {
		return ErrMissingNotebookService
	}
	return nil
}

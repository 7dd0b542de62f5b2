package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for Tome resources.
	uriScheme = "tome://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing notebooks.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "notebooks",
		Name:        "notebooks",
		Description: "List of all notebooks",
		MIMEType:    "application/json",
	}, s.handleNotebooksResource)

	// Template for a notebook's sources.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "notebooks/{notebookId}/sources",
		Name:        "notebook-sources",
		Description: "Sources collected in a specific notebook",
		MIMEType:    "application/json",
	}, s.handleSourcesResource)

	// Template for source content.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "sources/{sourceId}",
		Name:        "source-content",
		Description: "Plain-text content of a specific source",
		MIMEType:    "text/plain",
	}, s.handleSourceContentResource)
}

// handleNotebooksResource returns a list of all notebooks.
func (s *Server) handleNotebooksResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	notebooks, err := s.ports.Notebook.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing notebooks: %w", err)
	}

	// Build simplified notebook list.
	type notebookInfo struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		SourceCount int    `json:"source_count"`
	}

	infos := make([]notebookInfo, len(notebooks))
	for i := range notebooks {
		infos[i] = notebookInfo{
			ID:          notebooks[i].ID,
			Title:       notebooks[i].Title,
			SourceCount: len(notebooks[i].Sources),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling notebooks: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleSourcesResource returns the sources of a specific notebook.
func (s *Server) handleSourcesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract notebookId from URI: tome://notebooks/{notebookId}/sources
	notebookID := extractNotebookID(req.Params.URI)
	if notebookID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	notebook, err := s.ports.Notebook.Get(ctx, notebookID)
	if err != nil {
		return nil, fmt.Errorf("getting notebook: %w", err)
	}

	infos := make([]SourceInfo, len(notebook.Sources))
	for i := range notebook.Sources {
		infos[i] = SourceInfo{
			ID:    notebook.Sources[i].ID,
			Type:  string(notebook.Sources[i].Type),
			Title: notebook.Sources[i].Title,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling sources: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleSourceContentResource returns the content of a specific source.
// The source is located by scanning all notebooks.
func (s *Server) handleSourceContentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract sourceId from URI: tome://sources/{sourceId}
	sourceID := extractSourceID(req.Params.URI)
	if sourceID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	notebooks, err := s.ports.Notebook.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing notebooks: %w", err)
	}

	for i := range notebooks {
		if source := notebooks[i].FindSource(sourceID); source != nil {
			return &mcp.ReadResourceResult{
				Contents: []*mcp.ResourceContents{{
					URI:      req.Params.URI,
					MIMEType: "text/plain",
					Text:     source.Content,
				}},
			}, nil
		}
	}

	return nil, mcp.ResourceNotFoundError(req.Params.URI)
}

// extractNotebookID extracts the notebook ID from a URI like tome://notebooks/{notebookId}/sources.
func extractNotebookID(uri string) string {
	const prefix = uriScheme + "notebooks/"
	const suffix = "/sources"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}

	return strings.TrimSuffix(uri, suffix)
}

// extractSourceID extracts the source ID from a URI like tome://sources/{sourceId}.
func extractSourceID(uri string) string {
	const prefix = uriScheme + "sources/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}

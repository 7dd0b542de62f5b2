package mcp

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tomestack/tome/internal/core/domain"
)

// IngestInput is the input schema for the ingest_source tool.
type IngestInput struct {
	NotebookID string `json:"notebook_id" jsonschema:"the notebook to add the source to"`
	Type       string `json:"type" jsonschema:"source type: pasted-text, website, youtube, pdf, audio, or image"`
	Title      string `json:"title,omitempty" jsonschema:"optional title; a per-type default is applied when empty"`
	Text       string `json:"text,omitempty" jsonschema:"raw text (pasted-text only)"`
	URL        string `json:"url,omitempty" jsonschema:"address of the page or video (website and youtube only)"`
	Filename   string `json:"filename,omitempty" jsonschema:"name of the uploaded file (file types only)"`
	MIMEType   string `json:"mime_type,omitempty" jsonschema:"declared MIME type of the file (file types only)"`
	DataBase64 string `json:"data_base64,omitempty" jsonschema:"base64-encoded file bytes (file types only)"`
}

// IngestOutput is the output schema for the ingest_source tool.
type IngestOutput struct {
	SourceID string `json:"source_id"`
	Type     string `json:"type"`
	Title    string `json:"title"`
}

// FilterInput is the input schema for the filter_sources tool.
type FilterInput struct {
	NotebookID string `json:"notebook_id" jsonschema:"the notebook whose sources to filter"`
	Query      string `json:"query,omitempty" jsonschema:"case-insensitive substring matched against title and content; empty returns all sources"`
}

// FilterOutput is the output schema for the filter_sources tool.
type FilterOutput struct {
	Sources []SourceInfo `json:"sources"`
	Count   int          `json:"count"`
}

// SourceInfo is a summary of one source.
type SourceInfo struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Title string `json:"title"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ingest_source",
		Description: "Ingest text, a web page, a YouTube link, or a file into a notebook",
	}, s.handleIngest)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "filter_sources",
		Description: "Filter a notebook's sources by a case-insensitive query",
	}, s.handleFilter)
}

// handleIngest handles the ingest_source tool invocation.
func (s *Server) handleIngest(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input IngestInput,
) (*mcp.CallToolResult, IngestOutput, error) {
	req, err := buildRequest(input)
	if err != nil {
		return nil, IngestOutput{}, err
	}

	source, err := s.ports.Notebook.AddSource(ctx, input.NotebookID, req)
	if err != nil {
		return nil, IngestOutput{}, err
	}

	return nil, IngestOutput{
		SourceID: source.ID,
		Type:     string(source.Type),
		Title:    source.Title,
	}, nil
}

// handleFilter handles the filter_sources tool invocation.
func (s *Server) handleFilter(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FilterInput,
) (*mcp.CallToolResult, FilterOutput, error) {
	sources, err := s.ports.Notebook.FilterSources(ctx, input.NotebookID, input.Query)
	if err != nil {
		return nil, FilterOutput{}, err
	}

	output := FilterOutput{
		Sources: make([]SourceInfo, len(sources)),
		Count:   len(sources),
	}
	for i := range sources {
		output.Sources[i] = SourceInfo{
			ID:    sources[i].ID,
			Type:  string(sources[i].Type),
			Title: sources[i].Title,
		}
	}

	return nil, output, nil
}

// buildRequest translates tool input into an ingestion request.
func buildRequest(input IngestInput) (domain.IngestionRequest, error) {
	sourceType := domain.SourceType(input.Type)

	switch sourceType {
	case domain.SourcePastedText:
		return domain.NewPastedTextRequest(input.Text, input.Title), nil
	case domain.SourceWebsite:
		return domain.NewWebsiteRequest(input.URL, input.Title), nil
	case domain.SourceYouTube:
		return domain.NewYouTubeRequest(input.URL, input.Title), nil
	case domain.SourcePDF, domain.SourceAudio, domain.SourceImage:
		if input.DataBase64 == "" {
			return domain.IngestionRequest{}, fmt.Errorf("%w: %s sources require data_base64", domain.ErrMissingInput, sourceType)
		}
		data, err := base64.StdEncoding.DecodeString(input.DataBase64)
		if err != nil {
			return domain.IngestionRequest{}, fmt.Errorf("%w: invalid base64 file data", domain.ErrInvalidInput)
		}
		file := &domain.FileUpload{
			Name:     input.Filename,
			MIMEType: input.MIMEType,
			Data:     data,
		}
		return domain.NewFileRequest(sourceType, file, input.Title), nil
	default:
		return domain.IngestionRequest{}, fmt.Errorf("%w: unknown source type %q", domain.ErrInvalidInput, input.Type)
	}
}

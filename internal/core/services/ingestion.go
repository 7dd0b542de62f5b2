package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tomestack/tome/internal/core/domain"
	"github.com/tomestack/tome/internal/core/ports/driven"
	"github.com/tomestack/tome/internal/core/ports/driving"
	"github.com/tomestack/tome/internal/logger"
)

// Ensure IngestionService implements the interface.
var _ driving.IngestionService = (*IngestionService)(nil)

// IngestionService normalizes raw user inputs into sources.
//
// The pipeline dispatches on the request type, delegates retrieval and
// extraction to the driven ports, and assembles a validated Source.
// Fetch and lookup failures degrade to placeholder content; the only
// fatal conditions are malformed input, a missing file and an empty
// result after extraction.
type IngestionService struct {
	fetcher     driven.ContentFetcher
	transcriber driven.FileTranscriber
	resolver    driven.MetadataResolver
}

// NewIngestionService creates a new ingestion pipeline.
// The resolver may be nil; title lookups are then skipped.
func NewIngestionService(
	fetcher driven.ContentFetcher,
	transcriber driven.FileTranscriber,
	resolver driven.MetadataResolver,
) *IngestionService {
	return &IngestionService{
		fetcher:     fetcher,
		transcriber: transcriber,
		resolver:    resolver,
	}
}

// pastedTextTimeFormat renders the default title timestamp for pasted text.
const pastedTextTimeFormat = "Jan 2, 2006 3:04 PM"

// Ingest normalizes the request into a Source ready for insertion.
func (s *IngestionService) Ingest(ctx context.Context, req domain.IngestionRequest) (*domain.Source, error) {
	if !req.Type.IsValid() {
		return nil, fmt.Errorf("%w: unknown source type %q", domain.ErrInvalidInput, req.Type)
	}

	var (
		title    string
		content  string
		metadata domain.Metadata
		err      error
	)

	switch req.Type {
	case domain.SourcePastedText:
		title, content = s.ingestPastedText(req)
	case domain.SourceWebsite:
		title, content, metadata, err = s.ingestWebsite(ctx, req)
	case domain.SourceYouTube:
		title, content, metadata, err = s.ingestYouTube(ctx, req)
	default:
		title, content, metadata, err = s.ingestFile(ctx, req)
	}
	if err != nil {
		return nil, err
	}

	// Abandoned ingestion produces nothing; the caller never sees a
	// partial source.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Terminal guard: no source with empty content is ever accepted.
	if strings.TrimSpace(content) == "" {
		return nil, domain.ErrEmptyContent
	}

	logger.Debug("Ingested %s source %q (%d bytes of content)", req.Type, title, len(content))

	return &domain.Source{
		ID:        uuid.New().String(),
		Type:      req.Type,
		Title:     title,
		Content:   content,
		Metadata:  metadata,
		CreatedAt: time.Now(),
	}, nil
}

// ingestPastedText takes the raw text verbatim.
func (s *IngestionService) ingestPastedText(req domain.IngestionRequest) (string, string) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = "Pasted Text " + time.Now().Format(pastedTextTimeFormat)
	}
	return title, req.Text
}

// ingestWebsite fetches the page and strips it to plain text. Fetch
// failure is not fatal: the fetcher degrades to placeholder content.
func (s *IngestionService) ingestWebsite(ctx context.Context, req domain.IngestionRequest) (string, string, domain.Metadata, error) {
	pageURL := strings.TrimSpace(req.URL)
	if !strings.HasPrefix(pageURL, "http") {
		return "", "", nil, fmt.Errorf("%w: website URL must start with http", domain.ErrInvalidInput)
	}
	if s.fetcher == nil {
		return "", "", nil, domain.ErrNotImplemented
	}

	content := s.fetcher.FetchText(ctx, pageURL)

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = pageURL
	}

	return title, content, domain.WebMetadata{OriginalURL: pageURL}, nil
}

// ingestYouTube validates the reference and synthesizes stub content.
// The title lookup is best-effort; any failure is swallowed.
func (s *IngestionService) ingestYouTube(ctx context.Context, req domain.IngestionRequest) (string, string, domain.Metadata, error) {
	videoURL := strings.TrimSpace(req.URL)
	if !isYouTubeURL(videoURL) {
		return "", "", nil, fmt.Errorf("%w: not a recognized YouTube URL", domain.ErrInvalidInput)
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = "YouTube Video"
		if s.resolver != nil {
			resolved, err := s.resolver.ResolveTitle(ctx, videoURL)
			switch {
			case err != nil:
				logger.Warn("Title lookup failed for %s: %v", videoURL, err)
			case strings.TrimSpace(resolved) != "":
				title = strings.TrimSpace(resolved)
			}
		}
	}

	return title, youTubeStubContent(videoURL, title), domain.WebMetadata{OriginalURL: videoURL}, nil
}

// ingestFile transcribes the upload. Unsupported formats degrade to
// placeholder content inside the transcriber.
func (s *IngestionService) ingestFile(ctx context.Context, req domain.IngestionRequest) (string, string, domain.Metadata, error) {
	if req.File == nil {
		return "", "", nil, fmt.Errorf("%w: %s sources require a file", domain.ErrMissingInput, req.Type)
	}
	if s.transcriber == nil {
		return "", "", nil, domain.ErrNotImplemented
	}

	content := s.transcriber.Transcribe(ctx, req.File)

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = req.File.Name
	}

	metadata := domain.FileMetadata{
		Filename: req.File.Name,
		Size:     req.File.Size(),
	}

	return title, content, metadata, nil
}

// youTubeStubContent synthesizes deterministic grounding text for a
// video reference. Transcript extraction needs a remote capability this
// pipeline does not provide.
func youTubeStubContent(videoURL, title string) string {
	return fmt.Sprintf(
		"YouTube video reference\nTitle: %s\nURL: %s\n\n"+
			"Transcript ingestion is not performed locally. "+
			"The video's spoken content must be extracted by a remote capability before it can be used for grounding.",
		title, videoURL,
	)
}

// youTubeHosts are the host names accepted as YouTube references.
var youTubeHosts = map[string]bool{
	"youtube.com": true,
	"youtu.be":    true,
}

// isYouTubeURL reports whether the string references a YouTube host.
// The host segment is matched exactly (plus subdomains of youtube.com),
// so a host merely containing "youtube" does not pass.
func isYouTubeURL(raw string) bool {
	if raw == "" {
		return false
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if parsed.Host == "" {
		// Scheme-less input like "youtube.com/watch?v=x".
		parsed, err = url.Parse("https://" + raw)
		if err != nil {
			return false
		}
	}

	host := strings.ToLower(parsed.Hostname())
	if youTubeHosts[host] {
		return true
	}
	return strings.HasSuffix(host, ".youtube.com")
}

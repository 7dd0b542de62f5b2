package driven

import (
	"context"

	"github.com/tomestack/tome/internal/core/domain"
)

// FileTranscriber extracts plain text from an uploaded file.
//
// The contract is total: Transcribe always returns a string. Decode
// failures and unsupported binary formats degrade to placeholder text
// naming the file; the failure is recorded only via the warning log.
type FileTranscriber interface {
	// Transcribe returns the textual content of the file.
	Transcribe(ctx context.Context, file *domain.FileUpload) string
}

// Transcriber handles specific MIME types within a transcriber registry.
// Each transcriber declares the types it decodes (e.g., text, PDF).
type Transcriber interface {
	// SupportedMIMETypes returns the MIME types this transcriber
	// handles. An entry ending in "/" matches by prefix, so "text/"
	// covers every text subtype.
	SupportedMIMETypes() []string

	// Priority returns the selection priority (higher = preferred).
	// Format-specific transcribers should return 50-89.
	// Fallback transcribers should return 1-9.
	Priority() int

	// Transcribe extracts plain text from the file. An error tells the
	// registry to degrade to placeholder text; it never reaches the
	// registry's callers.
	Transcribe(ctx context.Context, file *domain.FileUpload) (string, error)
}

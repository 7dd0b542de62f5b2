package plaintext

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/tomestack/tome/internal/core/domain"
	"github.com/tomestack/tome/internal/core/ports/driven"
)

// Ensure Transcriber implements the interface.
var _ driven.Transcriber = (*Transcriber)(nil)

// Transcriber handles decodable text uploads. The file bytes are
// returned verbatim as the source content.
type Transcriber struct{}

// New creates a new plain text transcriber.
func New() *Transcriber {
	return &Transcriber{}
}

// SupportedMIMETypes returns the MIME types this transcriber handles.
func (t *Transcriber) SupportedMIMETypes() []string {
	return []string{"text/*"}
}

// Priority returns the selection priority.
func (t *Transcriber) Priority() int {
	return 50 // Format-specific, above the stub fallback
}

// Transcribe decodes the file as text and returns it verbatim.
func (t *Transcriber) Transcribe(_ context.Context, file *domain.FileUpload) (string, error) {
	if file == nil {
		return "", domain.ErrMissingInput
	}
	if !utf8.Valid(file.Data) {
		return "", fmt.Errorf("%q is not valid UTF-8 text", file.Name)
	}
	return string(file.Data), nil
}

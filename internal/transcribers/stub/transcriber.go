package stub

import (
	"context"
	"fmt"

	"github.com/tomestack/tome/internal/core/domain"
	"github.com/tomestack/tome/internal/core/ports/driven"
)

// Ensure Transcriber implements the interface.
var _ driven.Transcriber = (*Transcriber)(nil)

// Transcriber is the universal fallback for binary formats with no
// registered decoder. It produces a fixed-shape stub sentence rather
// than an error: local transcription of these formats is unsupported,
// and extraction is left to an external capability.
type Transcriber struct{}

// New creates a new stub transcriber.
func New() *Transcriber {
	return &Transcriber{}
}

// SupportedMIMETypes returns the MIME types this transcriber handles.
func (t *Transcriber) SupportedMIMETypes() []string {
	return []string{"*/*"}
}

// Priority returns the selection priority.
func (t *Transcriber) Priority() int {
	return 1 // Fallback
}

// Transcribe returns the deterministic unsupported-format stub.
func (t *Transcriber) Transcribe(_ context.Context, file *domain.FileUpload) (string, error) {
	if file == nil {
		return "", domain.ErrMissingInput
	}
	return fmt.Sprintf(
		"File %q of type %s was added as a source. "+
			"Local extraction of this format is not supported; its content must be transcribed by an external capability before it can ground generated artifacts.",
		file.Name, file.MIMEType,
	), nil
}

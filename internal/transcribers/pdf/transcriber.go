package pdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/tomestack/tome/internal/core/domain"
	"github.com/tomestack/tome/internal/core/ports/driven"
)

// Ensure Transcriber implements the interface.
var _ driven.Transcriber = (*Transcriber)(nil)

// Transcriber extracts plain text from PDF uploads, page by page.
// It is an optional richer capability: without it the registry falls
// back to the unsupported-format stub for PDFs.
type Transcriber struct{}

// New creates a new PDF transcriber.
func New() *Transcriber {
	return &Transcriber{}
}

// SupportedMIMETypes returns the MIME types this transcriber handles.
func (t *Transcriber) SupportedMIMETypes() []string {
	return []string{"application/pdf"}
}

// Priority returns the selection priority.
func (t *Transcriber) Priority() int {
	return 50 // Format-specific, above the stub fallback
}

// Transcribe extracts the text of every page. An error means the file
// could not be parsed; the registry degrades it to placeholder text.
func (t *Transcriber) Transcribe(ctx context.Context, file *domain.FileUpload) (text string, err error) {
	if file == nil {
		return "", domain.ErrMissingInput
	}

	// The reader panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("parsing %q: %v", file.Name, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(file.Data), file.Size())
	if err != nil {
		return "", fmt.Errorf("parsing %q: %w", file.Name, err)
	}

	var builder strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("extracting page %d of %q: %w", i, file.Name, err)
		}
		builder.WriteString(pageText)
		builder.WriteString("\n")
	}

	return strings.TrimSpace(builder.String()), nil
}

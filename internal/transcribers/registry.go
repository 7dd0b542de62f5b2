package transcribers

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/tomestack/tome/internal/core/domain"
	"github.com/tomestack/tome/internal/core/ports/driven"
	"github.com/tomestack/tome/internal/logger"
	"github.com/tomestack/tome/internal/transcribers/plaintext"
	"github.com/tomestack/tome/internal/transcribers/stub"
)

// Ensure Registry implements the interface.
var _ driven.FileTranscriber = (*Registry)(nil)

// Registry selects a transcriber by MIME type and priority and exposes
// the total FileTranscriber contract on top: Transcribe always returns
// a string. A transcriber error degrades to placeholder text naming the
// file and is recorded via the warning log, never surfaced.
type Registry struct {
	mu           sync.RWMutex
	transcribers []driven.Transcriber
}

// NewRegistry creates an empty transcriber registry.
func NewRegistry() *Registry {
	return &Registry{
		transcribers: make([]driven.Transcriber, 0),
	}
}

// DefaultRegistry creates a registry with the built-in transcribers:
// plain text decoding plus the unsupported-format stub fallback.
// Richer capabilities (PDF extraction) are registered by the caller.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(plaintext.New())
	r.Register(stub.New())
	return r
}

// Register adds a transcriber. Selection is by priority at lookup time.
func (r *Registry) Register(transcriber driven.Transcriber) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transcribers = append(r.transcribers, transcriber)
}

// Get retrieves the best-matching transcriber for a MIME type.
// Returns nil if nothing matches. When multiple match, the highest
// priority transcriber wins.
func (r *Registry) Get(mimeType string) driven.Transcriber {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []driven.Transcriber
	for _, t := range r.transcribers {
		if matchesMIMEType(t.SupportedMIMETypes(), mimeType) {
			matches = append(matches, t)
		}
	}
	if len(matches) == 0 {
		return nil
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Priority() > matches[j].Priority()
	})
	return matches[0]
}

// Transcribe extracts the textual content of the file. The contract is
// total: failures degrade to placeholder text naming the file.
func (r *Registry) Transcribe(ctx context.Context, file *domain.FileUpload) string {
	if file == nil {
		return ""
	}

	transcriber := r.Get(file.MIMEType)
	if transcriber == nil {
		logger.Warn("No transcriber registered for %q", file.MIMEType)
		return unavailablePlaceholder(file)
	}

	content, err := transcriber.Transcribe(ctx, file)
	if err != nil {
		logger.Warn("Transcription of %q (%s) failed: %v", file.Name, file.MIMEType, err)
		return unavailablePlaceholder(file)
	}
	return content
}

// unavailablePlaceholder is the degrade-not-fail result for a file whose
// content could not be decoded.
func unavailablePlaceholder(file *domain.FileUpload) string {
	return fmt.Sprintf("The content of %q (%s) could not be decoded and is unavailable for grounding.",
		file.Name, file.MIMEType)
}

// matchesMIMEType checks if any of the supported types match the given
// MIME type. Supports wildcard matching ("text/*" matches "text/plain").
func matchesMIMEType(supportedTypes []string, mimeType string) bool {
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))

	// Strip charset and other parameters.
	if idx := strings.Index(mimeType, ";"); idx != -1 {
		mimeType = strings.TrimSpace(mimeType[:idx])
	}

	for _, supported := range supportedTypes {
		supported = strings.ToLower(strings.TrimSpace(supported))

		if supported == mimeType {
			return true
		}

		// Wildcard match (e.g., "text/*" matches "text/plain").
		if strings.HasSuffix(supported, "/*") {
			prefix := supported[:len(supported)-1]
			if strings.HasPrefix(mimeType, prefix) {
				return true
			}
		}

		if supported == "*/*" {
			return true
		}
	}

	return false
}

package domain

import "time"

// SourceType identifies the ingestion path that produced a source.
// The set is closed; a source's type never changes after creation
// (editing retitles, it does not retype).
type SourceType string

const (
	// SourcePastedText is raw text pasted by the user.
	SourcePastedText SourceType = "pasted-text"
	// SourceWebsite is a web page fetched and stripped to plain text.
	SourceWebsite SourceType = "website"
	// SourceYouTube is a YouTube video reference.
	SourceYouTube SourceType = "youtube"
	// SourcePDF is an uploaded PDF document.
	SourcePDF SourceType = "pdf"
	// SourceAudio is an uploaded audio file.
	SourceAudio SourceType = "audio"
	// SourceImage is an uploaded image file.
	SourceImage SourceType = "image"
)

// IsValid reports whether t is one of the known source types.
func (t SourceType) IsValid() bool {
	switch t {
	case SourcePastedText, SourceWebsite, SourceYouTube, SourcePDF, SourceAudio, SourceImage:
		return true
	}
	return false
}

// RequiresFile reports whether ingestion of this type needs a file upload.
func (t SourceType) RequiresFile() bool {
	switch t {
	case SourcePDF, SourceAudio, SourceImage:
		return true
	}
	return false
}

// Label returns the human-readable name presentation layers use.
func (t SourceType) Label() string {
	switch t {
	case SourcePastedText:
		return "Pasted Text"
	case SourceWebsite:
		return "Website"
	case SourceYouTube:
		return "YouTube"
	case SourcePDF:
		return "PDF"
	case SourceAudio:
		return "Audio"
	case SourceImage:
		return "Image"
	default:
		return string(t)
	}
}

// Metadata carries the auxiliary fields of a source. Each source type
// attaches only the variant it needs; pasted text carries none (nil).
// The set of implementations is closed.
type Metadata interface {
	metadataVariant()
}

// WebMetadata is attached to website and youtube sources.
type WebMetadata struct {
	// OriginalURL is the URL the user submitted.
	OriginalURL string
}

func (WebMetadata) metadataVariant() {}

// FileMetadata is attached to pdf, audio and image sources.
type FileMetadata struct {
	// Filename is the name of the uploaded file.
	Filename string

	// Size is the upload size in bytes.
	Size int64
}

func (FileMetadata) metadataVariant() {}

// Source is a single normalized, text-bearing unit of grounding material.
// Sources are created exclusively by the ingestion pipeline; after
// creation only the title may change, via the notebook edit operation.
type Source struct {
	// ID is the unique identifier, generated at creation. Immutable.
	ID string

	// Type identifies which ingestion path produced the source. Immutable.
	Type SourceType

	// Title is the human-readable label. Non-empty at acceptance time;
	// the pipeline defaults it when the user supplies none.
	Title string

	// Content is the extracted plain-text representation used for
	// grounding. A source with empty content is never accepted.
	Content string

	// Metadata holds the per-type auxiliary fields. May be nil.
	Metadata Metadata

	// CreatedAt is when the source was created. Immutable.
	CreatedAt time.Time
}

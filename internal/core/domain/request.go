package domain

// FileUpload is a user-selected file handed to ingestion.
type FileUpload struct {
	// Name is the file name as selected by the user.
	Name string

	// MIMEType is the declared content type (e.g., "application/pdf").
	MIMEType string

	// Data is the raw file bytes.
	Data []byte
}

// Size returns the upload size in bytes.
func (f *FileUpload) Size() int64 {
	return int64(len(f.Data))
}

// IngestionRequest is a tagged union over the source types. Type selects
// the ingestion path; exactly one of Text, URL or File carries the
// payload for that path. Title is the optional user-provided label.
type IngestionRequest struct {
	// Type selects the ingestion path.
	Type SourceType

	// Title is the optional user-provided title. When empty the
	// pipeline applies the per-type default.
	Title string

	// Text is the raw pasted text (pasted-text only).
	Text string

	// URL is the submitted address (website and youtube only).
	URL string

	// File is the selected upload (pdf, audio and image only).
	File *FileUpload
}

// NewPastedTextRequest builds a request for raw pasted text.
func NewPastedTextRequest(text, title string) IngestionRequest {
	return IngestionRequest{Type: SourcePastedText, Text: text, Title: title}
}

// NewWebsiteRequest builds a request for a web page URL.
func NewWebsiteRequest(url, title string) IngestionRequest {
	return IngestionRequest{Type: SourceWebsite, URL: url, Title: title}
}

// NewYouTubeRequest builds a request for a YouTube video URL.
func NewYouTubeRequest(url, title string) IngestionRequest {
	return IngestionRequest{Type: SourceYouTube, URL: url, Title: title}
}

// NewFileRequest builds a request for an uploaded file. The source type
// must be one of the file-backed types (pdf, audio, image).
func NewFileRequest(sourceType SourceType, file *FileUpload, title string) IngestionRequest {
	return IngestionRequest{Type: sourceType, File: file, Title: title}
}

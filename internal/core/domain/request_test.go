package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPastedTextRequest(t *testing.T) {
	req := NewPastedTextRequest("hello world", "My Notes")

	assert.Equal(t, SourcePastedText, req.Type)
	assert.Equal(t, "hello world", req.Text)
	assert.Equal(t, "My Notes", req.Title)
	assert.Empty(t, req.URL)
	assert.Nil(t, req.File)
}

func TestNewWebsiteRequest(t *testing.T) {
	req := NewWebsiteRequest("https://example.com", "")

	assert.Equal(t, SourceWebsite, req.Type)
	assert.Equal(t, "https://example.com", req.URL)
	assert.Empty(t, req.Title)
}

func TestNewYouTubeRequest(t *testing.T) {
	req := NewYouTubeRequest("https://youtube.com/watch?v=abc", "")

	assert.Equal(t, SourceYouTube, req.Type)
	assert.Equal(t, "https://youtube.com/watch?v=abc", req.URL)
}

func TestNewFileRequest(t *testing.T) {
	file := &FileUpload{Name: "report.pdf", MIMEType: "application/pdf", Data: []byte("%PDF-")}

	req := NewFileRequest(SourcePDF, file, "Quarterly Report")

	assert.Equal(t, SourcePDF, req.Type)
	require.NotNil(t, req.File)
	assert.Equal(t, "report.pdf", req.File.Name)
	assert.Equal(t, "Quarterly Report", req.Title)
}

func TestFileUpload_Size(t *testing.T) {
	file := &FileUpload{Name: "a.txt", MIMEType: "text/plain", Data: []byte("hello")}
	assert.Equal(t, int64(5), file.Size())

	empty := &FileUpload{Name: "empty.txt", MIMEType: "text/plain"}
	assert.Equal(t, int64(0), empty.Size())
}

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomestack/tome/internal/core/domain"
)

func TestAddTextCmd_AddsSource(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	id := mustCreateNotebook(t, "Notes")

	output, err := execute(t, "add", "text", id, "reefs host a quarter of all marine species", "--title", "Reef Facts")
	defer func() { addTitle = "" }()

	require.NoError(t, err)
	assert.Contains(t, output, "Added source")
	assert.Contains(t, output, "Reef Facts")
	assert.Contains(t, output, "Pasted Text")
}

func TestAddTextCmd_DefaultTitle(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	id := mustCreateNotebook(t, "Notes")

	output, err := execute(t, "add", "text", id, "some pasted content")

	require.NoError(t, err)
	assert.Contains(t, output, "Pasted Text")
}

func TestAddTextCmd_EmptyTextFails(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	id := mustCreateNotebook(t, "Notes")

	_, err := execute(t, "add", "text", id, "   ")

	assert.ErrorIs(t, err, domain.ErrEmptyContent)
}

func TestAddURLCmd_AddsSource(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	id := mustCreateNotebook(t, "Notes")

	output, err := execute(t, "add", "url", id, "https://example.com/reefs")

	require.NoError(t, err)
	assert.Contains(t, output, "Added source")
	assert.Contains(t, output, "Website")
	assert.Contains(t, output, "https://example.com/reefs")
}

func TestAddURLCmd_InvalidURLFails(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	id := mustCreateNotebook(t, "Notes")

	_, err := execute(t, "add", "url", id, "ftp://example.com")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddYouTubeCmd_AddsSource(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	id := mustCreateNotebook(t, "Notes")

	output, err := execute(t, "add", "youtube", id, "https://www.youtube.com/watch?v=abc123")

	require.NoError(t, err)
	assert.Contains(t, output, "Added source")
	assert.Contains(t, output, "YouTube")
	assert.Contains(t, output, "Resolved Video Title")
}

func TestAddYouTubeCmd_NonYouTubeURLFails(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	id := mustCreateNotebook(t, "Notes")

	_, err := execute(t, "add", "youtube", id, "https://example.com/watch?v=abc123")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddFileCmd_AddsTextFile(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	id := mustCreateNotebook(t, "Notes")

	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello from a file"), 0600))

	output, err := execute(t, "add", "file", id, path)

	require.NoError(t, err)
	assert.Contains(t, output, "Added source")
	assert.Contains(t, output, "notes.txt")
}

func TestAddFileCmd_MissingFileFails(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	id := mustCreateNotebook(t, "Notes")

	_, err := execute(t, "add", "file", id, filepath.Join(t.TempDir(), "missing.pdf"))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestAddCmd_UnknownNotebook(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "add", "text", "missing", "some text")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSourceTypeForMIME(t *testing.T) {
	tests := []struct {
		name     string
		mimeType string
		expected domain.SourceType
	}{
		{"pdf", "application/pdf", domain.SourcePDF},
		{"audio", "audio/mpeg", domain.SourceAudio},
		{"image", "image/png", domain.SourceImage},
		{"image with parameter", "image/jpeg; quality=85", domain.SourceImage},
		{"text falls back to document path", "text/plain", domain.SourcePDF},
		{"unknown falls back to document path", "application/octet-stream", domain.SourcePDF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sourceTypeForMIME(tt.mimeType))
		})
	}
}

package plaintext

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomestack/tome/internal/core/domain"
)

func TestNew(t *testing.T) {
	transcriber := New()
	require.NotNil(t, transcriber)
}

func TestSupportedMIMETypes(t *testing.T) {
	transcriber := New()
	assert.Equal(t, []string{"text/*"}, transcriber.SupportedMIMETypes())
}

func TestPriority(t *testing.T) {
	transcriber := New()
	assert.Equal(t, 50, transcriber.Priority())
}

func TestTranscribe_Verbatim(t *testing.T) {
	transcriber := New()
	file := &domain.FileUpload{Name: "notes.txt", MIMEType: "text/plain", Data: []byte("hello")}

	content, err := transcriber.Transcribe(context.Background(), file)

	require.NoError(t, err)
	assert.Equal(t, "hello", content)
}

func TestTranscribe_PreservesWhitespace(t *testing.T) {
	transcriber := New()
	raw := "  line one\n\tline two\n"
	file := &domain.FileUpload{Name: "notes.txt", MIMEType: "text/plain", Data: []byte(raw)}

	content, err := transcriber.Transcribe(context.Background(), file)

	require.NoError(t, err)
	assert.Equal(t, raw, content)
}

func TestTranscribe_InvalidUTF8(t *testing.T) {
	transcriber := New()
	file := &domain.FileUpload{Name: "garbled.txt", MIMEType: "text/plain", Data: []byte{0xff, 0xfe, 0xfd}}

	content, err := transcriber.Transcribe(context.Background(), file)

	require.Error(t, err)
	assert.Empty(t, content)
	assert.Contains(t, err.Error(), "garbled.txt")
}

func TestTranscribe_NilFile(t *testing.T) {
	transcriber := New()

	_, err := transcriber.Transcribe(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrMissingInput)
}

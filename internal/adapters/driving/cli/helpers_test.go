package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tomestack/tome/internal/adapters/driven/storage/memory"
	"github.com/tomestack/tome/internal/core/domain"
	"github.com/tomestack/tome/internal/core/services"
)

// stubFetcher returns canned page content without touching the network.
type stubFetcher struct{}

func (stubFetcher) FetchText(_ context.Context, url string) string {
	return "content fetched from " + url
}

// stubTranscriber echoes the file bytes as text.
type stubTranscriber struct{}

func (stubTranscriber) Transcribe(_ context.Context, file *domain.FileUpload) string {
	if file == nil {
		return ""
	}
	return string(file.Data)
}

// stubResolver returns a fixed video title.
type stubResolver struct{}

func (stubResolver) ResolveTitle(_ context.Context, _ string) (string, error) {
	return "Resolved Video Title", nil
}

// setupTestServices wires the commands to an in-memory stack.
// The returned cleanup restores the previous service.
func setupTestServices() func() {
	store := memory.NewNotebookStore()
	ingestion := services.NewIngestionService(stubFetcher{}, stubTranscriber{}, stubResolver{})

	old := notebookService
	notebookService = services.NewNotebookService(store, ingestion)

	return func() {
		notebookService = old
	}
}

// mustCreateNotebook creates a notebook through the wired service.
func mustCreateNotebook(t *testing.T, title string) string {
	t.Helper()
	notebook, err := notebookService.Create(context.Background(), title)
	require.NoError(t, err)
	return notebook.ID
}

// execute runs the root command with args and captures its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

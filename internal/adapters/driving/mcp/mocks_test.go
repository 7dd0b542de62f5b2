package mcp

import (
	"context"

	"github.com/tomestack/tome/internal/core/domain"
)

// mockNotebookService is a mock implementation of driving.NotebookService.
type mockNotebookService struct {
	notebooks []domain.Notebook
	notebook  *domain.Notebook
	source    *domain.Source
	err       error

	lastNotebookID string
	lastRequest    domain.IngestionRequest
}

func (m *mockNotebookService) Create(_ context.Context, _ string) (*domain.Notebook, error) {
	return m.notebook, m.err
}

func (m *mockNotebookService) Get(_ context.Context, _ string) (*domain.Notebook, error) {
	return m.notebook, m.err
}

func (m *mockNotebookService) List(_ context.Context) ([]domain.Notebook, error) {
	return m.notebooks, m.err
}

func (m *mockNotebookService) Rename(_ context.Context, _, _ string) (*domain.Notebook, error) {
	return m.notebook, m.err
}

func (m *mockNotebookService) AddSource(_ context.Context, notebookID string, req domain.IngestionRequest) (*domain.Source, error) {
	m.lastNotebookID = notebookID
	m.lastRequest = req
	return m.source, m.err
}

func (m *mockNotebookService) RemoveSource(_ context.Context, _, _ string) error {
	return m.err
}

func (m *mockNotebookService) EditSourceTitle(_ context.Context, _, _, _ string) error {
	return m.err
}

func (m *mockNotebookService) FilterSources(_ context.Context, _, query string) ([]domain.Source, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.notebook == nil {
		return nil, domain.ErrNotFound
	}
	return domain.FilterSources(m.notebook.Sources, query), nil
}

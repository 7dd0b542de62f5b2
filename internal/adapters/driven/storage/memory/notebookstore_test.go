package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomestack/tome/internal/core/domain"
)

func TestNewNotebookStore(t *testing.T) {
	store := NewNotebookStore()
	require.NotNil(t, store)
}

func TestNotebookStore_SaveAndGet(t *testing.T) {
	store := NewNotebookStore()
	ctx := context.Background()

	notebook := domain.Notebook{ID: "nb-1", Title: "Research"}
	err := store.Save(ctx, notebook)
	require.NoError(t, err)

	retrieved, err := store.Get(ctx, "nb-1")
	require.NoError(t, err)
	assert.Equal(t, "Research", retrieved.Title)
}

func TestNotebookStore_Save_EmptyID(t *testing.T) {
	store := NewNotebookStore()
	ctx := context.Background()

	err := store.Save(ctx, domain.Notebook{Title: "No ID"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNotebookStore_Get_NotFound(t *testing.T) {
	store := NewNotebookStore()
	ctx := context.Background()

	notebook, err := store.Get(ctx, "nonexistent")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, notebook)
}

func TestNotebookStore_List_CreationOrder(t *testing.T) {
	store := NewNotebookStore()
	ctx := context.Background()

	_ = store.Save(ctx, domain.Notebook{ID: "nb-1", Title: "First"})
	_ = store.Save(ctx, domain.Notebook{ID: "nb-2", Title: "Second"})
	_ = store.Save(ctx, domain.Notebook{ID: "nb-3", Title: "Third"})

	notebooks, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, notebooks, 3)
	assert.Equal(t, "nb-1", notebooks[0].ID)
	assert.Equal(t, "nb-2", notebooks[1].ID)
	assert.Equal(t, "nb-3", notebooks[2].ID)
}

func TestNotebookStore_List_Empty(t *testing.T) {
	store := NewNotebookStore()

	notebooks, err := store.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, notebooks)
}

func TestNotebookStore_Update(t *testing.T) {
	store := NewNotebookStore()
	ctx := context.Background()

	_ = store.Save(ctx, domain.Notebook{ID: "nb-1", Title: "Research"})

	updated, err := store.Update(ctx, "nb-1", func(n domain.Notebook) domain.Notebook {
		return n.Rename("Field Notes")
	})
	require.NoError(t, err)
	assert.Equal(t, "Field Notes", updated.Title)

	retrieved, err := store.Get(ctx, "nb-1")
	require.NoError(t, err)
	assert.Equal(t, "Field Notes", retrieved.Title)
}

func TestNotebookStore_Update_NotFound(t *testing.T) {
	store := NewNotebookStore()
	ctx := context.Background()

	updated, err := store.Update(ctx, "nonexistent", func(n domain.Notebook) domain.Notebook {
		return n
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, updated)
}

func TestNotebookStore_Update_SerializesConcurrentEdits(t *testing.T) {
	store := NewNotebookStore()
	ctx := context.Background()

	_ = store.Save(ctx, domain.Notebook{ID: "nb-1", Title: "Research"})

	const writers = 20
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(i int) {
			defer wg.Done()
			_, err := store.Update(ctx, "nb-1", func(n domain.Notebook) domain.Notebook {
				return n.AddSource(domain.Source{
					ID:      string(rune('a' + i)),
					Type:    domain.SourcePastedText,
					Title:   "Note",
					Content: "x",
				})
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	retrieved, err := store.Get(ctx, "nb-1")
	require.NoError(t, err)
	assert.Len(t, retrieved.Sources, writers)
}

func TestNotebookStore_Delete(t *testing.T) {
	store := NewNotebookStore()
	ctx := context.Background()

	_ = store.Save(ctx, domain.Notebook{ID: "nb-1", Title: "Research"})
	_ = store.Save(ctx, domain.Notebook{ID: "nb-2", Title: "Other"})

	err := store.Delete(ctx, "nb-1")
	require.NoError(t, err)

	_, err = store.Get(ctx, "nb-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	notebooks, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, notebooks, 1)
	assert.Equal(t, "nb-2", notebooks[0].ID)
}

func TestNotebookStore_Delete_Nonexistent(t *testing.T) {
	store := NewNotebookStore()

	// Deleting an unknown notebook is idempotent.
	err := store.Delete(context.Background(), "nonexistent")

	assert.NoError(t, err)
}

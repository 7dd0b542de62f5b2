package domain

import (
	"strings"
	"time"
)

// Notebook owns an ordered collection of sources plus a title.
// Insertion order is preserved and relevant. The notebook exclusively
// owns its sources: no source outlives its notebook and nothing mutates
// a source after creation except the EditSourceTitle operation.
//
// All mutation methods are pure: they return a new Notebook value and
// never alias the receiver's source slice. UpdatedAt advances if and
// only if the operation actually changed the notebook, so callers can
// compare timestamps to detect effect.
type Notebook struct {
	// ID is the unique identifier for the notebook.
	ID string

	// Title is the human-readable name for the notebook.
	Title string

	// Sources is the ordered collection of ingested sources.
	Sources []Source

	// UpdatedAt is when the notebook was last changed by a mutation.
	UpdatedAt time.Time
}

// AddSource returns a copy of the notebook with the source appended.
func (n Notebook) AddSource(source Source) Notebook {
	sources := make([]Source, 0, len(n.Sources)+1)
	sources = append(sources, n.Sources...)
	sources = append(sources, source)

	n.Sources = sources
	n.UpdatedAt = time.Now()
	return n
}

// DeleteSource returns a copy of the notebook with the matching source
// removed. An unknown id is a no-op: the notebook is returned unchanged,
// UpdatedAt included.
func (n Notebook) DeleteSource(id string) Notebook {
	idx := n.indexOf(id)
	if idx < 0 {
		return n
	}

	sources := make([]Source, 0, len(n.Sources)-1)
	sources = append(sources, n.Sources[:idx]...)
	sources = append(sources, n.Sources[idx+1:]...)

	n.Sources = sources
	n.UpdatedAt = time.Now()
	return n
}

// EditSourceTitle returns a copy of the notebook with the matching
// source retitled. The new title is trimmed before comparison; a blank
// or unchanged title, or an unknown id, is a no-op and does not advance
// UpdatedAt. All other sources are carried over untouched.
func (n Notebook) EditSourceTitle(id, newTitle string) Notebook {
	newTitle = strings.TrimSpace(newTitle)
	if newTitle == "" {
		return n
	}

	idx := n.indexOf(id)
	if idx < 0 || n.Sources[idx].Title == newTitle {
		return n
	}

	sources := make([]Source, len(n.Sources))
	copy(sources, n.Sources)
	sources[idx].Title = newTitle

	n.Sources = sources
	n.UpdatedAt = time.Now()
	return n
}

// Rename returns a copy of the notebook with a new title. The title is
// trimmed before comparison; blank or unchanged titles are a no-op.
func (n Notebook) Rename(newTitle string) Notebook {
	newTitle = strings.TrimSpace(newTitle)
	if newTitle == "" || newTitle == n.Title {
		return n
	}

	n.Title = newTitle
	n.UpdatedAt = time.Now()
	return n
}

// FindSource returns the source with the given id, or nil if absent.
// The returned pointer addresses a copy; mutating it does not affect
// the notebook.
func (n Notebook) FindSource(id string) *Source {
	idx := n.indexOf(id)
	if idx < 0 {
		return nil
	}
	source := n.Sources[idx]
	return &source
}

// indexOf returns the position of the source with the given id, or -1.
func (n Notebook) indexOf(id string) int {
	for i := range n.Sources {
		if n.Sources[i].ID == id {
			return i
		}
	}
	return -1
}

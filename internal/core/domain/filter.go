package domain

import "strings"

// FilterSources returns the sources whose title or content contains the
// query, compared case-insensitively. An empty or whitespace-only query
// is the identity: the input slice is returned as-is. Matching is stable
// (original relative order is preserved) and the input is never mutated.
func FilterSources(sources []Source, query string) []Source {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return sources
	}

	var matched []Source
	for _, source := range sources {
		if strings.Contains(strings.ToLower(source.Title), query) ||
			strings.Contains(strings.ToLower(source.Content), query) {
			matched = append(matched, source)
		}
	}
	return matched
}

package driven

import "context"

// MetadataResolver enriches a reference (e.g., a video link) with a
// human-readable title via a best-effort external lookup. Callers must
// tolerate every failure: a resolver error never affects the outcome of
// the operation that requested the lookup.
type MetadataResolver interface {
	// ResolveTitle returns a display title for the given URL.
	ResolveTitle(ctx context.Context, url string) (string, error)
}

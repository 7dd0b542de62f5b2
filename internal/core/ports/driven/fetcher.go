package driven

import "context"

// ContentFetcher retrieves and sanitizes remote text content.
//
// The contract is total: FetchText never returns an error to its caller.
// Transport failures, non-success statuses and empty post-strip bodies
// all degrade to a descriptive placeholder string naming the URL, with
// the underlying failure recorded only via the warning log. Ingestion
// stays usable when the network is degraded, trading fidelity for
// availability.
type ContentFetcher interface {
	// FetchText retrieves the page at url and returns its plain-text
	// content with markup stripped. Always returns a non-empty string.
	FetchText(ctx context.Context, url string) string
}

// Package metadata resolves display titles for remote media.
package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tomestack/tome/internal/core/ports/driven"
)

// Ensure OEmbedResolver implements the interface.
var _ driven.MetadataResolver = (*OEmbedResolver)(nil)

// defaultEndpoint is YouTube's public oEmbed endpoint. It requires no
// API key and returns the video title without downloading the page.
const defaultEndpoint = "https://www.youtube.com/oembed"

// maxResponseBytes caps the oEmbed response body.
const maxResponseBytes = 1 << 20 // 1 MiB

// OEmbedResolver looks up video titles through the oEmbed protocol.
// Lookups are best effort: callers treat an error as "no title".
type OEmbedResolver struct {
	client   *http.Client
	endpoint string
}

// NewOEmbedResolver creates a resolver against YouTube's endpoint.
func NewOEmbedResolver(timeout time.Duration) *OEmbedResolver {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &OEmbedResolver{
		client:   &http.Client{Timeout: timeout},
		endpoint: defaultEndpoint,
	}
}

// NewOEmbedResolverWithEndpoint creates a resolver against a custom
// endpoint. Used in tests.
func NewOEmbedResolverWithEndpoint(endpoint string, timeout time.Duration) *OEmbedResolver {
	resolver := NewOEmbedResolver(timeout)
	resolver.endpoint = endpoint
	return resolver
}

// ResolveTitle returns the title the provider reports for the video.
func (r *OEmbedResolver) ResolveTitle(ctx context.Context, videoURL string) (string, error) {
	query := url.Values{}
	query.Set("url", videoURL)
	query.Set("format", "json")
	lookupURL := r.endpoint + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return "", fmt.Errorf("building oembed request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("oembed lookup: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("oembed lookup returned status %d", resp.StatusCode)
	}

	var payload struct {
		Title string `json:"title"`
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("reading oembed response: %w", err)
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("decoding oembed response: %w", err)
	}

	title := strings.TrimSpace(payload.Title)
	if title == "" {
		return "", fmt.Errorf("oembed response carried no title")
	}
	return title, nil
}

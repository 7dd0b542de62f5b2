package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/tomestack/tome/internal/core/ports/driven"
	"github.com/tomestack/tome/internal/logger"
)

// Ensure WebFetcher implements the interface.
var _ driven.ContentFetcher = (*WebFetcher)(nil)

// maxBodyBytes caps how much of a page body is read.
const maxBodyBytes = 2 << 20 // 2 MiB

// Config holds fetcher settings.
type Config struct {
	// Timeout bounds a single page retrieval.
	Timeout time.Duration
	// UserAgent is sent with every request.
	UserAgent string
	// RequestsPerSecond is the sustained request rate.
	RequestsPerSecond float64
	// Burst is the maximum burst size.
	Burst int
}

// DefaultConfig provides conservative fetch settings.
func DefaultConfig() Config {
	return Config{
		Timeout:           15 * time.Second,
		UserAgent:         "tome/0.1 (+https://github.com/tomestack/tome)",
		RequestsPerSecond: 4.0,
		Burst:             4,
	}
}

// WebFetcher retrieves web pages over HTTP and strips them to plain
// text. Its contract is total: FetchText never returns an error.
// Transport failures, non-success statuses, rate-limit interruptions
// and pages that strip to nothing all degrade to a placeholder naming
// the URL, logged as warnings. Requests go through a token bucket so a
// burst of ingestions stays polite to remote hosts.
type WebFetcher struct {
	client    *http.Client
	limiter   *rate.Limiter
	userAgent string
}

// New creates a web fetcher. Zero config fields fall back to defaults.
func New(cfg Config) *WebFetcher {
	defaults := DefaultConfig()
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaults.Timeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaults.UserAgent
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = defaults.RequestsPerSecond
	}
	if cfg.Burst <= 0 {
		cfg.Burst = defaults.Burst
	}

	return &WebFetcher{
		client:    &http.Client{Timeout: cfg.Timeout},
		limiter:   rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		userAgent: cfg.UserAgent,
	}
}

// FetchText retrieves the page and returns its plain-text content.
// Always returns a non-empty string.
func (f *WebFetcher) FetchText(ctx context.Context, pageURL string) string {
	if err := f.limiter.Wait(ctx); err != nil {
		logger.Warn("Fetch of %s interrupted: %v", pageURL, err)
		return placeholder(pageURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		logger.Warn("Fetch of %s failed: %v", pageURL, err)
		return placeholder(pageURL)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Warn("Fetch of %s failed: %v", pageURL, err)
		return placeholder(pageURL)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logger.Warn("Fetch of %s returned status %d", pageURL, resp.StatusCode)
		return placeholder(pageURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		logger.Warn("Reading %s failed: %v", pageURL, err)
		return placeholder(pageURL)
	}

	content := StripMarkup(string(body))
	if content == "" {
		logger.Warn("Page %s stripped to no text", pageURL)
		return placeholder(pageURL)
	}
	return content
}

// placeholder is the degrade-not-fail result for an unreachable or
// text-less page.
func placeholder(pageURL string) string {
	return fmt.Sprintf("No content could be retrieved from %s. The page may be unavailable, blocked, or rendered entirely by scripts.", pageURL)
}

package metadata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTitle(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"title":"Never Gonna Give You Up","author_name":"Rick Astley"}`))
	}))
	defer server.Close()

	resolver := NewOEmbedResolverWithEndpoint(server.URL, 2*time.Second)
	title, err := resolver.ResolveTitle(context.Background(), "https://www.youtube.com/watch?v=dQw4w9WgXcQ")

	require.NoError(t, err)
	assert.Equal(t, "Never Gonna Give You Up", title)
	assert.Contains(t, gotQuery, "format=json")
	assert.Contains(t, gotQuery, "dQw4w9WgXcQ")
}

func TestResolveTitle_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	}))
	defer server.Close()

	resolver := NewOEmbedResolverWithEndpoint(server.URL, 2*time.Second)
	_, err := resolver.ResolveTitle(context.Background(), "https://www.youtube.com/watch?v=missing")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestResolveTitle_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	resolver := NewOEmbedResolverWithEndpoint(server.URL, 2*time.Second)
	_, err := resolver.ResolveTitle(context.Background(), "https://youtu.be/abc")

	assert.Error(t, err)
}

func TestResolveTitle_EmptyTitle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"title":"   "}`))
	}))
	defer server.Close()

	resolver := NewOEmbedResolverWithEndpoint(server.URL, 2*time.Second)
	_, err := resolver.ResolveTitle(context.Background(), "https://youtu.be/abc")

	assert.Error(t, err)
}

func TestResolveTitle_UnreachableEndpoint(t *testing.T) {
	resolver := NewOEmbedResolverWithEndpoint("http://nowhere.invalid", time.Second)
	_, err := resolver.ResolveTitle(context.Background(), "https://youtu.be/abc")

	assert.Error(t, err)
}

package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_Success(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><body>hello</body></html>"))
	}))
	defer srv.Close()

	result, err := URL(context.Background(), srv.URL, nil)
	require.NoError(t, err)

	assert.Equal(t, srv.URL, result.URL)
	assert.Equal(t, "<html><body>hello</body></html>", result.HTML)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.ContentType, "text/html")
	assert.Equal(t, DefaultUserAgent, gotUA)
}

func TestURL_CustomHeaders(t *testing.T) {
	var gotUA, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
	}))
	defer srv.Close()

	opts := &Options{
		Timeout:   5 * time.Second,
		UserAgent: "custom-agent/2.0",
		Headers:   map[string]string{"Accept": "text/html"},
	}

	_, err := URL(context.Background(), srv.URL, opts)
	require.NoError(t, err)

	assert.Equal(t, "custom-agent/2.0", gotUA)
	assert.Equal(t, "text/html", gotAccept)
}

func TestURL_InvalidURL(t *testing.T) {
	for _, bad := range []string{"", "not a url", "/relative/path", "example.com"} {
		result, err := URL(context.Background(), bad, nil)
		assert.Nil(t, result, "url: %q", bad)

		var fetchErr *Error
		require.True(t, errors.As(err, &fetchErr), "url: %q", bad)
		assert.Equal(t, "invalid URL", fetchErr.Message)
	}
}

func TestURL_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	result, err := URL(context.Background(), srv.URL, nil)

	var fetchErr *Error
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, "HTTP status 404", fetchErr.Message)
	// The body still comes back for callers that want to inspect it.
	require.NotNil(t, result)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
}

func TestURL_ConnectionRefused(t *testing.T) {
	result, err := URL(context.Background(), "http://localhost:1", nil)

	assert.Nil(t, result)
	var fetchErr *Error
	require.True(t, errors.As(err, &fetchErr))
	assert.NotNil(t, fetchErr.Unwrap())
}

func TestURL_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := URL(ctx, srv.URL, nil)
	require.Error(t, err)
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.Equal(t, 8*time.Second, opts.Timeout)
	assert.Equal(t, "Mozilla/5.0 (compatible; VCScout/1.0)", opts.UserAgent)
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser(""))
	assert.True(t, ShouldUseBrowser("short"))
	assert.False(t, ShouldUseBrowser(strings.Repeat("a", MinContentLength)))
}

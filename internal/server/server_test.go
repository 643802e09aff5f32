package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/vc-scout/internal/catalog"
	"github.com/jonathan/vc-scout/internal/crawling"
	"github.com/jonathan/vc-scout/internal/enrich"
	"github.com/jonathan/vc-scout/internal/store"
)

// newTestServer creates a server backed by the embedded catalog and a fresh
// workspace. The enricher has no credential, so tests exercising it get the
// configuration-error path without network traffic.
func newTestServer() *Server {
	return &Server{
		catalog:   catalog.MustLoad(),
		workspace: store.NewWorkspace(store.NewMemory()),
		enricher:  enrich.New("", nil, crawling.Options{}),
	}
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp["error"]
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	s.handleHealth(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, "ok", resp["status"])
}

func TestJSONResponse_SetsContentType(t *testing.T) {
	s := newTestServer()

	w := httptest.NewRecorder()
	s.jsonResponse(w, http.StatusOK, map[string]string{"a": "b"})

	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
}

func TestExtractClientID(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "203.0.113.7:54321"
	assert.Equal(t, "203.0.113.7", s.extractClientID(req))

	req.RemoteAddr = "missing-port"
	assert.Equal(t, "missing-port", s.extractClientID(req))
}

func TestWithCORS_PreflightShortCircuits(t *testing.T) {
	s := newTestServer()

	called := false
	handler := s.withCORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/companies", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.False(t, called)
}

package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// NewSeasonServer serves files (name -> content) under /seasons/ and 404s
// everything else. Names listed in failing answer with 500.
func NewSeasonServer(t *testing.T, files map[string]string, failing ...string) *httptest.Server {
	t.Helper()
	fail := make(map[string]bool, len(failing))
	for _, name := range failing {
		fail[name] = true
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/seasons/")
		if fail[name] {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		body, ok := files[name]
		if !ok || !strings.HasPrefix(r.URL.Path, "/seasons/") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

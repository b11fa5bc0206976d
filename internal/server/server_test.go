package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nearfal08/nexus/internal/config"
	"github.com/nearfal08/nexus/internal/logging"
	"github.com/nearfal08/nexus/internal/theme"
)

func testConfig() *config.Config {
	return &config.Config{
		Site: config.SiteConfig{
			Name:      "Nexus Lawncare",
			BasePath:  "/",
			FrontPage: "/",
		},
		Theme:  *theme.Default(),
		Locale: "en",
		Server: config.ServerConfig{Port: 8080, Host: "localhost"},
	}
}

func writePageFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "page.yml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func newTestServer(t *testing.T, pageContents string) *PreviewServer {
	t.Helper()
	logger := logging.NewLogger(&logging.LoggerConfig{Level: logging.LevelError})
	return New(testConfig(), logger, writePageFile(t, pageContents))
}

func TestHandlePage_ComposesPage(t *testing.T) {
	s := newTestServer(t, `
regions:
  header: "Nexus"
  content: "<p>Welcome</p>"
page:
  this_year: "2026"
`)

	rec := httptest.NewRecorder()
	s.handlePage(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<!DOCTYPE html>")
	assert.Contains(t, body, "<title>Nexus Lawncare</title>")
	assert.Contains(t, body, `<div class="branding">Nexus</div>`)
	assert.Contains(t, body, "<p>Welcome</p>")
	assert.Contains(t, body, "full_reload", "reload script is injected")
}

func TestHandlePage_FrontPageIncludesSliderAssets(t *testing.T) {
	s := newTestServer(t, `
regions: {}
page:
  is_front: true
`)

	rec := httptest.NewRecorder()
	s.handlePage(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "jquery.flexslider.min.js")
	assert.Contains(t, rec.Body.String(), "flexslider.css")
}

func TestHandlePage_NotFoundOffRoot(t *testing.T) {
	s := newTestServer(t, "regions: {}\n")

	rec := httptest.NewRecorder()
	s.handlePage(rec, httptest.NewRequest(http.MethodGet, "/other", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlePage_MissingFileFails(t *testing.T) {
	logger := logging.NewLogger(&logging.LoggerConfig{Level: logging.LevelError})
	s := New(testConfig(), logger, filepath.Join(t.TempDir(), "gone.yml"))

	rec := httptest.NewRecorder()
	s.handlePage(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestWSHub_ShutdownUnblocksClientHandoff(t *testing.T) {
	logger := logging.NewLogger(&logging.LoggerConfig{Level: logging.LevelError})
	h := newWSHub(testConfig(), logger)

	ctx, cancel := context.WithCancel(context.Background())
	go h.run(ctx)
	cancel()

	select {
	case <-h.done:
	case <-time.After(time.Second):
		t.Fatal("hub did not shut down")
	}

	// Late upgrades and disconnecting readers must not block once the hub
	// loop has exited.
	client := &wsClient{send: make(chan string, 1)}
	finished := make(chan struct{})
	go func() {
		assert.False(t, h.add(client))
		h.remove(client)
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("client handoff blocked after hub shutdown")
	}
}

func TestCheckOrigin(t *testing.T) {
	cfg := testConfig()

	tests := []struct {
		origin  string
		allowed bool
	}{
		{"http://localhost:8080", true},
		{"https://localhost:8080", true},
		{"http://127.0.0.1:8080", true},
		{"http://evil.example.com", false},
		{"http://localhost:9999", false},
		{"", false},
	}

	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/ws", nil)
		if tt.origin != "" {
			r.Header.Set("Origin", tt.origin)
		}
		assert.Equal(t, tt.allowed, checkOrigin(r, cfg), "origin %q", tt.origin)
	}
}

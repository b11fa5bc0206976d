// Package server provides the live-reloading preview server for composed
// pages. Each request recomposes the page from its page file, so edits show
// up on the next reload; a websocket channel pushes a full_reload message to
// connected browsers when the watcher reports a change.
package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/nearfal08/nexus/internal/assets"
	"github.com/nearfal08/nexus/internal/composer"
	"github.com/nearfal08/nexus/internal/config"
	"github.com/nearfal08/nexus/internal/i18n"
	"github.com/nearfal08/nexus/internal/logging"
	"github.com/nearfal08/nexus/internal/pagefile"
	"github.com/nearfal08/nexus/internal/sanitize"
	"github.com/nearfal08/nexus/internal/watcher"
)

// PreviewServer serves one page file with hot reload.
type PreviewServer struct {
	cfg      *config.Config
	logger   logging.Logger
	pagePath string

	hub *wsHub
}

// New creates a preview server for the given page file.
func New(cfg *config.Config, logger logging.Logger, pagePath string) *PreviewServer {
	return &PreviewServer{
		cfg:      cfg,
		logger:   logger.WithComponent("preview_server"),
		pagePath: pagePath,
		hub:      newWSHub(cfg, logger),
	}
}

// Start runs the HTTP server and the file watcher until ctx is done.
func (s *PreviewServer) Start(ctx context.Context) error {
	w, err := watcher.New(300 * time.Millisecond)
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	if err := w.AddPath(s.pagePath); err != nil {
		return fmt.Errorf("watching page file: %w", err)
	}
	w.AddHandler(func(changes []watcher.Change) {
		s.logger.Info(ctx, "page file changed, reloading", "files", len(changes))
		s.hub.broadcast(`{"type":"full_reload"}`)
	})
	w.Start(ctx)

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handlePage)
	mux.HandleFunc("/ws", s.hub.handleWebSocket)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go s.hub.run(ctx)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "preview server listening", "addr", srv.Addr, "page", s.pagePath)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// handlePage recomposes the page on every request so the preview always
// reflects the file on disk.
func (s *PreviewServer) handlePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	html, err := s.composePage(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), err, "composing page")
		http.Error(w, fmt.Sprintf("compose error: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}

func (s *PreviewServer) composePage(ctx context.Context) (string, error) {
	regions, page, unknown, err := pagefile.Load(s.pagePath, s.cfg)
	if err != nil {
		return "", err
	}
	for _, name := range unknown {
		s.logger.Warn(ctx, nil, "unknown region in page file", "region", name)
	}

	registry := assets.NewRegistry()
	pc, err := composer.New(&s.cfg.Theme, sanitize.HTML{}, i18n.New(s.cfg.Locale), registry, nil)
	if err != nil {
		return "", err
	}

	body, err := pc.Compose(regions, page)
	if err != nil {
		return "", err
	}

	return s.wrapShell(body, page, registry.Attached()), nil
}

// wrapShell embeds the composed fragment into a standalone document with
// the attached asset bundles and the live reload script. In production the
// host CMS owns this shell.
func (s *PreviewServer) wrapShell(body string, page composer.PageContext, bundles []assets.Bundle) string {
	var head strings.Builder
	for _, b := range bundles {
		for _, style := range b.Styles {
			fmt.Fprintf(&head, "<link rel=\"stylesheet\" href=\"%s%s\" />\n", page.BasePath, style)
		}
		for _, script := range b.Scripts {
			fmt.Fprintf(&head, "<script src=\"%s%s\"></script>\n", page.BasePath, script)
		}
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s</title>
%s</head>
<body>
%s
<script>
const ws = new WebSocket('ws://' + window.location.host + '/ws');
ws.onmessage = function(event) {
    const message = JSON.parse(event.data);
    if (message.type === 'full_reload') {
        window.location.reload();
    }
};
</script>
</body>
</html>`, page.SiteName, head.String(), body)
}

// checkOrigin validates the request origin for websocket upgrades.
func checkOrigin(r *http.Request, cfg *config.Config) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return false
	}
	allowed := []string{
		fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		fmt.Sprintf("localhost:%d", cfg.Server.Port),
		fmt.Sprintf("127.0.0.1:%d", cfg.Server.Port),
	}
	for _, host := range allowed {
		if origin == "http://"+host || origin == "https://"+host {
			return true
		}
	}
	return false
}

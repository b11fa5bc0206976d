// Package watcher notifies the preview server when page or configuration
// files change, grouping rapid successive writes into one notification.
package watcher

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Change describes one debounced file change.
type Change struct {
	Path    string
	ModTime time.Time
}

// Handler receives a batch of debounced changes.
type Handler func(changes []Change)

// PageWatcher watches the page and config files backing a preview session.
type PageWatcher struct {
	watcher *fsnotify.Watcher
	delay   time.Duration

	mu       sync.Mutex
	pending  map[string]Change
	timer    *time.Timer
	handlers []Handler
}

// New creates a watcher that delivers changes after debounceDelay of quiet.
func New(debounceDelay time.Duration) (*PageWatcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &PageWatcher{
		watcher: fw,
		delay:   debounceDelay,
		pending: make(map[string]Change),
	}, nil
}

// AddPath adds a file to the watch set. Watching the containing directory
// keeps notifications working across editors that replace files on save.
func (w *PageWatcher) AddPath(path string) error {
	return w.watcher.Add(filepath.Dir(filepath.Clean(path)))
}

// AddHandler registers a change handler. Handlers run on the watch
// goroutine and must not block.
func (w *PageWatcher) AddHandler(h Handler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers = append(w.handlers, h)
}

// Start runs the watch loop until ctx is done.
func (w *PageWatcher) Start(ctx context.Context) {
	go w.loop(ctx)
}

// Close stops the underlying watcher.
func (w *PageWatcher) Close() error {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	return w.watcher.Close()
}

func (w *PageWatcher) loop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !relevant(event.Name) {
				continue
			}
			w.record(event.Name)
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Errors are transient; keep watching.
		}
	}
}

// relevant keeps the watch scoped to the files the preview composes from.
func relevant(path string) bool {
	switch filepath.Ext(path) {
	case ".yml", ".yaml":
		return true
	}
	return false
}

func (w *PageWatcher) record(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending[path] = Change{Path: path, ModTime: time.Now()}

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.delay, w.flush)
}

func (w *PageWatcher) flush() {
	w.mu.Lock()
	if len(w.pending) == 0 {
		w.mu.Unlock()
		return
	}
	changes := make([]Change, 0, len(w.pending))
	for _, c := range w.pending {
		changes = append(changes, c)
	}
	w.pending = make(map[string]Change)
	handlers := w.handlers
	w.mu.Unlock()

	for _, h := range handlers {
		h(changes)
	}
}

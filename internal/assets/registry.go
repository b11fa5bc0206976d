// Package assets tracks the named script/style bundles a page render
// declares it needs. Attachment is declarative: the registry records that a
// bundle is required and the host aggregates the actual files. Attaching is
// idempotent and safe across concurrent renders.
package assets

import "sync"

// Bundle describes a named set of static assets.
type Bundle struct {
	ID      string
	Scripts []string
	Styles  []string
}

// Registry implements composer.AssetRegistry.
type Registry struct {
	mu       sync.RWMutex
	known    map[string]Bundle
	attached map[string]bool
	order    []string
}

// NewRegistry creates a registry preloaded with the bundles the stock theme
// references.
func NewRegistry() *Registry {
	r := &Registry{
		known:    make(map[string]Bundle),
		attached: make(map[string]bool),
	}
	r.Define(Bundle{
		ID:      "nexus.flexslider",
		Scripts: []string{"js/jquery.flexslider.min.js", "js/slider-init.js"},
		Styles:  []string{"css/flexslider.css"},
	})
	return r
}

// Define registers a bundle's contents, replacing any previous definition.
func (r *Registry) Define(b Bundle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.known[b.ID] = b
}

// Attach marks a bundle as required by the current page. Redundant attaches
// are no-ops; unknown identifiers are still recorded so the host can report
// them.
func (r *Registry) Attach(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.attached[id] {
		return
	}
	r.attached[id] = true
	r.order = append(r.order, id)
}

// Attached returns the bundles required so far, in first-attach order.
// Identifiers without a definition yield a bundle with only the ID set.
func (r *Registry) Attached() []Bundle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	bundles := make([]Bundle, 0, len(r.order))
	for _, id := range r.order {
		if b, ok := r.known[id]; ok {
			bundles = append(bundles, b)
		} else {
			bundles = append(bundles, Bundle{ID: id})
		}
	}
	return bundles
}

// Reset clears the attachment record between renders while keeping bundle
// definitions.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attached = make(map[string]bool)
	r.order = nil
}

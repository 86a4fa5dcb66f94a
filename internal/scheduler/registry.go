package scheduler

import (
	"strings"
	"sync"
)

// LabelProvider resolves a display label for a feature-owned item reference.
// Implementations are registered per item kind so the scheduler can render
// entries without importing feature packages.
type LabelProvider interface {
	// ResolveLabel returns the label for itemRef. An error or empty label
	// makes the caller fall back to the entry's cached title.
	ResolveLabel(itemRef string) (string, error)
}

// Registry maps item kinds to label providers. It is owned by the scheduler
// service and passed by reference; there is no package-level instance.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]LabelProvider
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[string]LabelProvider),
	}
}

// Register stores the provider for a kind. The last registration for a kind
// wins; an empty or whitespace-only kind is ignored.
func (r *Registry) Register(kind string, provider LabelProvider) {
	k := strings.TrimSpace(kind)
	if k == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[k] = provider
}

// Get retrieves the provider for a kind. An unknown kind is not an error;
// callers handle absence through their fallback chain.
func (r *Registry) Get(kind string) (LabelProvider, bool) {
	k := strings.TrimSpace(kind)
	if k == "" {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[k]
	return p, ok
}

// Count returns the number of registered providers.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers)
}

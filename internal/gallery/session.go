package gallery

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	applog "github.com/janisto/profile-gallery/internal/platform/logging"
)

// Registry tracks browsing sessions over one shared store. When full, the
// oldest session is evicted to make room.
type Registry struct {
	mu    sync.Mutex
	store *Store
	max   int
	pages map[string]*Page
	order []string
	newID func() string
}

// NewRegistry returns a registry holding at most maxSessions pages.
func NewRegistry(store *Store, maxSessions int) *Registry {
	return &Registry{
		store: store,
		max:   max(maxSessions, 1),
		pages: make(map[string]*Page),
		newID: uuid.NewString,
	}
}

// Store returns the shared profile store.
func (r *Registry) Store() *Store {
	return r.store
}

// Create starts a new session with a fresh page.
func (r *Registry) Create(ctx context.Context) (*Page, error) {
	page, err := NewPage(r.newID(), r.store)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for len(r.order) >= r.max {
		evicted := r.order[0]
		r.order = r.order[1:]
		delete(r.pages, evicted)
		applog.LogDebug(ctx, "gallery session evicted", zap.String("ui.session", evicted))
	}
	r.pages[page.ID()] = page
	r.order = append(r.order, page.ID())
	return page, nil
}

// Get returns the session's page.
func (r *Registry) Get(id string) (*Page, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	page, ok := r.pages[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return page, nil
}

// Delete ends a session.
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pages[id]; !ok {
		return ErrSessionNotFound
	}
	delete(r.pages, id)
	r.order = slices.DeleteFunc(r.order, func(v string) bool { return v == id })
	return nil
}

// Len is the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pages)
}

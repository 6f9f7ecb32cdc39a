package gallery

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	applog "github.com/janisto/profile-gallery/internal/platform/logging"
)

// Card is one rendered gallery card.
type Card struct {
	Index     int
	Name      string
	Email     string
	Location  string
	Thumbnail string
}

// ModalView is the content of the open modal.
type ModalView struct {
	Index    int
	Total    int
	Picture  string
	Name     string
	Email    string
	City     string
	Phone    string
	Address  string
	Birthday string
	HasPrev  bool
	HasNext  bool
}

// View is a read model of one page.
type View struct {
	ID        string
	CreatedAt time.Time
	Query     string
	Cards     []Card
	NotFound  bool
	Modal     *ModalView
}

// Page is one browsing session over the shared store. Every event runs to
// completion under mu before the next one starts.
type Page struct {
	mu        sync.Mutex
	id        string
	createdAt time.Time
	surface   *Surface
	renderer  *GalleryRenderer
	search    *SearchController
	modal     *ModalController
}

// NewPage renders the initial gallery from store and activates search.
func NewPage(id string, store *Store) (*Page, error) {
	surface, err := NewSurface()
	if err != nil {
		return nil, err
	}
	renderer := NewGalleryRenderer(surface)
	modal := NewModalController(surface)
	renderer.OnCardClick(modal.Open)

	p := &Page{
		id:        id,
		createdAt: time.Now().UTC(),
		surface:   surface,
		renderer:  renderer,
		search:    NewSearchController(store, renderer, surface),
		modal:     modal,
	}
	if err := renderer.Render(store.Profiles()); err != nil {
		return nil, fmt.Errorf("initial render: %w", err)
	}
	if err := p.search.Activate(); err != nil {
		return nil, err
	}
	return p, nil
}

// ID is the session identifier.
func (p *Page) ID() string {
	return p.id
}

// Search filters the gallery by name.
func (p *Page) Search(ctx context.Context, raw string) (View, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	visible, err := p.search.Input(raw)
	if err != nil {
		return View{}, err
	}
	applog.LogUIEvent(ctx, p.id, "search", zap.String("query", p.search.Query()), zap.Int("visible", len(visible)))
	return p.viewLocked(), nil
}

// OpenCard opens the modal on the card at index of the rendered gallery.
func (p *Page) OpenCard(ctx context.Context, index int) (View, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.renderer.Click(index); err != nil {
		return View{}, err
	}
	applog.LogUIEvent(ctx, p.id, "open", zap.Int("index", index))
	return p.viewLocked(), nil
}

// Prev shows the previous profile in the modal.
func (p *Page) Prev(ctx context.Context) (View, error) {
	return p.navigate(ctx, "prev", p.modal.Prev)
}

// Next shows the next profile in the modal.
func (p *Page) Next(ctx context.Context) (View, error) {
	return p.navigate(ctx, "next", p.modal.Next)
}

// Close closes the modal.
func (p *Page) Close(ctx context.Context) (View, error) {
	return p.navigate(ctx, "close", p.modal.Close)
}

func (p *Page) navigate(ctx context.Context, event string, step func() error) (View, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := step(); err != nil {
		return View{}, err
	}
	fields := []zap.Field{}
	if s, ok := p.modal.Session(); ok {
		fields = append(fields, zap.Int("index", s.Index))
	}
	applog.LogUIEvent(ctx, p.id, event, fields...)
	return p.viewLocked(), nil
}

// View returns the current read model.
func (p *Page) View() View {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.viewLocked()
}

// HTML serializes the page document.
func (p *Page) HTML() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.surface.HTML()
}

// Surface returns the page's document. Callers must not mutate it.
func (p *Page) Surface() *Surface {
	return p.surface
}

func (p *Page) viewLocked() View {
	rendered := p.renderer.Rendered()
	cards := make([]Card, len(rendered))
	for i, profile := range rendered {
		c := newCardData(i, profile)
		cards[i] = Card{
			Index:     c.Index,
			Name:      c.Name,
			Email:     c.Email,
			Location:  c.Location,
			Thumbnail: c.Thumbnail,
		}
	}

	v := View{
		ID:        p.id,
		CreatedAt: p.createdAt,
		Query:     p.search.Query(),
		Cards:     cards,
		NotFound:  p.surface.HasNotFound(),
	}
	if s, ok := p.modal.Session(); ok {
		m := ModalView(newModalData(s.List, s.Index))
		v.Modal = &m
	}
	return v
}

// Package web serves the gallery as server-rendered HTML. Each browser gets a
// session page keyed by cookie; form posts apply one event and redirect back.
package web

import (
	"embed"
	"errors"
	"io/fs"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/janisto/profile-gallery/internal/gallery"
	applog "github.com/janisto/profile-gallery/internal/platform/logging"
	"github.com/janisto/profile-gallery/internal/platform/respond"
)

// SessionCookie names the cookie that carries the browsing session ID.
const SessionCookie = "gallery_session"

const sessionMaxAge = 24 * time.Hour

//go:embed static
var staticFS embed.FS

// Handler serves the HTML gallery.
type Handler struct {
	registry *gallery.Registry
}

// NewHandler returns a handler over registry.
func NewHandler(registry *gallery.Registry) *Handler {
	return &Handler{registry: registry}
}

// Register mounts the page, its event endpoints and static assets on r.
func (h *Handler) Register(r chi.Router) {
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(static)))

	r.Get("/", h.index)
	r.Get("/search", h.search)
	r.Post("/cards/{index}", h.openCard)
	r.Post("/modal/prev", h.modalPrev)
	r.Post("/modal/next", h.modalNext)
	r.Post("/modal/close", h.modalClose)
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	page, ok := h.pageFromCookie(r)
	if !ok {
		var err error
		page, err = h.registry.Create(r.Context())
		if err != nil {
			applog.LogError(r.Context(), "creating gallery session failed", err)
			respond.WriteProblem(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
		setSessionCookie(w, r, page.ID())
		applog.LogInfo(r.Context(), "gallery session started", zap.String("ui.session", page.ID()))
	}

	html, err := page.HTML()
	if err != nil {
		applog.LogError(r.Context(), "rendering gallery page failed", err)
		respond.WriteProblem(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, func(p *gallery.Page) error {
		_, err := p.Search(r.Context(), r.URL.Query().Get("q"))
		return err
	})
}

func (h *Handler) openCard(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		respond.WriteProblem(w, r, http.StatusNotFound, "card not found")
		return
	}
	h.apply(w, r, func(p *gallery.Page) error {
		_, err := p.OpenCard(r.Context(), index)
		return err
	})
}

func (h *Handler) modalPrev(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, func(p *gallery.Page) error {
		_, err := p.Prev(r.Context())
		return err
	})
}

func (h *Handler) modalNext(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, func(p *gallery.Page) error {
		_, err := p.Next(r.Context())
		return err
	})
}

func (h *Handler) modalClose(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, func(p *gallery.Page) error {
		_, err := p.Close(r.Context())
		return err
	})
}

// apply runs one event against the caller's page and redirects back to it.
// Without a live session the redirect alone starts a fresh one.
func (h *Handler) apply(w http.ResponseWriter, r *http.Request, fn func(*gallery.Page) error) {
	page, ok := h.pageFromCookie(r)
	if !ok {
		respond.WriteRedirect(w, r, "/", http.StatusSeeOther)
		return
	}

	err := fn(page)
	switch {
	case err == nil, errors.Is(err, gallery.ErrModalClosed):
		// A modal form resubmitted after close is stale, not an error.
		respond.WriteRedirect(w, r, "/", http.StatusSeeOther)
	case errors.Is(err, gallery.ErrCardNotFound):
		respond.WriteProblem(w, r, http.StatusNotFound, "card not found")
	default:
		applog.LogError(r.Context(), "gallery event failed", err)
		respond.WriteProblem(w, r, http.StatusInternalServerError, "internal server error")
	}
}

func (h *Handler) pageFromCookie(r *http.Request) (*gallery.Page, bool) {
	c, err := r.Cookie(SessionCookie)
	if err != nil || c.Value == "" {
		return nil, false
	}
	page, err := h.registry.Get(c.Value)
	if err != nil {
		return nil, false
	}
	return page, true
}

func setSessionCookie(w http.ResponseWriter, r *http.Request, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(sessionMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}

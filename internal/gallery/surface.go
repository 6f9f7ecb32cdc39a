package gallery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	selGallery  = "#gallery"
	selSearch   = ".search-container"
	selBody     = "body"
	selCard     = "#gallery .card"
	selNotFound = "#gallery .not-found"
	selOverlay  = ".modal-container"
	selInput    = "#search-input"
)

// Surface is the document a session renders into. Renderers write markup into
// its mount points; reads exist for views and tests.
type Surface struct {
	doc *goquery.Document
}

// NewSurface builds an empty page from the document shell.
func NewSurface() (*Surface, error) {
	shell, err := executeMarkup("shell", shellData{Title: DocumentTitle})
	if err != nil {
		return nil, fmt.Errorf("rendering document shell: %w", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(shell))
	if err != nil {
		return nil, fmt.Errorf("parsing document shell: %w", err)
	}
	return &Surface{doc: doc}, nil
}

// SetGallery replaces the gallery container's content.
func (s *Surface) SetGallery(markup string) {
	s.doc.Find(selGallery).SetHtml(markup)
}

// AppendGallery appends to the gallery container.
func (s *Surface) AppendGallery(markup string) {
	s.doc.Find(selGallery).AppendHtml(markup)
}

// SetSearch replaces the search container's content.
func (s *Surface) SetSearch(markup string) {
	s.doc.Find(selSearch).SetHtml(markup)
}

// SetSearchValue mirrors the current query into the search input.
func (s *Surface) SetSearchValue(value string) {
	s.doc.Find(selInput).SetAttr("value", value)
}

// AppendOverlay mounts markup at the end of the body.
func (s *Surface) AppendOverlay(markup string) {
	s.doc.Find(selBody).AppendHtml(markup)
}

// RemoveOverlay removes every mounted overlay.
func (s *Surface) RemoveOverlay() {
	s.doc.Find(selOverlay).Remove()
}

// CardCount is the number of cards in the gallery.
func (s *Surface) CardCount() int {
	return s.doc.Find(selCard).Length()
}

// HasNotFound reports whether the NOT FOUND marker is shown.
func (s *Surface) HasNotFound() bool {
	return s.doc.Find(selNotFound).Length() > 0
}

// NotFoundCount is the number of NOT FOUND markers in the gallery.
func (s *Surface) NotFoundCount() int {
	return s.doc.Find(selNotFound).Length()
}

// OverlayCount is the number of mounted overlays.
func (s *Surface) OverlayCount() int {
	return s.doc.Find(selOverlay).Length()
}

// SearchMounted reports whether the search form has been inserted.
func (s *Surface) SearchMounted() bool {
	return s.doc.Find(selInput).Length() > 0
}

// HTML serializes the whole document.
func (s *Surface) HTML() (string, error) {
	return s.doc.Html()
}

// Find exposes read-only queries over the document.
func (s *Surface) Find(selector string) *goquery.Selection {
	return s.doc.Find(selector)
}

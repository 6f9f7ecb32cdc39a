package gallery

import (
	"fmt"
	"strings"
)

// Filter returns the profiles whose first or last name contains query,
// compared case-insensitively. An empty query matches everything.
func Filter(profiles []Profile, query string) []Profile {
	q := strings.ToLower(query)
	visible := make([]Profile, 0, len(profiles))
	for _, p := range profiles {
		if strings.Contains(strings.ToLower(p.Name.First), q) ||
			strings.Contains(strings.ToLower(p.Name.Last), q) {
			visible = append(visible, p)
		}
	}
	return visible
}

// SearchController owns the search form and re-renders the gallery from the
// store on every input change. It never writes to the store.
type SearchController struct {
	store    *Store
	renderer *GalleryRenderer
	surface  *Surface
	query    string
	active   bool
}

// NewSearchController wires a controller over store and renderer.
func NewSearchController(store *Store, renderer *GalleryRenderer, surface *Surface) *SearchController {
	return &SearchController{store: store, renderer: renderer, surface: surface}
}

// Activate mounts the search form. Input before activation is rejected.
func (c *SearchController) Activate() error {
	markup, err := executeMarkup("search", searchData{Query: c.query})
	if err != nil {
		return fmt.Errorf("rendering search form: %w", err)
	}
	c.surface.SetSearch(markup)
	c.active = true
	return nil
}

// Active reports whether the form is mounted.
func (c *SearchController) Active() bool {
	return c.active
}

// Input handles one change of the search field and returns the visible list.
func (c *SearchController) Input(raw string) ([]Profile, error) {
	if !c.active {
		return nil, ErrSearchInactive
	}
	c.query = strings.ToLower(raw)
	c.surface.SetSearchValue(raw)

	visible := Filter(c.store.Profiles(), c.query)
	if err := c.renderer.Render(visible); err != nil {
		return nil, err
	}
	return visible, nil
}

// Query is the current lowercase query.
func (c *SearchController) Query() string {
	return c.query
}

package gallery

import "fmt"

// CardClickFunc handles a click on the card at index within the rendered list.
type CardClickFunc func(list []Profile, index int) error

// GalleryRenderer draws cards into the surface's gallery container and keeps
// the positional binding from card index to profile.
type GalleryRenderer struct {
	surface *Surface
	bound   []Profile
	onClick CardClickFunc
}

// NewGalleryRenderer returns a renderer writing into surface.
func NewGalleryRenderer(surface *Surface) *GalleryRenderer {
	return &GalleryRenderer{surface: surface}
}

// OnCardClick sets the handler bound to every rendered card.
func (r *GalleryRenderer) OnCardClick(fn CardClickFunc) {
	r.onClick = fn
}

// Render replaces the gallery content with one card per profile. An empty list
// leaves exactly one NOT FOUND marker. Card i is bound to profiles[i].
func (r *GalleryRenderer) Render(profiles []Profile) error {
	bound := make([]Profile, len(profiles))
	copy(bound, profiles)

	r.surface.SetGallery("")
	r.bound = nil

	if len(bound) == 0 {
		notFound, err := executeMarkup("not-found", nil)
		if err != nil {
			return fmt.Errorf("rendering not-found marker: %w", err)
		}
		r.surface.AppendGallery(notFound)
		r.bound = bound
		return nil
	}

	cards := make([]cardData, len(bound))
	for i, p := range bound {
		cards[i] = newCardData(i, p)
	}
	markup, err := executeMarkup("cards", cards)
	if err != nil {
		return fmt.Errorf("rendering cards: %w", err)
	}
	r.surface.SetGallery(markup)
	r.bound = bound
	return nil
}

// Rendered returns a copy of the currently bound list.
func (r *GalleryRenderer) Rendered() []Profile {
	out := make([]Profile, len(r.bound))
	copy(out, r.bound)
	return out
}

// Click dispatches a click on card index to the bound handler with a snapshot
// of the rendered list.
func (r *GalleryRenderer) Click(index int) error {
	if index < 0 || index >= len(r.bound) {
		return fmt.Errorf("%w: index %d of %d", ErrCardNotFound, index, len(r.bound))
	}
	if r.onClick == nil {
		return nil
	}
	return r.onClick(r.Rendered(), index)
}

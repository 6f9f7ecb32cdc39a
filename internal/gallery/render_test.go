package gallery

import (
	"errors"
	"testing"
)

func newTestRenderer(t *testing.T) (*GalleryRenderer, *Surface) {
	t.Helper()
	surface, err := NewSurface()
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	return NewGalleryRenderer(surface), surface
}

func TestRenderDrawsOneCardPerProfile(t *testing.T) {
	all := twelveProfiles()
	for _, n := range []int{1, 3, 12} {
		r, surface := newTestRenderer(t)
		if err := r.Render(all[:n]); err != nil {
			t.Fatalf("Render: %v", err)
		}
		if got := surface.CardCount(); got != n {
			t.Errorf("expected %d cards, got %d", n, got)
		}
		if surface.HasNotFound() {
			t.Errorf("unexpected NOT FOUND with %d profiles", n)
		}
	}
}

func TestRenderCardContent(t *testing.T) {
	r, surface := newTestRenderer(t)
	if err := r.Render([]Profile{testProfile("anna", "smith")}); err != nil {
		t.Fatalf("Render: %v", err)
	}

	card := surface.Find("#gallery .card").First()
	if got := card.Find(".card-name").Text(); got != "Anna Smith" {
		t.Errorf("unexpected name %q", got)
	}
	if got := card.Find(".card-text").First().Text(); got != "anna.smith@example.com" {
		t.Errorf("unexpected email %q", got)
	}
	if got := card.Find(".card-text").Last().Text(); got != "Springfield Oregon" {
		t.Errorf("unexpected location %q", got)
	}
	if src, _ := card.Find("img.card-img").Attr("src"); src != "https://randomuser.me/api/portraits/thumb/men/1.jpg" {
		t.Errorf("unexpected thumbnail %q", src)
	}
	if idx, _ := card.Attr("data-index"); idx != "0" {
		t.Errorf("unexpected data-index %q", idx)
	}
}

func TestRenderEmptyShowsSingleNotFound(t *testing.T) {
	r, surface := newTestRenderer(t)
	if err := r.Render(twelveProfiles()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	for range 3 {
		if err := r.Render(nil); err != nil {
			t.Fatalf("Render: %v", err)
		}
	}
	if got := surface.NotFoundCount(); got != 1 {
		t.Fatalf("expected exactly one NOT FOUND marker, got %d", got)
	}
	if surface.CardCount() != 0 {
		t.Fatalf("expected no cards, got %d", surface.CardCount())
	}
	if got := surface.Find("#gallery .not-found h2").Text(); got != "NOT FOUND" {
		t.Fatalf("unexpected marker text %q", got)
	}
}

func TestRenderNonEmptyClearsNotFound(t *testing.T) {
	r, surface := newTestRenderer(t)
	_ = r.Render(nil)
	if err := r.Render(twelveProfiles()[:2]); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if surface.HasNotFound() {
		t.Fatal("expected NOT FOUND marker to be cleared")
	}
}

func TestClickBindsByPosition(t *testing.T) {
	r, _ := newTestRenderer(t)
	twins := []Profile{testProfile("sam", "lee"), testProfile("sam", "lee")}
	twins[1].Email = "second@example.com"
	if err := r.Render(twins); err != nil {
		t.Fatalf("Render: %v", err)
	}

	var gotIndex int
	var gotList []Profile
	r.OnCardClick(func(list []Profile, index int) error {
		gotList, gotIndex = list, index
		return nil
	})
	if err := r.Click(1); err != nil {
		t.Fatalf("Click: %v", err)
	}
	if gotIndex != 1 || gotList[gotIndex].Email != "second@example.com" {
		t.Fatalf("expected second twin, got index %d email %s", gotIndex, gotList[gotIndex].Email)
	}
}

func TestClickOutOfRange(t *testing.T) {
	r, _ := newTestRenderer(t)
	_ = r.Render(twelveProfiles()[:3])
	for _, idx := range []int{-1, 3, 99} {
		if err := r.Click(idx); !errors.Is(err, ErrCardNotFound) {
			t.Errorf("Click(%d): expected ErrCardNotFound, got %v", idx, err)
		}
	}
}

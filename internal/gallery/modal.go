package gallery

import "fmt"

// ModalSession is an open modal: a snapshot list and the shown index.
// Navigation replaces the session; it is never mutated in place.
type ModalSession struct {
	List  []Profile
	Index int
}

// Current is the profile on display.
func (s ModalSession) Current() Profile {
	return s.List[s.Index]
}

// ModalController shows one profile at a time in an overlay mounted on the
// surface body and moves through its snapshot list.
type ModalController struct {
	surface *Surface
	session *ModalSession
}

// NewModalController returns a closed controller.
func NewModalController(surface *Surface) *ModalController {
	return &ModalController{surface: surface}
}

// Open shows list[index], replacing any open overlay.
func (m *ModalController) Open(list []Profile, index int) error {
	if index < 0 || index >= len(list) {
		return fmt.Errorf("%w: index %d of %d", ErrCardNotFound, index, len(list))
	}
	snapshot := make([]Profile, len(list))
	copy(snapshot, list)
	return m.show(&ModalSession{List: snapshot, Index: index})
}

// Prev moves one profile back. At the first profile it does nothing.
func (m *ModalController) Prev() error {
	if m.session == nil {
		return ErrModalClosed
	}
	if m.session.Index == 0 {
		return nil
	}
	return m.show(&ModalSession{List: m.session.List, Index: m.session.Index - 1})
}

// Next moves one profile forward. At the last profile it does nothing.
func (m *ModalController) Next() error {
	if m.session == nil {
		return ErrModalClosed
	}
	if m.session.Index >= len(m.session.List)-1 {
		return nil
	}
	return m.show(&ModalSession{List: m.session.List, Index: m.session.Index + 1})
}

// Close removes the overlay and drops the session.
func (m *ModalController) Close() error {
	if m.session == nil {
		return ErrModalClosed
	}
	m.surface.RemoveOverlay()
	m.session = nil
	return nil
}

// Session returns the open session, if any.
func (m *ModalController) Session() (ModalSession, bool) {
	if m.session == nil {
		return ModalSession{}, false
	}
	return *m.session, true
}

func (m *ModalController) show(next *ModalSession) error {
	markup, err := executeMarkup("modal", newModalData(next.List, next.Index))
	if err != nil {
		return fmt.Errorf("rendering modal: %w", err)
	}
	m.surface.RemoveOverlay()
	m.surface.AppendOverlay(markup)
	m.session = next
	return nil
}

package gallery

import "sync"

// MaxProfiles is the size of the one batch the gallery ever holds.
const MaxProfiles = 12

// Store holds the full profile list in upstream response order. It is written
// once after the fetch and only read afterwards; readers always get copies.
type Store struct {
	mu       sync.RWMutex
	profiles []Profile
	loaded   bool
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Replace swaps in a new list, keeping at most MaxProfiles entries.
func (s *Store) Replace(profiles []Profile) {
	if len(profiles) > MaxProfiles {
		profiles = profiles[:MaxProfiles]
	}
	next := make([]Profile, len(profiles))
	copy(next, profiles)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles = next
	s.loaded = true
}

// Profiles returns a copy of the current list.
func (s *Store) Profiles() []Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Profile, len(s.profiles))
	copy(out, s.profiles)
	return out
}

// Len returns the number of stored profiles.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.profiles)
}

// Loaded reports whether Replace has been called.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

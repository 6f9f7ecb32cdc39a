package randomuser

import (
	"context"

	"github.com/janisto/profile-gallery/internal/gallery"
)

// MockService implements Service for unit tests with a fixed batch.
type MockService struct {
	Profiles []gallery.Profile
	Err      error
	Calls    int
}

// NewMockService creates a mock pre-populated with three demo profiles.
func NewMockService() *MockService {
	return &MockService{Profiles: DemoProfiles()}
}

// NewFailingMockService creates a mock whose fetch always fails with err.
func NewFailingMockService(err error) *MockService {
	return &MockService{Err: err}
}

func (m *MockService) LoadProfiles(_ context.Context) ([]gallery.Profile, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]gallery.Profile, len(m.Profiles))
	copy(out, m.Profiles)
	return out, nil
}

// DemoProfiles returns a small fixed batch shaped like upstream data.
func DemoProfiles() []gallery.Profile {
	return []gallery.Profile{
		demoProfile("brad", "gibson", "kilcoole", "waterford", "9278", "new road", "93027", "1993-07-20T09:44:18.674Z", "081-454-0666", "men/75"),
		demoProfile("jennie", "nichols", "billings", "michigan", "8929", "valwood pkwy", "63104", "1992-03-08T15:13:16.688Z", "(489)-330-2385", "women/21"),
		demoProfile("dan", "lopez", "austin", "texas", "4410", "hickory creek dr", "78701", "1968-11-02T04:21:09.012Z", "(512)-555-0142", "men/12"),
	}
}

func demoProfile(first, last, city, state, number, street, postcode, dob, cell, portrait string) gallery.Profile {
	return gallery.Profile{
		Name:  gallery.Name{First: first, Last: last},
		Email: first + "." + last + "@example.com",
		Location: gallery.Location{
			City:     city,
			State:    state,
			Street:   gallery.Street{Number: gallery.Text(number), Name: street},
			Postcode: gallery.Text(postcode),
		},
		Picture: gallery.Picture{
			Thumbnail: "https://randomuser.me/api/portraits/thumb/" + portrait + ".jpg",
			Large:     "https://randomuser.me/api/portraits/" + portrait + ".jpg",
		},
		DOB:  gallery.DateOfBirth{Date: dob},
		Cell: cell,
	}
}

// Compile-time interface check
var _ Service = (*MockService)(nil)

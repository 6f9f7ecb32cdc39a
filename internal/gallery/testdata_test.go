package gallery

import "fmt"

func testProfile(first, last string) Profile {
	return Profile{
		Name:  Name{First: first, Last: last},
		Email: fmt.Sprintf("%s.%s@example.com", first, last),
		Location: Location{
			City:     "Springfield",
			State:    "Oregon",
			Street:   Street{Number: "742", Name: "Evergreen Terrace"},
			Postcode: "97403",
		},
		Picture: Picture{
			Thumbnail: "https://randomuser.me/api/portraits/thumb/men/1.jpg",
			Large:     "https://randomuser.me/api/portraits/men/1.jpg",
		},
		DOB:  DateOfBirth{Date: "1990-05-03T00:00:00.000Z"},
		Cell: "(555) 123-4567",
	}
}

// twelveProfiles has exactly three first names containing "an": Anna, Dan, Jane.
func twelveProfiles() []Profile {
	names := [][2]string{
		{"anna", "smith"}, {"bob", "jones"}, {"carl", "white"}, {"dan", "brown"},
		{"eve", "moore"}, {"fred", "clark"}, {"gina", "lewis"}, {"hugo", "young"},
		{"ivy", "scott"}, {"jane", "green"}, {"kyle", "baker"}, {"liz", "adams"},
	}
	out := make([]Profile, len(names))
	for i, n := range names {
		out[i] = testProfile(n[0], n[1])
	}
	return out
}

func loadedStore(profiles []Profile) *Store {
	s := NewStore()
	s.Replace(profiles)
	return s
}

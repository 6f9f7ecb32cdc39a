// Package gallery keeps one batch of user profiles and the per-session views over
// it: the searchable card gallery and the detail modal with prev/next navigation.
package gallery

import (
	"bytes"
	"encoding/json"
)

// Text is a JSON scalar decoded as a string. Numbers keep their literal form;
// null, objects and arrays decode to the empty string.
type Text string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*t = ""
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*t = Text(n.String())
	default:
		*t = ""
	}
	return nil
}

// String returns the text value.
func (t Text) String() string {
	return string(t)
}

// Name is a person's given and family name.
type Name struct {
	First string `json:"first"`
	Last  string `json:"last"`
}

// Street is the numbered street part of an address.
type Street struct {
	Number Text   `json:"number"`
	Name   string `json:"name"`
}

// Location is a postal location.
type Location struct {
	City     string `json:"city"`
	State    string `json:"state"`
	Street   Street `json:"street"`
	Postcode Text   `json:"postcode"`
}

// Picture holds avatar URLs.
type Picture struct {
	Thumbnail string `json:"thumbnail"`
	Large     string `json:"large"`
}

// DateOfBirth wraps the ISO-8601 birth timestamp.
type DateOfBirth struct {
	Date string `json:"date"`
}

// Profile is one randomly generated user record. Fields the upstream omits
// stay empty; no identifier is kept because the upstream is asked to exclude it.
type Profile struct {
	Name     Name        `json:"name"`
	Email    string      `json:"email"`
	Location Location    `json:"location"`
	Picture  Picture     `json:"picture"`
	DOB      DateOfBirth `json:"dob"`
	Cell     string      `json:"cell"`
}

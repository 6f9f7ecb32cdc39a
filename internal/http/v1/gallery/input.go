package gallery

import "github.com/janisto/profile-gallery/internal/platform/pagination"

// ProfilesListInput defines query parameters for listing profiles.
type ProfilesListInput struct {
	pagination.Params
}

// SessionCreateInput has no parameters.
type SessionCreateInput struct{}

// SessionPathInput identifies a browsing session.
type SessionPathInput struct {
	ID string `path:"id" doc:"Session ID" format:"uuid" example:"6f1c2a7e-3b9d-4f0a-9c85-2e7d1b4a6c30"`
}

// SearchInput is the body of one search field change.
type SearchInput struct {
	SessionPathInput
	Body struct {
		Query string `json:"query" doc:"Raw search field value; matched case-insensitively against first and last names" maxLength:"100" example:"an"`
	}
}

// CardOpenInput identifies a card in the rendered gallery.
type CardOpenInput struct {
	SessionPathInput
	Index int `path:"index" doc:"Zero-based position of the card in the current gallery" minimum:"0" example:"1"`
}

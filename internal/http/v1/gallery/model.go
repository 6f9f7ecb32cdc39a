package gallery

import (
	"github.com/janisto/profile-gallery/internal/platform/timeutil"
)

// Profile is a stored profile with its display fields.
type Profile struct {
	Index     int    `json:"index"     doc:"Position in the fetched batch" example:"0"`
	Name      string `json:"name"      doc:"Title-cased full name"         example:"Brad Gibson"`
	Email     string `json:"email"     doc:"Email address"                 example:"brad.gibson@example.com"`
	City      string `json:"city"      doc:"City"                          example:"kilcoole"`
	State     string `json:"state"     doc:"State or region"               example:"waterford"`
	Phone     string `json:"phone"     doc:"Cell number as (XXX) XXX-XXXX" example:"(081) 454-0666"`
	Address   string `json:"address"   doc:"Number, street, state, postcode" example:"9278, new road, waterford, 93027"`
	Birthday  string `json:"birthday"  doc:"Date of birth as DD/MM/YYYY"   example:"20/07/1993"`
	Thumbnail string `json:"thumbnail" doc:"Small avatar URL"              example:"https://randomuser.me/api/portraits/thumb/men/75.jpg"`
	Picture   string `json:"picture"   doc:"Large avatar URL"              example:"https://randomuser.me/api/portraits/men/75.jpg"`
}

// Card is one card of a session's gallery.
type Card struct {
	Index     int    `json:"index"     doc:"Card position"    example:"0"`
	Name      string `json:"name"      doc:"Full name"        example:"Brad Gibson"`
	Email     string `json:"email"     doc:"Email address"    example:"brad.gibson@example.com"`
	Location  string `json:"location"  doc:"City and state"   example:"kilcoole waterford"`
	Thumbnail string `json:"thumbnail" doc:"Small avatar URL" example:"https://randomuser.me/api/portraits/thumb/men/75.jpg"`
}

// Modal is the open detail view.
type Modal struct {
	Index    int    `json:"index"    doc:"Position in the modal's list"    example:"1"`
	Total    int    `json:"total"    doc:"Length of the modal's list"     example:"3"`
	Name     string `json:"name"     doc:"Full name"                      example:"Brad Gibson"`
	Email    string `json:"email"    doc:"Email address"                  example:"brad.gibson@example.com"`
	City     string `json:"city"     doc:"City"                           example:"kilcoole"`
	Phone    string `json:"phone"    doc:"Formatted cell number"          example:"(081) 454-0666"`
	Address  string `json:"address"  doc:"Formatted address"              example:"9278, new road, waterford, 93027"`
	Birthday string `json:"birthday" doc:"Date of birth as DD/MM/YYYY"    example:"20/07/1993"`
	Picture  string `json:"picture"  doc:"Large avatar URL"               example:"https://randomuser.me/api/portraits/men/75.jpg"`
	HasPrev  bool   `json:"hasPrev"  doc:"Whether Prev moves the modal"   example:"true"`
	HasNext  bool   `json:"hasNext"  doc:"Whether Next moves the modal"   example:"true"`
}

// Session is the current state of one browsing session.
type Session struct {
	ID        string        `json:"id"              doc:"Session ID"                          example:"6f1c2a7e-3b9d-4f0a-9c85-2e7d1b4a6c30"`
	CreatedAt timeutil.Time `json:"createdAt"       doc:"Session start"                       example:"2024-01-15T10:30:00.000Z"`
	Query     string        `json:"query"           doc:"Current lowercase search query"      example:"an"`
	Cards     []Card        `json:"cards"           doc:"Rendered gallery cards"`
	Count     int           `json:"count"           doc:"Number of cards"                     example:"3"`
	NotFound  bool          `json:"notFound"        doc:"Whether the NOT FOUND marker is shown" example:"false"`
	Modal     *Modal        `json:"modal,omitempty" doc:"Open detail modal, absent when closed"`
}

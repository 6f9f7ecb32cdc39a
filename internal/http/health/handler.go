package health

import (
	"encoding/json"
	"net/http"

	"github.com/janisto/profile-gallery/internal/gallery"
)

// Response is the payload for the health endpoint.
type Response struct {
	Status   string `json:"status"`
	Profiles int    `json:"profiles"`
}

// Handler returns a plain HTTP handler for the health check endpoint. The
// service is healthy even with zero profiles; a failed fetch still serves the
// NOT FOUND gallery.
func Handler(store *gallery.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Response{Status: "healthy", Profiles: store.Len()})
	}
}

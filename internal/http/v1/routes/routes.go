package routes

import (
	"net/url"

	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/profile-gallery/internal/gallery"
	galleryhandler "github.com/janisto/profile-gallery/internal/http/v1/gallery"
)

// Register wires all HTTP routes into the provided API router.
func Register(api huma.API, registry *gallery.Registry) {
	galleryhandler.Register(api, registry, apiPrefix(api))
}

func apiPrefix(api huma.API) string {
	for _, s := range api.OpenAPI().Servers {
		if u, err := url.Parse(s.URL); err == nil && u.Path != "" {
			return u.Path
		}
	}
	return ""
}

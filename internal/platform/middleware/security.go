package middleware

import (
	"net/http"
	"strings"
)

// Security sets security headers on every response except those under skipPaths.
//
// The content security policy admits the upstream avatar host for images and
// restricts forms to same-origin posts, which is all the gallery page needs.
func Security(imageHosts []string, skipPaths ...string) func(http.Handler) http.Handler {
	imgSrc := strings.TrimSpace("'self' " + strings.Join(imageHosts, " "))
	csp := "default-src 'self'; img-src " + imgSrc +
		"; style-src 'self'; form-action 'self'; frame-ancestors 'none'; base-uri 'none'"

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, p := range skipPaths {
				if strings.HasPrefix(r.URL.Path, p) {
					next.ServeHTTP(w, r)
					return
				}
			}
			h := w.Header()
			h.Set("Cache-Control", "no-store")
			h.Set("Content-Security-Policy", csp)
			h.Set("Cross-Origin-Opener-Policy", "same-origin")
			h.Set("Permissions-Policy", "camera=(), geolocation=(), microphone=(), payment=(), usb=()")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			next.ServeHTTP(w, r)
		})
	}
}

package randomuser

import (
	"context"

	"go.uber.org/zap"

	"github.com/janisto/profile-gallery/internal/gallery"
	applog "github.com/janisto/profile-gallery/internal/platform/logging"
)

// Gateway runs the one-shot startup fetch. A failed fetch is logged and
// treated as an empty batch so the gallery still comes up.
type Gateway struct {
	svc Service
}

// NewGateway wraps svc.
func NewGateway(svc Service) *Gateway {
	return &Gateway{svc: svc}
}

// Load returns the fetched profiles, or an empty list on any failure.
func (g *Gateway) Load(ctx context.Context) []gallery.Profile {
	profiles, err := g.svc.LoadProfiles(ctx)
	if err != nil {
		applog.LogError(ctx, "profile fetch failed", err)
		return []gallery.Profile{}
	}
	return profiles
}

// LoadInto fetches and stores the batch, returning how many profiles were kept.
func (g *Gateway) LoadInto(ctx context.Context, store *gallery.Store) int {
	store.Replace(g.Load(ctx))
	n := store.Len()
	applog.LogInfo(ctx, "profiles loaded", zap.Int("count", n))
	return n
}

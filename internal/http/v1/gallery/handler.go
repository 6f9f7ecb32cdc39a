package gallery

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	galleryapp "github.com/janisto/profile-gallery/internal/gallery"
	applog "github.com/janisto/profile-gallery/internal/platform/logging"
	"github.com/janisto/profile-gallery/internal/platform/pagination"
	"github.com/janisto/profile-gallery/internal/platform/timeutil"
)

const profileCursorType = "profile"

// Register wires profile and session routes into the provided API router.
func Register(api huma.API, registry *galleryapp.Registry, prefix string) {
	huma.Register(api, huma.Operation{
		OperationID: "list-profiles",
		Method:      http.MethodGet,
		Path:        "/profiles",
		Summary:     "List fetched profiles",
		Description: "Returns the batch of profiles fetched at startup with display formatting applied.",
		Tags:        []string{"Profiles"},
	}, func(_ context.Context, input *ProfilesListInput) (*ProfilesListOutput, error) {
		cursor, err := pagination.DecodeCursor(input.Cursor)
		if err != nil {
			return nil, huma.Error400BadRequest("invalid cursor format")
		}
		if cursor.Type != "" && cursor.Type != profileCursorType {
			return nil, huma.Error400BadRequest("cursor type mismatch")
		}

		page := pagination.Paginate(
			toHTTPProfiles(registry.Store().Profiles()),
			cursor,
			input.DefaultLimit(),
			profileCursorType,
			prefix+"/profiles",
			nil,
		)
		return &ProfilesListOutput{
			Link: page.LinkHeader,
			Body: ProfilesListData{
				Profiles: page.Items,
				Count:    len(page.Items),
				Total:    page.Total,
			},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "create-session",
		Method:        http.MethodPost,
		Path:          "/sessions",
		Summary:       "Start a browsing session",
		Description:   "Renders the full gallery and activates search for a new session.",
		Tags:          []string{"Sessions"},
		DefaultStatus: http.StatusCreated,
	}, func(ctx context.Context, _ *SessionCreateInput) (*SessionCreateOutput, error) {
		page, err := registry.Create(ctx)
		if err != nil {
			return nil, mapServiceError(ctx, err)
		}
		return &SessionCreateOutput{
			Location: prefix + "/sessions/" + page.ID(),
			Body:     toHTTPSession(page.View()),
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-session",
		Method:      http.MethodGet,
		Path:        "/sessions/{id}",
		Summary:     "Get a browsing session",
		Description: "Returns the session's gallery, query and modal state.",
		Tags:        []string{"Sessions"},
	}, func(ctx context.Context, input *SessionPathInput) (*SessionOutput, error) {
		page, err := registry.Get(input.ID)
		if err != nil {
			return nil, mapServiceError(ctx, err)
		}
		return &SessionOutput{Body: toHTTPSession(page.View())}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-session",
		Method:        http.MethodDelete,
		Path:          "/sessions/{id}",
		Summary:       "End a browsing session",
		Tags:          []string{"Sessions"},
		DefaultStatus: http.StatusNoContent,
	}, func(ctx context.Context, input *SessionPathInput) (*struct{}, error) {
		if err := registry.Delete(input.ID); err != nil {
			return nil, mapServiceError(ctx, err)
		}
		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "search-session",
		Method:      http.MethodPost,
		Path:        "/sessions/{id}/search",
		Summary:     "Search the gallery",
		Description: "Applies one search field change. The gallery is re-rendered from the full profile batch; an open modal is left as is.",
		Tags:        []string{"Sessions"},
	}, func(ctx context.Context, input *SearchInput) (*SessionOutput, error) {
		return event(ctx, registry, input.ID, func(p *galleryapp.Page) (galleryapp.View, error) {
			return p.Search(ctx, input.Body.Query)
		})
	})

	huma.Register(api, huma.Operation{
		OperationID: "open-card",
		Method:      http.MethodPost,
		Path:        "/sessions/{id}/cards/{index}",
		Summary:     "Open a card",
		Description: "Opens the detail modal on the card at index, over a snapshot of the current gallery.",
		Tags:        []string{"Sessions"},
	}, func(ctx context.Context, input *CardOpenInput) (*SessionOutput, error) {
		return event(ctx, registry, input.ID, func(p *galleryapp.Page) (galleryapp.View, error) {
			return p.OpenCard(ctx, input.Index)
		})
	})

	huma.Register(api, huma.Operation{
		OperationID: "modal-prev",
		Method:      http.MethodPost,
		Path:        "/sessions/{id}/modal/prev",
		Summary:     "Show the previous profile",
		Description: "Moves the modal back one profile. Does nothing at the first profile.",
		Tags:        []string{"Sessions"},
	}, func(ctx context.Context, input *SessionPathInput) (*SessionOutput, error) {
		return event(ctx, registry, input.ID, func(p *galleryapp.Page) (galleryapp.View, error) {
			return p.Prev(ctx)
		})
	})

	huma.Register(api, huma.Operation{
		OperationID: "modal-next",
		Method:      http.MethodPost,
		Path:        "/sessions/{id}/modal/next",
		Summary:     "Show the next profile",
		Description: "Moves the modal forward one profile. Does nothing at the last profile.",
		Tags:        []string{"Sessions"},
	}, func(ctx context.Context, input *SessionPathInput) (*SessionOutput, error) {
		return event(ctx, registry, input.ID, func(p *galleryapp.Page) (galleryapp.View, error) {
			return p.Next(ctx)
		})
	})

	huma.Register(api, huma.Operation{
		OperationID: "close-modal",
		Method:      http.MethodDelete,
		Path:        "/sessions/{id}/modal",
		Summary:     "Close the modal",
		Tags:        []string{"Sessions"},
	}, func(ctx context.Context, input *SessionPathInput) (*SessionOutput, error) {
		return event(ctx, registry, input.ID, func(p *galleryapp.Page) (galleryapp.View, error) {
			return p.Close(ctx)
		})
	})
}

func event(
	ctx context.Context,
	registry *galleryapp.Registry,
	id string,
	fn func(*galleryapp.Page) (galleryapp.View, error),
) (*SessionOutput, error) {
	page, err := registry.Get(id)
	if err != nil {
		return nil, mapServiceError(ctx, err)
	}
	view, err := fn(page)
	if err != nil {
		return nil, mapServiceError(ctx, err)
	}
	return &SessionOutput{Body: toHTTPSession(view)}, nil
}

func mapServiceError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, galleryapp.ErrSessionNotFound):
		return huma.Error404NotFound("session not found")
	case errors.Is(err, galleryapp.ErrCardNotFound):
		return huma.Error404NotFound("card not found")
	case errors.Is(err, galleryapp.ErrModalClosed):
		return huma.Error409Conflict("modal is not open")
	case errors.Is(err, galleryapp.ErrSearchInactive):
		return huma.Error409Conflict("search is not active")
	default:
		applog.LogError(ctx, "gallery operation failed", err)
		return huma.Error500InternalServerError("internal server error")
	}
}

func toHTTPProfiles(profiles []galleryapp.Profile) []Profile {
	out := make([]Profile, len(profiles))
	for i, p := range profiles {
		out[i] = Profile{
			Index:     i,
			Name:      galleryapp.FullName(p),
			Email:     p.Email,
			City:      p.Location.City,
			State:     p.Location.State,
			Phone:     galleryapp.FormatPhone(p.Cell),
			Address:   galleryapp.FormatAddress(p),
			Birthday:  galleryapp.Birthday(p),
			Thumbnail: p.Picture.Thumbnail,
			Picture:   p.Picture.Large,
		}
	}
	return out
}

func toHTTPSession(v galleryapp.View) Session {
	cards := make([]Card, len(v.Cards))
	for i, c := range v.Cards {
		cards[i] = Card(c)
	}
	s := Session{
		ID:        v.ID,
		CreatedAt: timeutil.NewTime(v.CreatedAt),
		Query:     v.Query,
		Cards:     cards,
		Count:     len(cards),
		NotFound:  v.NotFound,
	}
	if v.Modal != nil {
		s.Modal = &Modal{
			Index:    v.Modal.Index,
			Total:    v.Modal.Total,
			Name:     v.Modal.Name,
			Email:    v.Modal.Email,
			City:     v.Modal.City,
			Phone:    v.Modal.Phone,
			Address:  v.Modal.Address,
			Birthday: v.Modal.Birthday,
			Picture:  v.Modal.Picture,
			HasPrev:  v.Modal.HasPrev,
			HasNext:  v.Modal.HasNext,
		}
	}
	return s
}

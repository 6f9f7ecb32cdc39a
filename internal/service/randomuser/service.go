package randomuser

import (
	"context"
	"errors"
	"fmt"

	"github.com/janisto/profile-gallery/internal/gallery"
)

// Service errors
var (
	ErrUnavailable = errors.New("randomuser unavailable")
	ErrUpstream    = errors.New("randomuser upstream error")
	ErrMalformed   = errors.New("randomuser malformed response")
)

// UpstreamErrorKind classifies failed profile fetches.
type UpstreamErrorKind string

const (
	UpstreamErrorKindUnavailable UpstreamErrorKind = "unavailable"
	UpstreamErrorKindUpstream    UpstreamErrorKind = "upstream"
	UpstreamErrorKindMalformed   UpstreamErrorKind = "malformed"
)

// UpstreamError carries the fetch failure kind and HTTP status, when there was one.
type UpstreamError struct {
	Kind   UpstreamErrorKind
	Status int
	cause  error
	detail error
}

func (e *UpstreamError) Error() string {
	if e == nil {
		return "randomuser upstream error"
	}
	msg := fmt.Sprintf("randomuser fetch failed (kind=%s status=%d)", e.Kind, e.Status)
	if e.detail != nil {
		msg += ": " + e.detail.Error()
	}
	return msg
}

// Unwrap enables errors.Is/As against the sentinel and the underlying cause.
func (e *UpstreamError) Unwrap() []error {
	if e == nil {
		return nil
	}
	errs := []error{e.cause}
	if e.detail != nil {
		errs = append(errs, e.detail)
	}
	return errs
}

func newUpstreamError(kind UpstreamErrorKind, status int, cause, detail error) *UpstreamError {
	return &UpstreamError{Kind: kind, Status: status, cause: cause, detail: detail}
}

// Service loads one batch of profiles.
type Service interface {
	LoadProfiles(ctx context.Context) ([]gallery.Profile, error)
}

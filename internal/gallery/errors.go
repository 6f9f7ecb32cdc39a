package gallery

import "errors"

// Gallery errors
var (
	ErrSessionNotFound = errors.New("gallery session not found")
	ErrCardNotFound    = errors.New("card not found")
	ErrModalClosed     = errors.New("modal is not open")
	ErrSearchInactive  = errors.New("search is not active")
)

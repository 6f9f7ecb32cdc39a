package pagination

import (
	"encoding/base64"
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidCursor indicates the cursor could not be decoded.
var ErrInvalidCursor = errors.New("invalid cursor format")

// Cursor is a position in a fixed, ordered list.
type Cursor struct {
	Type   string // resource type identifier
	Offset int    // index of the first item on the page
}

// Encode returns a URL-safe opaque Base64 representation.
func (c Cursor) Encode() string {
	return base64.RawURLEncoding.EncodeToString(
		[]byte(c.Type + ":" + strconv.Itoa(c.Offset)),
	)
}

// DecodeCursor parses a cursor string. The empty string is the first page.
func DecodeCursor(s string) (Cursor, error) {
	if s == "" {
		return Cursor{}, nil
	}
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return Cursor{}, ErrInvalidCursor
	}
	kind, offset, ok := strings.Cut(string(b), ":")
	if !ok {
		return Cursor{}, ErrInvalidCursor
	}
	n, err := strconv.Atoi(offset)
	if err != nil || n < 0 {
		return Cursor{}, ErrInvalidCursor
	}
	return Cursor{Type: kind, Offset: n}, nil
}

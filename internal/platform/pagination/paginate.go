package pagination

import (
	"net/url"
	"strconv"
)

// Result holds one page and its navigation links.
type Result[T any] struct {
	Items      []T
	Offset     int
	Total      int
	LinkHeader string
	NextCursor string
	PrevCursor string
}

// Paginate slices items at cursor.Offset. An offset past the end yields an
// empty page with a prev link back into range.
func Paginate[T any](
	items []T,
	cursor Cursor,
	limit int,
	cursorType string,
	baseURL string,
	query url.Values,
) Result[T] {
	total := len(items)
	start := min(cursor.Offset, total)
	end := min(start+limit, total)

	var next, prev string
	if end < total {
		next = Cursor{Type: cursorType, Offset: end}.Encode()
	}
	if start > 0 {
		prev = Cursor{Type: cursorType, Offset: max(start-limit, 0)}.Encode()
	}

	q := cloneValues(query)
	q.Set("limit", strconv.Itoa(limit))

	return Result[T]{
		Items:      items[start:end],
		Offset:     start,
		Total:      total,
		LinkHeader: BuildLinkHeader(baseURL, q, next, prev),
		NextCursor: next,
		PrevCursor: prev,
	}
}

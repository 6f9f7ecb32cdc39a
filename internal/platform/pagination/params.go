package pagination

// MaxLimit caps a page at one full profile batch.
const MaxLimit = 12

// Params embeds into Huma input structs for pagination.
type Params struct {
	Cursor string `query:"cursor" doc:"Opaque pagination cursor from a previous Link header"`
	Limit  int    `query:"limit"  doc:"Maximum items per page" default:"12" minimum:"1" maximum:"12"`
}

// DefaultLimit returns the limit, clamped to 1..MaxLimit with zero meaning MaxLimit.
func (p Params) DefaultLimit() int {
	if p.Limit <= 0 || p.Limit > MaxLimit {
		return MaxLimit
	}
	return p.Limit
}

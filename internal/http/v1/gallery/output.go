package gallery

// ProfilesListData is the response body for listing stored profiles.
type ProfilesListData struct {
	Profiles []Profile `json:"profiles" doc:"Fetched profiles in response order"`
	Count    int       `json:"count"    doc:"Number of profiles on this page" example:"12"`
	Total    int       `json:"total"    doc:"Number of stored profiles"      example:"12"`
}

// ProfilesListOutput is the response wrapper for GET /profiles.
type ProfilesListOutput struct {
	Link string `header:"Link" doc:"RFC 8288 pagination links"`
	Body ProfilesListData
}

// SessionCreateOutput for POST /sessions (201 Created)
type SessionCreateOutput struct {
	Location string `header:"Location" doc:"URL of the created session"`
	Body     Session
}

// SessionOutput is the response wrapper for every session event.
type SessionOutput struct {
	Body Session
}

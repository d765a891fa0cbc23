package model

import "time"

// Keyword is a free-form search term, optionally scoped to an artist.
type Keyword struct {
	ID        int64     `json:"id"`
	Keyword   string    `json:"keyword"`
	Active    bool      `json:"active"`
	ArtistID  *int64    `json:"artist_id"`
	AutoFlag  bool      `json:"auto_flag"`
	Priority  string    `json:"priority"`
	CreatedAt time.Time `json:"created_at"`
}

// KeywordRequest is the create body for keywords.
type KeywordRequest struct {
	Keyword  string `json:"keyword"`
	ArtistID *int64 `json:"artist_id,omitempty"`
	AutoFlag bool   `json:"auto_flag,omitempty"`
	Priority string `json:"priority,omitempty"`
}

// KeywordUpdateRequest carries partial updates for a keyword.
type KeywordUpdateRequest struct {
	Active   *bool   `json:"active,omitempty"`
	AutoFlag *bool   `json:"auto_flag,omitempty"`
	Priority *string `json:"priority,omitempty"`
}

// KeywordImportRow is one parsed row of a bulk-import CSV
// (keyword,artist_name,auto_flag,priority).
type KeywordImportRow struct {
	Keyword    string
	ArtistName string
	AutoFlag   bool
	Priority   string
}

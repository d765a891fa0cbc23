package model

import "time"

// Song is a song/artist pair used for precise YouTube searches.
type Song struct {
	ID         int64     `json:"id"`
	SongName   string    `json:"song_name"`
	ArtistName string    `json:"artist_name"`
	Active     bool      `json:"active"`
	ArtistID   *int64    `json:"artist_id"`
	AutoFlag   bool      `json:"auto_flag"`
	Priority   string    `json:"priority"`
	DurationMS *int64    `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

// SongRequest is the create body for songs.
type SongRequest struct {
	SongName   string `json:"song_name"`
	ArtistName string `json:"artist_name"`
	ArtistID   *int64 `json:"artist_id,omitempty"`
	AutoFlag   bool   `json:"auto_flag,omitempty"`
	Priority   string `json:"priority,omitempty"`
	DurationMS *int64 `json:"duration_ms,omitempty"`
}

// SongUpdateRequest carries partial updates for a song.
type SongUpdateRequest struct {
	Active   *bool   `json:"active,omitempty"`
	AutoFlag *bool   `json:"auto_flag,omitempty"`
	Priority *string `json:"priority,omitempty"`
}

// BulkResult reports a bulk insert outcome.
type BulkResult struct {
	Added   int      `json:"added"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}

package model

import "time"

// Auto-update frequencies and catalog sources.
const (
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"

	SourceSpotify     = "spotify"
	SourceMusicBrainz = "musicbrainz"
)

var ValidFrequencies = map[string]bool{
	FrequencyDaily:   true,
	FrequencyWeekly:  true,
	FrequencyMonthly: true,
}

var ValidSources = map[string]bool{
	SourceSpotify:     true,
	SourceMusicBrainz: true,
}

// AutoUpdateConfig is the per-artist catalog refresh schedule.
type AutoUpdateConfig struct {
	ID         int64      `json:"id"`
	ArtistID   int64      `json:"artist_id"`
	ArtistName string     `json:"artist_name,omitempty"`
	Enabled    bool       `json:"enabled"`
	Frequency  string     `json:"frequency"`
	Source     string     `json:"source"`
	LastCheck  *time.Time `json:"last_check"`
	LastUpdate *time.Time `json:"last_update"`
	SongsCount int        `json:"songs_count"`

	// Derived for status responses.
	NextCheck   *time.Time `json:"next_check"`
	NeedsUpdate bool       `json:"needs_update"`
}

// AutoUpdateEnableRequest is the body for POST /api/auto-update/enable/:id.
type AutoUpdateEnableRequest struct {
	Frequency string `json:"frequency,omitempty"`
	Source    string `json:"source,omitempty"`
}

// AutoUpdateStatus summarizes the auto-update system.
type AutoUpdateStatus struct {
	TotalArtists int                `json:"total_artists"`
	Enabled      int                `json:"enabled"`
	Disabled     int                `json:"disabled"`
	NeedsUpdate  int                `json:"needs_update"`
	Artists      []AutoUpdateConfig `json:"artists"`
}

// AutoUpdateResult reports one artist refresh run.
type AutoUpdateResult struct {
	Success    bool   `json:"success"`
	Artist     string `json:"artist,omitempty"`
	Source     string `json:"source,omitempty"`
	NewSongs   int    `json:"new_songs"`
	TotalSongs int    `json:"total_songs"`
	Error      string `json:"error,omitempty"`
}

// AutoUpdateRunAllResponse aggregates a run-all invocation.
type AutoUpdateRunAllResponse struct {
	Success             bool               `json:"success"`
	Updates             []AutoUpdateResult `json:"updates"`
	TotalArtistsUpdated int                `json:"total_artists_updated"`
	TotalNewSongs       int                `json:"total_new_songs"`
}

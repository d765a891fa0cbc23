package client

import "time"

// Artist is a monitored rights holder.
type Artist struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Email         *string   `json:"email"`
	ContactPerson *string   `json:"contact_person"`
	Notes         *string   `json:"notes"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
}

// ArtistRequest is the create/update body for artists.
type ArtistRequest struct {
	Name          string  `json:"name"`
	Email         *string `json:"email,omitempty"`
	ContactPerson *string `json:"contact_person,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	Active        *bool   `json:"active,omitempty"`
}

// Song is a tracked song/artist pair.
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

// Keyword is a free-form search term.
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

// Video is a matched YouTube video under review.
type Video struct {
	ID             int64     `json:"id"`
	VideoID        string    `json:"video_id"`
	Title          string    `json:"title"`
	ChannelName    string    `json:"channel_name"`
	ChannelID      string    `json:"channel_id"`
	PublishDate    string    `json:"publish_date"`
	ThumbnailURL   string    `json:"thumbnail_url"`
	VideoURL       string    `json:"video_url"`
	MatchedKeyword string    `json:"matched_keyword"`
	Status         string    `json:"status"`
	Priority       string    `json:"priority"`
	ArtistID       *int64    `json:"artist_id"`
	AutoFlagged    bool      `json:"auto_flagged"`
	AIRiskScore    int       `json:"ai_risk_score"`
	AIRiskLevel    *string   `json:"ai_risk_level"`
	AIReason       *string   `json:"ai_reason"`
	CreatedAt      time.Time `json:"created_at"`
}

// VideoUpdateRequest is the body for PUT /api/videos/:id.
type VideoUpdateRequest struct {
	Status   string `json:"status,omitempty"`
	Priority string `json:"priority,omitempty"`
}

// RuleConditions is the condition set evaluated against matched videos.
type RuleConditions struct {
	TitleContains       string `json:"title_contains,omitempty"`
	ChannelNameContains string `json:"channel_name_contains,omitempty"`
	KeywordExactMatch   string `json:"keyword_exact_match,omitempty"`
}

// Empty reports whether no condition is set.
func (c RuleConditions) Empty() bool {
	return c.TitleContains == "" && c.ChannelNameContains == "" && c.KeywordExactMatch == ""
}

// AutoFlagRule flags or escalates incoming videos when its conditions match.
type AutoFlagRule struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Description *string        `json:"description"`
	Conditions  RuleConditions `json:"conditions"`
	Action      string         `json:"action"`
	Active      bool           `json:"active"`
	CreatedAt   time.Time      `json:"created_at"`
}

// RuleRequest is the create body for auto-flag rules.
type RuleRequest struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Conditions  RuleConditions `json:"conditions"`
	Action      string         `json:"action,omitempty"`
}

// Stats is the dashboard aggregate.
type Stats struct {
	TotalVideos      int     `json:"total_videos"`
	Pending          int     `json:"pending"`
	Reviewed         int     `json:"reviewed"`
	Flagged          int     `json:"flagged"`
	PriorityLow      int     `json:"priority_low"`
	PriorityMedium   int     `json:"priority_medium"`
	PriorityHigh     int     `json:"priority_high"`
	PriorityCritical int     `json:"priority_critical"`
	AutoFlagged      int     `json:"auto_flagged"`
	TotalArtists     int     `json:"total_artists"`
	LastSearch       *string `json:"last_search"`

	AutoUpdateEnabled     int `json:"auto_update_enabled"`
	AutoUpdateDisabled    int `json:"auto_update_disabled"`
	AutoUpdateNeedsUpdate int `json:"auto_update_needs_update"`
}

// SearchLog is one executed search term record.
type SearchLog struct {
	ID           int64     `json:"id"`
	Keyword      string    `json:"keyword"`
	ResultsCount int       `json:"results_count"`
	Timestamp    time.Time `json:"timestamp"`
	Success      bool      `json:"success"`
	ErrorMessage *string   `json:"error_message"`
}

// TermResult is the per-term portion of a search response.
type TermResult struct {
	Keyword    string `json:"keyword,omitempty"`
	SongName   string `json:"song_name,omitempty"`
	ArtistName string `json:"artist_name,omitempty"`
	Found      int    `json:"found"`
	New        int    `json:"new"`
	Error      string `json:"error,omitempty"`
}

// SearchResponse aggregates a search run.
type SearchResponse struct {
	TotalFound int          `json:"total_found"`
	TotalNew   int          `json:"total_new"`
	Keywords   []TermResult `json:"keywords,omitempty"`
	Songs      []TermResult `json:"songs,omitempty"`
}

// Analysis is the detector verdict for one video.
type Analysis struct {
	RiskScore  int      `json:"risk_score"`
	RiskLevel  string   `json:"risk_level"`
	ShouldFlag bool     `json:"should_flag"`
	Indicators []string `json:"indicators"`
	Reason     string   `json:"reason,omitempty"`
}

// ScheduleConfig is the global auto-search schedule.
type ScheduleConfig struct {
	Enabled       bool      `json:"enabled"`
	IntervalHours int       `json:"interval_hours"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// AutoUpdateConfig is one artist's catalog refresh schedule.
type AutoUpdateConfig struct {
	ID          int64      `json:"id"`
	ArtistID    int64      `json:"artist_id"`
	ArtistName  string     `json:"artist_name,omitempty"`
	Enabled     bool       `json:"enabled"`
	Frequency   string     `json:"frequency"`
	Source      string     `json:"source"`
	LastCheck   *time.Time `json:"last_check"`
	LastUpdate  *time.Time `json:"last_update"`
	SongsCount  int        `json:"songs_count"`
	NextCheck   *time.Time `json:"next_check"`
	NeedsUpdate bool       `json:"needs_update"`
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

// CatalogArtist describes an artist as returned by a catalog source.
type CatalogArtist struct {
	Name       string   `json:"name"`
	SpotifyURL string   `json:"spotify_url,omitempty"`
	Followers  int      `json:"followers,omitempty"`
	Genres     []string `json:"genres,omitempty"`
	ImageURL   string   `json:"image_url,omitempty"`
}

// CatalogSong is one track from a catalog source.
type CatalogSong struct {
	Name       string `json:"name"`
	Album      string `json:"album,omitempty"`
	DurationMS *int64 `json:"duration_ms,omitempty"`
}

// PreviewResponse is the catalog preview served before an import.
type PreviewResponse struct {
	Success            bool          `json:"success"`
	ArtistInfo         CatalogArtist `json:"artist_info"`
	MainSongs          []CatalogSong `json:"main_songs"`
	FeaturedSongs      []CatalogSong `json:"featured_songs"`
	TotalMainSongs     int           `json:"total_main_songs"`
	TotalFeaturedSongs int           `json:"total_featured_songs"`
	Albums             int           `json:"albums"`
}

// ImportResponse reports a confirmed catalog import.
type ImportResponse struct {
	Success            bool   `json:"success"`
	ArtistID           int64  `json:"artist_id"`
	ArtistName         string `json:"artist_name"`
	SongsAdded         int    `json:"songs_added"`
	SongsSkipped       int    `json:"songs_skipped"`
	TotalSongsSelected int    `json:"total_songs_selected"`
	Message            string `json:"message"`
}

// Statuses and priorities as served by the API.
const (
	StatusPending  = "Pending"
	StatusReviewed = "Reviewed"
	StatusFlagged  = "Flagged for Takedown"

	PriorityLow      = "Low"
	PriorityMedium   = "Medium"
	PriorityHigh     = "High"
	PriorityCritical = "Critical"
)

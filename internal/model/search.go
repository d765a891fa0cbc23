package model

import "time"

// SearchLog records one executed search term.
type SearchLog struct {
	ID           int64     `json:"id"`
	Keyword      string    `json:"keyword"`
	ResultsCount int       `json:"results_count"`
	Timestamp    time.Time `json:"timestamp"`
	Success      bool      `json:"success"`
	ErrorMessage *string   `json:"error_message"`
}

// KeywordSearchRequest is the body for POST /api/search. Empty keywords
// means "search every active keyword".
type KeywordSearchRequest struct {
	Keywords        []string `json:"keywords,omitempty"`
	ExcludeKeywords []string `json:"exclude_keywords,omitempty"`
}

// SongSearchRequest is the body for POST /api/search/songs. Empty songs
// means "search every active song".
type SongSearchRequest struct {
	Songs []SongSearchTerm `json:"songs,omitempty"`
}

// SongSearchTerm identifies one song search.
type SongSearchTerm struct {
	SongName   string `json:"song_name"`
	ArtistName string `json:"artist_name"`
	DurationMS *int64 `json:"duration_ms,omitempty"`
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

// FoundVideo is a raw search hit before persistence and flagging.
type FoundVideo struct {
	VideoID      string
	Title        string
	ChannelName  string
	ChannelID    string
	PublishDate  string
	ThumbnailURL string
	Description  string
	DurationSec  int
}

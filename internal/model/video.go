package model

import "time"

// Video statuses as stored and served. The literal strings are part of the
// API contract, including the space-separated takedown status.
const (
	StatusPending  = "Pending"
	StatusReviewed = "Reviewed"
	StatusFlagged  = "Flagged for Takedown"
)

// Video priorities, ordered by severity.
const (
	PriorityLow      = "Low"
	PriorityMedium   = "Medium"
	PriorityHigh     = "High"
	PriorityCritical = "Critical"
)

// PriorityRank orders priorities for max-priority decisions and list sorting.
var PriorityRank = map[string]int{
	PriorityCritical: 4,
	PriorityHigh:     3,
	PriorityMedium:   2,
	PriorityLow:      1,
}

// ValidStatuses and ValidPriorities gate update requests.
var ValidStatuses = map[string]bool{
	StatusPending:  true,
	StatusReviewed: true,
	StatusFlagged:  true,
}

var ValidPriorities = map[string]bool{
	PriorityLow:      true,
	PriorityMedium:   true,
	PriorityHigh:     true,
	PriorityCritical: true,
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

// VideoFilters narrows video list queries. Zero values mean "no filter";
// AutoFlagged is tri-state so nil means unfiltered.
type VideoFilters struct {
	Keyword     string
	Status      string
	Priority    string
	ArtistID    int64
	AutoFlagged *bool
	DateFrom    string
	DateTo      string
}

// VideoUpdateRequest is the body for PUT /api/videos/:id.
type VideoUpdateRequest struct {
	Status   string `json:"status,omitempty"`
	Priority string `json:"priority,omitempty"`
}

// BatchUpdateRequest is the body for POST /api/videos/batch-update.
type BatchUpdateRequest struct {
	VideoIDs []int64 `json:"video_ids"`
	Status   string  `json:"status,omitempty"`
	Priority string  `json:"priority,omitempty"`
}

// BatchDeleteRequest is the body for POST /api/videos/batch-delete.
type BatchDeleteRequest struct {
	VideoIDs []int64 `json:"video_ids"`
}

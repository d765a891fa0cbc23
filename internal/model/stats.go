package model

// Stats is the aggregate served by GET /api/stats, recomputed per fetch.
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

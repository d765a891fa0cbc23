package model

import "time"

// Interval bounds for the global auto-search schedule.
const (
	MinIntervalHours = 1
	MaxIntervalHours = 168
)

// ScheduleConfig is the single global auto-search schedule.
type ScheduleConfig struct {
	Enabled       bool      `json:"enabled"`
	IntervalHours int       `json:"interval_hours"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ScheduleRequest is the body for POST /api/schedule.
type ScheduleRequest struct {
	Enabled       bool `json:"enabled"`
	IntervalHours int  `json:"interval_hours"`
}

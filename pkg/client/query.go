package client

import (
	"net/url"
	"strconv"
)

// StatFilter is the dashboard stat-card filter. A set stat overrides any
// status in Filters; clearing it restores the dropdown status.
type StatFilter int

const (
	StatNone StatFilter = iota
	StatPending
	StatReviewed
	StatFlagged
)

// Status returns the review status a stat card stands for.
func (s StatFilter) Status() string {
	switch s {
	case StatPending:
		return StatusPending
	case StatReviewed:
		return StatusReviewed
	case StatFlagged:
		return StatusFlagged
	default:
		return ""
	}
}

// Toggle clears the stat when it is already active, otherwise selects it.
func (s StatFilter) Toggle(clicked StatFilter) StatFilter {
	if s == clicked {
		return StatNone
	}
	return clicked
}

// Filters narrows video list and export queries. Zero values are omitted;
// AutoFlagged is tri-state so nil means unfiltered.
type Filters struct {
	Keyword     string
	Status      string
	Priority    string
	ArtistID    int64
	AutoFlagged *bool
	DateFrom    string
	DateTo      string
}

// BuildQuery renders the filters as query parameters. An active stat filter
// takes precedence over the Status field.
func BuildQuery(f Filters, stat StatFilter) url.Values {
	q := url.Values{}

	if f.Keyword != "" {
		q.Set("keyword", f.Keyword)
	}

	status := f.Status
	if stat != StatNone {
		status = stat.Status()
	}
	if status != "" {
		q.Set("status", status)
	}

	if f.Priority != "" {
		q.Set("priority", f.Priority)
	}
	if f.ArtistID != 0 {
		q.Set("artist_id", strconv.FormatInt(f.ArtistID, 10))
	}
	if f.AutoFlagged != nil {
		q.Set("auto_flagged", strconv.FormatBool(*f.AutoFlagged))
	}
	if f.DateFrom != "" {
		q.Set("date_from", f.DateFrom)
	}
	if f.DateTo != "" {
		q.Set("date_to", f.DateTo)
	}

	return q
}

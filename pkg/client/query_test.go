package client

import (
	"testing"
)

func TestBuildQueryOmitsEmptyFields(t *testing.T) {
	q := BuildQuery(Filters{}, StatNone)
	if len(q) != 0 {
		t.Fatalf("empty filters should produce no params, got %v", q)
	}

	q = BuildQuery(Filters{Keyword: "leak", Priority: "High"}, StatNone)
	if got := q.Get("keyword"); got != "leak" {
		t.Errorf("keyword = %q", got)
	}
	if got := q.Get("priority"); got != "High" {
		t.Errorf("priority = %q", got)
	}
	if q.Has("status") || q.Has("artist_id") || q.Has("auto_flagged") {
		t.Errorf("unset fields leaked into query: %v", q)
	}
}

func TestBuildQueryAutoFlaggedTriState(t *testing.T) {
	if q := BuildQuery(Filters{}, StatNone); q.Has("auto_flagged") {
		t.Error("nil AutoFlagged should be omitted")
	}

	yes := true
	if got := BuildQuery(Filters{AutoFlagged: &yes}, StatNone).Get("auto_flagged"); got != "true" {
		t.Errorf("auto_flagged = %q, want true", got)
	}

	no := false
	if got := BuildQuery(Filters{AutoFlagged: &no}, StatNone).Get("auto_flagged"); got != "false" {
		t.Errorf("auto_flagged = %q, want false", got)
	}
}

func TestBuildQueryStatPrecedence(t *testing.T) {
	tests := []struct {
		name   string
		status string
		stat   StatFilter
		want   string
	}{
		{"stat overrides dropdown", "Reviewed", StatPending, "Pending"},
		{"flagged maps to full status", "", StatFlagged, "Flagged for Takedown"},
		{"reviewed card", "", StatReviewed, "Reviewed"},
		{"no stat falls back to dropdown", "Reviewed", StatNone, "Reviewed"},
		{"neither set omits status", "", StatNone, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := BuildQuery(Filters{Status: tt.status}, tt.stat)
			if got := q.Get("status"); got != tt.want {
				t.Errorf("status = %q, want %q", got, tt.want)
			}
			if tt.want == "" && q.Has("status") {
				t.Error("status should be omitted entirely")
			}
		})
	}
}

func TestStatFilterToggle(t *testing.T) {
	active := StatPending
	if got := active.Toggle(StatPending); got != StatNone {
		t.Errorf("toggling the active card should clear it, got %v", got)
	}
	if got := active.Toggle(StatFlagged); got != StatFlagged {
		t.Errorf("toggling another card should select it, got %v", got)
	}
	if got := StatNone.Toggle(StatReviewed); got != StatReviewed {
		t.Errorf("toggling from clear should select, got %v", got)
	}
}

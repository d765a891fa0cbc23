package service

import (
	"testing"

	"github.com/jzynonet/warner-music-guardian/internal/model"
)

func TestParseISODuration(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"PT3M45S", 225},
		{"PT1H2M3S", 3723},
		{"PT45S", 45},
		{"PT2H", 7200},
		{"PT0S", 0},
		{"garbage", 0},
	}
	for _, tt := range tests {
		if got := parseISODuration(tt.in); got != tt.want {
			t.Errorf("parseISODuration(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestIsFeaturedNotMain(t *testing.T) {
	tests := []struct {
		name   string
		title  string
		artist string
		want   bool
	}{
		{"artist leads the title", "Nkosazana Daughter - Song Name", "Nkosazana Daughter", false},
		{"song dash artist format", "Song Name - Nkosazana Daughter", "Nkosazana Daughter", false},
		{"explicit feat before artist", "Drake feat. Nkosazana Daughter", "Nkosazana Daughter", true},
		{"ft abbreviation", "Someone ft. Nkosazana Daughter", "Nkosazana Daughter", true},
		{"feat in parentheses", "Big Hit (feat. Nkosazana Daughter)", "Nkosazana Daughter", true},
		{"artist absent from title", "Some Other Song", "Nkosazana Daughter", false},
		{"artist first with guest", "Nkosazana Daughter feat. Drake - Duet", "Nkosazana Daughter", false},
		{"second in x collab", "Someone x Nkosazana Daughter", "Nkosazana Daughter", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isFeaturedNotMain(tt.title, tt.artist); got != tt.want {
				t.Errorf("isFeaturedNotMain(%q, %q) = %v, want %v", tt.title, tt.artist, got, tt.want)
			}
		})
	}
}

func TestIsOfficialChannel(t *testing.T) {
	tests := []struct {
		channel string
		artist  string
		want    bool
	}{
		{"dua lipa", "dua lipa", true},
		{"dualipavevo", "dua lipa", true},
		{"official dua channel", "dua lipa", true},
		{"random uploads", "dua lipa", false},
	}
	for _, tt := range tests {
		if got := isOfficialChannel(tt.channel, tt.artist); got != tt.want {
			t.Errorf("isOfficialChannel(%q, %q) = %v, want %v", tt.channel, tt.artist, got, tt.want)
		}
	}
}

func TestMatchScore(t *testing.T) {
	// Exact duration, whole-word song and artist, artist leading the title.
	got := matchScore("Levitating Dua Lipa", "Levitating", "Dua Lipa", 203, 203)
	if got != 100 {
		t.Errorf("strong match score = %d, want 100", got)
	}

	// No catalog duration: word-bounded song and artist only.
	got = matchScore("Levitating - Dua Lipa", "Levitating", "Dua Lipa", 203, 0)
	if got != 65 {
		t.Errorf("no-duration score = %d, want 65", got)
	}

	// Unwanted term takes the candidate out.
	got = matchScore("Levitating - Dua Lipa (Cover)", "Levitating", "Dua Lipa", 203, 0)
	if got >= 50 {
		t.Errorf("cover score = %d, want below threshold", got)
	}

	// Official marker penalized.
	withMarker := matchScore("Levitating - Dua Lipa (Official Video)", "Levitating", "Dua Lipa", 203, 203)
	without := matchScore("Levitating - Dua Lipa", "Levitating", "Dua Lipa", 203, 203)
	if withMarker >= without {
		t.Errorf("official marker not penalized: %d >= %d", withMarker, without)
	}
}

func TestPriorityForScore(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{95, model.PriorityCritical},
		{90, model.PriorityCritical},
		{80, model.PriorityHigh},
		{60, model.PriorityMedium},
		{40, model.PriorityLow},
	}
	for _, tt := range tests {
		if got := priorityForScore(tt.score); got != tt.want {
			t.Errorf("priorityForScore(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

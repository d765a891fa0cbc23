package middleware

import (
	"strings"
	"testing"
)

func TestValidateStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"Pending", "Pending", false},
		{"Reviewed", "Reviewed", false},
		{"Flagged for Takedown", "Flagged for Takedown", false},
		{"", "", false},
		{"pending", "", true},
		{"Deleted", "", true},
	}
	for _, tt := range tests {
		got, errMsg := ValidateStatus(tt.in)
		if (errMsg != "") != tt.wantErr {
			t.Errorf("ValidateStatus(%q) errMsg = %q, wantErr %v", tt.in, errMsg, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ValidateStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidatePriority(t *testing.T) {
	for _, valid := range []string{"Low", "Medium", "High", "Critical", ""} {
		if _, errMsg := ValidatePriority(valid); errMsg != "" {
			t.Errorf("ValidatePriority(%q) unexpected error %q", valid, errMsg)
		}
	}
	for _, invalid := range []string{"low", "URGENT", "0"} {
		if _, errMsg := ValidatePriority(invalid); errMsg == "" {
			t.Errorf("ValidatePriority(%q) expected error", invalid)
		}
	}
}

func TestValidateFrequencyAndSource(t *testing.T) {
	if _, errMsg := ValidateFrequency("weekly"); errMsg != "" {
		t.Errorf("weekly should be valid, got %q", errMsg)
	}
	if _, errMsg := ValidateFrequency("hourly"); errMsg == "" {
		t.Error("hourly should be invalid")
	}
	if _, errMsg := ValidateSource("musicbrainz"); errMsg != "" {
		t.Errorf("musicbrainz should be valid, got %q", errMsg)
	}
	if _, errMsg := ValidateSource("itunes"); errMsg == "" {
		t.Error("itunes should be invalid")
	}
}

func TestValidateVideoID(t *testing.T) {
	if got, errMsg := ValidateVideoID(" dQw4w9WgXcQ "); errMsg != "" || got != "dQw4w9WgXcQ" {
		t.Errorf("ValidateVideoID trimmed = %q, errMsg = %q", got, errMsg)
	}
	for _, invalid := range []string{"", "has space", "way-too-long-for-a-video-id", "semi;colon"} {
		if _, errMsg := ValidateVideoID(invalid); errMsg == "" {
			t.Errorf("ValidateVideoID(%q) expected error", invalid)
		}
	}
}

func TestValidateName(t *testing.T) {
	if got, errMsg := ValidateName("  Dua Lipa  ", "name"); errMsg != "" || got != "Dua Lipa" {
		t.Errorf("ValidateName = %q, errMsg = %q", got, errMsg)
	}
	if _, errMsg := ValidateName("", "name"); errMsg == "" {
		t.Error("empty name should error")
	}
	if _, errMsg := ValidateName(strings.Repeat("x", MaxNameLen+1), "name"); errMsg == "" {
		t.Error("oversized name should error")
	}
}

package service

import "testing"

func TestExtractArtistID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://open.spotify.com/artist/06HL4z0CvFAxyc27GXpf02", "06HL4z0CvFAxyc27GXpf02"},
		{"https://open.spotify.com/artist/06HL4z0CvFAxyc27GXpf02?si=abc123", "06HL4z0CvFAxyc27GXpf02"},
		{"spotify:artist:06HL4z0CvFAxyc27GXpf02", "06HL4z0CvFAxyc27GXpf02"},
		{"06HL4z0CvFAxyc27GXpf02", "06HL4z0CvFAxyc27GXpf02"},
		{"https://open.spotify.com/track/abc", ""},
		{"not a url", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := extractArtistID(tt.in); got != tt.want {
			t.Errorf("extractArtistID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

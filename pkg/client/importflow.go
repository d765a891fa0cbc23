package client

import (
	"context"
	"errors"
	"net/http"
)

// ErrNoURL is returned before any request when a preview has no Spotify URL.
var ErrNoURL = errors.New("spotify url is required")

// ErrNothingSelected is returned before any request when an import has no
// songs chosen.
var ErrNothingSelected = errors.New("no songs selected")

// PreviewSpotify fetches an artist's catalog for selection. Nothing is
// persisted until the import is confirmed.
func (c *Client) PreviewSpotify(ctx context.Context, spotifyURL string) (*PreviewResponse, error) {
	if spotifyURL == "" {
		return nil, ErrNoURL
	}
	var preview PreviewResponse
	err := c.do(ctx, http.MethodPost, "/api/songs/preview-from-spotify", nil,
		map[string]string{"spotify_url": spotifyURL}, &preview)
	if err != nil {
		return nil, err
	}
	return &preview, nil
}

// Selection tracks which previewed songs the operator has chosen. Identity is
// the song name string, so a re-fetched or reordered preview keeps the same
// songs selected.
type Selection struct {
	preview  *PreviewResponse
	selected map[string]bool
}

// NewSelection starts with every main song selected and no featured songs.
func NewSelection(preview *PreviewResponse) *Selection {
	s := &Selection{
		preview:  preview,
		selected: make(map[string]bool, len(preview.MainSongs)),
	}
	for _, song := range preview.MainSongs {
		s.selected[song.Name] = true
	}
	return s
}

// Rebuild swaps in a new preview, keeping the selection for songs that still
// exist by name.
func (s *Selection) Rebuild(preview *PreviewResponse) {
	kept := make(map[string]bool)
	for _, song := range preview.MainSongs {
		if s.selected[song.Name] {
			kept[song.Name] = true
		}
	}
	for _, song := range preview.FeaturedSongs {
		if s.selected[song.Name] {
			kept[song.Name] = true
		}
	}
	s.preview = preview
	s.selected = kept
}

// Toggle flips one song's selection.
func (s *Selection) Toggle(name string) {
	if s.selected[name] {
		delete(s.selected, name)
	} else {
		s.selected[name] = true
	}
}

// SetAll selects or deselects a list of songs at once.
func (s *Selection) SetAll(songs []CatalogSong, selected bool) {
	for _, song := range songs {
		if selected {
			s.selected[song.Name] = true
		} else {
			delete(s.selected, song.Name)
		}
	}
}

// IsSelected reports whether a song is chosen.
func (s *Selection) IsSelected(name string) bool {
	return s.selected[name]
}

// Count returns how many songs are chosen.
func (s *Selection) Count() int {
	return len(s.selected)
}

// Chosen returns the selected songs in preview order, main songs first.
func (s *Selection) Chosen() []CatalogSong {
	var chosen []CatalogSong
	for _, song := range s.preview.MainSongs {
		if s.selected[song.Name] {
			chosen = append(chosen, song)
		}
	}
	for _, song := range s.preview.FeaturedSongs {
		if s.selected[song.Name] {
			chosen = append(chosen, song)
		}
	}
	return chosen
}

// ImportSelection persists the chosen songs under the previewed artist.
func (c *Client) ImportSelection(ctx context.Context, s *Selection, autoFlag bool, priority string) (*ImportResponse, error) {
	chosen := s.Chosen()
	if len(chosen) == 0 {
		return nil, ErrNothingSelected
	}

	body := map[string]any{
		"artist_info":    s.preview.ArtistInfo,
		"selected_songs": chosen,
		"auto_flag":      autoFlag,
	}
	if priority != "" {
		body["priority"] = priority
	}

	var resp ImportResponse
	if err := c.do(ctx, http.MethodPost, "/api/songs/import-from-spotify", nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

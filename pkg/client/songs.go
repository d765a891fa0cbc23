package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Songs lists tracked songs, optionally scoped to one artist.
func (c *Client) Songs(ctx context.Context, artistID int64) ([]Song, error) {
	var q url.Values
	if artistID != 0 {
		q = url.Values{"artist_id": {strconv.FormatInt(artistID, 10)}}
	}
	var songs []Song
	err := c.do(ctx, http.MethodGet, "/api/songs", q, nil, &songs)
	return songs, err
}

// CreateSong adds one tracked song.
func (c *Client) CreateSong(ctx context.Context, req SongRequest) error {
	if strings.TrimSpace(req.SongName) == "" || strings.TrimSpace(req.ArtistName) == "" {
		return ErrNameRequired
	}
	return c.do(ctx, http.MethodPost, "/api/songs", nil, req, nil)
}

// UpdateSong applies a partial update to a song.
func (c *Client) UpdateSong(ctx context.Context, id int64, req SongUpdateRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/songs/%d", id), nil, req, nil)
}

// DeleteSong removes one song.
func (c *Client) DeleteSong(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/songs/%d", id), nil, nil, nil)
}

// ClearSongs removes every song, or one artist's, after confirmation.
func (c *Client) ClearSongs(ctx context.Context, artistID int64, confirm Confirmer) (int, error) {
	ok, err := confirm.Confirm(ctx, "Delete ALL tracked songs? This cannot be undone.")
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrCancelled
	}

	var q url.Values
	if artistID != 0 {
		q = url.Values{"artist_id": {strconv.FormatInt(artistID, 10)}}
	}
	var resp struct {
		Deleted int `json:"deleted"`
	}
	err = c.do(ctx, http.MethodDelete, "/api/songs/clear", q, nil, &resp)
	return resp.Deleted, err
}

package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrNameRequired is returned before any request when a required name-like
// field is empty.
var ErrNameRequired = errors.New("name is required")

// Artists lists all monitored artists.
func (c *Client) Artists(ctx context.Context) ([]Artist, error) {
	var artists []Artist
	err := c.do(ctx, http.MethodGet, "/api/artists", nil, nil, &artists)
	return artists, err
}

// CreateArtist adds a monitored artist.
func (c *Client) CreateArtist(ctx context.Context, req ArtistRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return ErrNameRequired
	}
	return c.do(ctx, http.MethodPost, "/api/artists", nil, req, nil)
}

// UpdateArtist applies a partial update to an artist.
func (c *Client) UpdateArtist(ctx context.Context, id int64, req ArtistRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/artists/%d", id), nil, req, nil)
}

// DeleteArtist removes an artist.
func (c *Client) DeleteArtist(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/artists/%d", id), nil, nil, nil)
}

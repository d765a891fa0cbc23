package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrNoSelection is returned before any request when a batch operation gets an
// empty id list.
var ErrNoSelection = errors.New("no videos selected")

// Videos lists matched videos under the given filters and stat card.
func (c *Client) Videos(ctx context.Context, f Filters, stat StatFilter) ([]Video, error) {
	var videos []Video
	err := c.do(ctx, http.MethodGet, "/api/videos", BuildQuery(f, stat), nil, &videos)
	return videos, err
}

// UpdateVideo changes one video's status and/or priority.
func (c *Client) UpdateVideo(ctx context.Context, id int64, req VideoUpdateRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/videos/%d", id), nil, req, nil)
}

// DeleteVideo removes one video from the review queue.
func (c *Client) DeleteVideo(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/videos/%d", id), nil, nil, nil)
}

// BatchUpdateVideos applies one status/priority change to a selection. The
// caller resets its selection after success.
func (c *Client) BatchUpdateVideos(ctx context.Context, ids []int64, status, priority string) (int, error) {
	if len(ids) == 0 {
		return 0, ErrNoSelection
	}
	body := map[string]any{"video_ids": ids}
	if status != "" {
		body["status"] = status
	}
	if priority != "" {
		body["priority"] = priority
	}

	var resp struct {
		Updated int `json:"updated"`
	}
	err := c.do(ctx, http.MethodPost, "/api/videos/batch-update", nil, body, &resp)
	return resp.Updated, err
}

// BatchDeleteVideos removes a selection of videos.
func (c *Client) BatchDeleteVideos(ctx context.Context, ids []int64) (int, error) {
	if len(ids) == 0 {
		return 0, ErrNoSelection
	}
	var resp struct {
		Deleted int `json:"deleted"`
	}
	err := c.do(ctx, http.MethodPost, "/api/videos/batch-delete", nil,
		map[string]any{"video_ids": ids}, &resp)
	return resp.Deleted, err
}

// ClearAllVideos wipes the entire review queue. Two separate confirmations
// are required; declining either sends nothing.
func (c *Client) ClearAllVideos(ctx context.Context, confirm Confirmer) (int, error) {
	ok, err := confirm.Confirm(ctx, "Delete ALL videos from the review queue?")
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrCancelled
	}

	ok, err = confirm.Confirm(ctx, "Really delete everything? This cannot be undone.")
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrCancelled
	}

	var resp struct {
		Deleted int `json:"deleted"`
	}
	err = c.do(ctx, http.MethodPost, "/api/videos/clear-all", nil, nil, &resp)
	return resp.Deleted, err
}

// SplitMatchedKeyword parses a matched_keyword value. Song searches store
// "song - artist"; keyword searches store the bare term. Only a value that
// splits into exactly two parts counts as a song; anything else stays a
// plain keyword.
func SplitMatchedKeyword(matched string) (song, artist string, isSong bool) {
	parts := strings.Split(matched, " - ")
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}

package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// GetStats fetches the dashboard aggregate.
func (c *Client) GetStats(ctx context.Context) (*Stats, error) {
	var stats Stats
	if err := c.do(ctx, http.MethodGet, "/api/stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// SearchLogs lists recent search log entries.
func (c *Client) SearchLogs(ctx context.Context, limit int) ([]SearchLog, error) {
	var q url.Values
	if limit > 0 {
		q = url.Values{"limit": {strconv.Itoa(limit)}}
	}
	var logs []SearchLog
	err := c.do(ctx, http.MethodGet, "/api/logs", q, nil, &logs)
	return logs, err
}

// RunKeywordSearch runs the keyword search pipeline. Empty keywords means
// every active keyword.
func (c *Client) RunKeywordSearch(ctx context.Context, keywords, exclude []string) (*SearchResponse, error) {
	body := map[string]any{}
	if len(keywords) > 0 {
		body["keywords"] = keywords
	}
	if len(exclude) > 0 {
		body["exclude_keywords"] = exclude
	}
	var resp SearchResponse
	if err := c.do(ctx, http.MethodPost, "/api/search", nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RunSongSearch runs the song search pipeline over every active song.
func (c *Client) RunSongSearch(ctx context.Context) (*SearchResponse, error) {
	var resp SearchResponse
	if err := c.do(ctx, http.MethodPost, "/api/search/songs", nil, map[string]any{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SmartScan re-runs the detector and rules over every pending video.
func (c *Client) SmartScan(ctx context.Context) (scanned, flagged int, err error) {
	var resp struct {
		Scanned int `json:"scanned"`
		Flagged int `json:"flagged"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/smart-scan", nil, nil, &resp); err != nil {
		return 0, 0, err
	}
	return resp.Scanned, resp.Flagged, nil
}

// AnalyzeVideo fetches the detector verdict for one YouTube video.
func (c *Client) AnalyzeVideo(ctx context.Context, videoID string) (*Analysis, error) {
	var analysis Analysis
	err := c.do(ctx, http.MethodPost, "/api/analyze-video", nil,
		map[string]string{"video_id": videoID}, &analysis)
	if err != nil {
		return nil, err
	}
	return &analysis, nil
}

// GetSchedule fetches the global auto-search schedule.
func (c *Client) GetSchedule(ctx context.Context) (*ScheduleConfig, error) {
	var cfg ScheduleConfig
	if err := c.do(ctx, http.MethodGet, "/api/schedule", nil, nil, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetSchedule stores the global auto-search schedule.
func (c *Client) SetSchedule(ctx context.Context, enabled bool, intervalHours int) (*ScheduleConfig, error) {
	var cfg ScheduleConfig
	err := c.do(ctx, http.MethodPost, "/api/schedule", nil,
		map[string]any{"enabled": enabled, "interval_hours": intervalHours}, &cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// AutoUpdateStatus fetches every artist's refresh schedule.
func (c *Client) AutoUpdateStatus(ctx context.Context) (*AutoUpdateStatus, error) {
	var status AutoUpdateStatus
	if err := c.do(ctx, http.MethodGet, "/api/auto-update/status", nil, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// EnableAutoUpdate turns on catalog refresh for an artist.
func (c *Client) EnableAutoUpdate(ctx context.Context, artistID int64, frequency, source string) error {
	body := map[string]string{}
	if frequency != "" {
		body["frequency"] = frequency
	}
	if source != "" {
		body["source"] = source
	}
	return c.do(ctx, http.MethodPost, "/api/auto-update/enable/"+strconv.FormatInt(artistID, 10), nil, body, nil)
}

// DisableAutoUpdate turns off catalog refresh for an artist.
func (c *Client) DisableAutoUpdate(ctx context.Context, artistID int64) error {
	return c.do(ctx, http.MethodPost, "/api/auto-update/disable/"+strconv.FormatInt(artistID, 10), nil, nil, nil)
}

// RunAutoUpdate refreshes one artist's catalog now.
func (c *Client) RunAutoUpdate(ctx context.Context, artistID int64) (*AutoUpdateResult, error) {
	var result AutoUpdateResult
	err := c.do(ctx, http.MethodPost, "/api/auto-update/run/"+strconv.FormatInt(artistID, 10), nil, nil, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// RunAllAutoUpdates refreshes every artist that is due.
func (c *Client) RunAllAutoUpdates(ctx context.Context) (*AutoUpdateRunAllResponse, error) {
	var resp AutoUpdateRunAllResponse
	if err := c.do(ctx, http.MethodPost, "/api/auto-update/run-all", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ExportCSV downloads the filtered review queue as CSV. The filename comes
// from the server's Content-Disposition header.
func (c *Client) ExportCSV(ctx context.Context, f Filters, stat StatFilter) ([]byte, string, error) {
	data, disposition, err := c.raw(ctx, "/api/export/csv", BuildQuery(f, stat))
	return data, filenameFrom(disposition, "export.csv"), err
}

// ExportExcel downloads the filtered review queue as XLSX.
func (c *Client) ExportExcel(ctx context.Context, f Filters, stat StatFilter) ([]byte, string, error) {
	data, disposition, err := c.raw(ctx, "/api/export/excel", BuildQuery(f, stat))
	return data, filenameFrom(disposition, "export.xlsx"), err
}

func filenameFrom(disposition, fallback string) string {
	const marker = "filename="
	if i := strings.Index(disposition, marker); i >= 0 {
		return strings.Trim(disposition[i+len(marker):], `"`)
	}
	return fallback
}

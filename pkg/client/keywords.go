package client

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// KeywordCSVHeader is the fixed column order of the bulk-import template.
var KeywordCSVHeader = []string{"keyword", "artist_name", "auto_flag", "priority"}

// Keywords lists all search keywords.
func (c *Client) Keywords(ctx context.Context) ([]Keyword, error) {
	var keywords []Keyword
	err := c.do(ctx, http.MethodGet, "/api/keywords", nil, nil, &keywords)
	return keywords, err
}

// CreateKeyword adds one search keyword.
func (c *Client) CreateKeyword(ctx context.Context, req KeywordRequest) error {
	if strings.TrimSpace(req.Keyword) == "" {
		return ErrNameRequired
	}
	return c.do(ctx, http.MethodPost, "/api/keywords", nil, req, nil)
}

// UpdateKeyword applies a partial update to a keyword.
func (c *Client) UpdateKeyword(ctx context.Context, id int64, req KeywordUpdateRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/keywords/%d", id), nil, req, nil)
}

// DeleteKeyword removes one keyword.
func (c *Client) DeleteKeyword(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/keywords/%d", id), nil, nil, nil)
}

// ClearKeywords removes every keyword, or one artist's, after confirmation.
func (c *Client) ClearKeywords(ctx context.Context, artistID int64, confirm Confirmer) (int, error) {
	ok, err := confirm.Confirm(ctx, "Delete ALL search keywords? This cannot be undone.")
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
	err = c.do(ctx, http.MethodDelete, "/api/keywords/clear", q, nil, &resp)
	return resp.Deleted, err
}

// BulkImportResult reports a keyword bulk import.
type BulkImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors"`
}

// BulkImportKeywords uploads a CSV or XLSX file as multipart form data.
func (c *Client) BulkImportKeywords(ctx context.Context, filename string, content []byte) (*BulkImportResult, error) {
	var buf bytes.Buffer
	form, err := buildFileForm(&buf, filename, content)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/keywords/bulk-import", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", form)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result BulkImportResult
	if err := decodeBody(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// KeywordTemplateCSV builds the 4-column starter file locally; no request is
// made.
func KeywordTemplateCSV() []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write(KeywordCSVHeader)
	w.Write([]string{"Example Brand Name", "Artist Name", "true", "High"})
	w.Write([]string{"Example Product", "Artist Name", "false", "Medium"})
	w.Flush()
	return buf.Bytes()
}

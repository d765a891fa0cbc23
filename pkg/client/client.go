// Package client is the typed SDK for the guardian REST API, used by the
// operator console and scripts.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrCancelled is returned when the operator declines a confirmation and no
// request was sent.
var ErrCancelled = errors.New("cancelled by operator")

// APIError is a structured error envelope returned by the server.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP %d", e.Status)
}

// Capabilities records which integrations the server reports as configured.
type Capabilities struct {
	DatabaseOK           bool
	APIConfigured        bool
	SpotifyConfigured    bool
	MusicBrainzAvailable bool
}

// Client talks to the guardian API. It persists the session token to a state
// file so the console stays logged in across runs.
type Client struct {
	baseURL   string
	http      *http.Client
	stateFile string

	token string
	caps  Capabilities
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithStateFile sets where the session token is persisted.
func WithStateFile(path string) Option {
	return func(c *Client) { c.stateFile = path }
}

// New builds a client, restores any persisted session and probes the server's
// capability flags. The probe is best-effort; an unreachable server leaves all
// capabilities false.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	if home, err := os.UserHomeDir(); err == nil {
		c.stateFile = filepath.Join(home, ".guardian_session")
	}
	for _, opt := range opts {
		opt(c)
	}

	c.loadToken()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	c.probeCapabilities(ctx)

	return c
}

// Capabilities returns the flags recorded at construction.
func (c *Client) Capabilities() Capabilities {
	return c.caps
}

func (c *Client) probeCapabilities(ctx context.Context) {
	var resp struct {
		Status               string `json:"status"`
		DatabaseOK           bool   `json:"database_ok"`
		APIConfigured        bool   `json:"api_configured"`
		SpotifyConfigured    bool   `json:"spotify_configured"`
		MusicBrainzAvailable bool   `json:"musicbrainz_available"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/health", nil, nil, &resp); err != nil {
		return
	}
	c.caps = Capabilities{
		DatabaseOK:           resp.DatabaseOK,
		APIConfigured:        resp.APIConfigured,
		SpotifyConfigured:    resp.SpotifyConfigured,
		MusicBrainzAvailable: resp.MusicBrainzAvailable,
	}
}

// do sends one JSON request and decodes the response into out when non-nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return decodeError(resp.StatusCode, data)
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}

// raw sends one request and returns the response body, for file downloads.
func (c *Client) raw(ctx context.Context, path string, query url.Values) ([]byte, string, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, "", err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	if resp.StatusCode >= 400 {
		return nil, "", decodeError(resp.StatusCode, data)
	}
	return data, resp.Header.Get("Content-Disposition"), nil
}

// buildFileForm writes a single-file multipart body and returns its
// Content-Type.
func buildFileForm(buf *bytes.Buffer, filename string, content []byte) (string, error) {
	w := multipart.NewWriter(buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(content); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}
	return w.FormDataContentType(), nil
}

// decodeBody reads a response, mapping error statuses to APIError.
func decodeBody(resp *http.Response, out any) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return decodeError(resp.StatusCode, data)
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}

// decodeError extracts the structured error envelope, falling back to a bare
// message field and finally the HTTP status.
func decodeError(status int, data []byte) error {
	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil {
		if envelope.Error.Message != "" {
			return &APIError{Status: status, Code: envelope.Error.Code, Message: envelope.Error.Message}
		}
		if envelope.Message != "" {
			return &APIError{Status: status, Message: envelope.Message}
		}
	}
	return &APIError{Status: status}
}

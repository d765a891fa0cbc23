package client

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
)

type sessionState struct {
	Token string `json:"token"`
}

// Login exchanges the admin password for a session token and persists it.
func (c *Client) Login(ctx context.Context, password string) error {
	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	err := c.do(ctx, http.MethodPost, "/api/auth/login", nil,
		map[string]string{"password": password}, &resp)
	if err != nil {
		return err
	}

	c.token = resp.Token
	c.saveToken()
	return nil
}

// Logout forgets the session locally. The token simply expires server-side.
func (c *Client) Logout() {
	c.token = ""
	if c.stateFile != "" {
		os.Remove(c.stateFile)
	}
}

// Authenticated reports whether a session token is present. The token may
// still be expired; the first rejected request surfaces that.
func (c *Client) Authenticated() bool {
	return c.token != ""
}

func (c *Client) loadToken() {
	if c.stateFile == "" {
		return
	}
	data, err := os.ReadFile(c.stateFile)
	if err != nil {
		return
	}
	var state sessionState
	if err := json.Unmarshal(data, &state); err != nil {
		return
	}
	c.token = state.Token
}

func (c *Client) saveToken() {
	if c.stateFile == "" {
		return
	}
	data, err := json.Marshal(sessionState{Token: c.token})
	if err != nil {
		return
	}
	os.WriteFile(c.stateFile, data, 0o600)
}

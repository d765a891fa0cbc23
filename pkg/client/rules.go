package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrNoConditions is returned before any request when a rule has no condition
// set.
var ErrNoConditions = errors.New("a rule needs at least one condition")

// Rules lists all auto-flag rules.
func (c *Client) Rules(ctx context.Context) ([]AutoFlagRule, error) {
	var rules []AutoFlagRule
	err := c.do(ctx, http.MethodGet, "/api/auto-flag-rules", nil, nil, &rules)
	return rules, err
}

// CreateRule adds an auto-flag rule. Empty conditions are rejected locally.
func (c *Client) CreateRule(ctx context.Context, req RuleRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return ErrNameRequired
	}
	if req.Conditions.Empty() {
		return ErrNoConditions
	}
	return c.do(ctx, http.MethodPost, "/api/auto-flag-rules", nil, req, nil)
}

// SetRuleActive toggles a rule on or off.
func (c *Client) SetRuleActive(ctx context.Context, id int64, active bool) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/auto-flag-rules/%d", id), nil,
		map[string]bool{"active": active}, nil)
}

// DeleteRule removes a rule.
func (c *Client) DeleteRule(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/auto-flag-rules/%d", id), nil, nil, nil)
}

// RecommendedRules fetches the server's pre-built rule set.
func (c *Client) RecommendedRules(ctx context.Context) ([]RuleRequest, error) {
	var rules []RuleRequest
	err := c.do(ctx, http.MethodGet, "/api/auto-flag-rules/recommended", nil, nil, &rules)
	return rules, err
}

// InstallRecommendedRules installs any recommended rule not already present.
func (c *Client) InstallRecommendedRules(ctx context.Context) (int, error) {
	var resp struct {
		Added int `json:"added"`
	}
	err := c.do(ctx, http.MethodPost, "/api/auto-flag-rules/install-recommended", nil, nil, &resp)
	return resp.Added, err
}

package model

import "time"

// Rule actions.
const (
	RuleActionFlag         = "flag"
	RuleActionHighPriority = "high_priority"
	RuleActionCritical     = "critical"
)

var ValidRuleActions = map[string]bool{
	RuleActionFlag:         true,
	RuleActionHighPriority: true,
	RuleActionCritical:     true,
}

// RuleConditions is the condition set evaluated against matched videos.
// Every non-empty field must match for the rule to fire.
type RuleConditions struct {
	TitleContains       string `json:"title_contains,omitempty"`
	ChannelNameContains string `json:"channel_name_contains,omitempty"`
	KeywordExactMatch   string `json:"keyword_exact_match,omitempty"`
}

// Empty reports whether no condition is set.
func (c RuleConditions) Empty() bool {
	return c.TitleContains == "" && c.ChannelNameContains == "" && c.KeywordExactMatch == ""
}

// AutoFlagRule marks incoming videos flagged or escalated when its
// conditions match.
type AutoFlagRule struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Description *string        `json:"description"`
	Conditions  RuleConditions `json:"conditions"`
	Action      string         `json:"action"`
	Active      bool           `json:"active"`
	CreatedAt   time.Time      `json:"created_at"`
}

// RuleRequest is the create body for auto-flag rules.
type RuleRequest struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Conditions  RuleConditions `json:"conditions"`
	Action      string         `json:"action,omitempty"`
}

// RuleUpdateRequest toggles a rule.
type RuleUpdateRequest struct {
	Active *bool `json:"active"`
}

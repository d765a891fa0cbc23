package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jzynonet/warner-music-guardian/internal/model"
	"github.com/jzynonet/warner-music-guardian/internal/repository"
)

var (
	ErrRuleInvalid   = errors.New("rule needs a name and at least one condition")
	ErrRuleExists    = errors.New("a rule with that name already exists")
	ErrRuleNotFound  = errors.New("rule not found")
	ErrInvalidAction = errors.New("action must be flag, high_priority or critical")
)

// RuleService manages auto-flag rules and applies them to incoming videos.
type RuleService struct {
	rules *repository.RuleRepo
}

func NewRuleService(rules *repository.RuleRepo) *RuleService {
	return &RuleService{rules: rules}
}

func (s *RuleService) List(ctx context.Context) ([]model.AutoFlagRule, error) {
	return s.rules.List(ctx)
}

func (s *RuleService) Create(ctx context.Context, req model.RuleRequest) (int64, error) {
	if strings.TrimSpace(req.Name) == "" || req.Conditions.Empty() {
		return 0, ErrRuleInvalid
	}
	if req.Action != "" && !model.ValidRuleActions[req.Action] {
		return 0, ErrInvalidAction
	}
	id, err := s.rules.Create(ctx, req)
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, ErrRuleExists
	}
	return id, nil
}

func (s *RuleService) Update(ctx context.Context, id int64, req model.RuleUpdateRequest) error {
	ok, err := s.rules.Update(ctx, id, req)
	if err != nil {
		return err
	}
	if !ok {
		return ErrRuleNotFound
	}
	return nil
}

func (s *RuleService) Delete(ctx context.Context, id int64) error {
	ok, err := s.rules.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrRuleNotFound
	}
	return nil
}

// Apply evaluates the active rules against a video and returns whether it
// should be flagged plus its resulting priority.
func (s *RuleService) Apply(ctx context.Context, v *model.Video) (bool, string, error) {
	rules, err := s.rules.ListActive(ctx)
	if err != nil {
		return false, v.Priority, err
	}
	flag, priority := applyRules(rules, v)
	return flag, priority, nil
}

// InstallRecommended creates any recommended rule not already present and
// returns the number added.
func (s *RuleService) InstallRecommended(ctx context.Context, recommended []model.RuleRequest) (int, error) {
	added := 0
	for _, req := range recommended {
		id, err := s.rules.Create(ctx, req)
		if err != nil {
			return added, err
		}
		if id != 0 {
			added++
		}
	}
	return added, nil
}

func applyRules(rules []model.AutoFlagRule, v *model.Video) (bool, string) {
	flag := false
	priority := v.Priority
	for _, rule := range rules {
		if !ruleMatches(rule.Conditions, v) {
			continue
		}
		switch rule.Action {
		case model.RuleActionFlag:
			flag = true
		case model.RuleActionHighPriority:
			priority = model.PriorityHigh
		case model.RuleActionCritical:
			priority = model.PriorityCritical
			flag = true
		}
	}
	return flag, priority
}

// ruleMatches requires every set condition to hold. Substring checks are
// case-insensitive, keyword matching is exact.
func ruleMatches(c model.RuleConditions, v *model.Video) bool {
	if c.TitleContains != "" &&
		!strings.Contains(strings.ToLower(v.Title), strings.ToLower(c.TitleContains)) {
		return false
	}
	if c.ChannelNameContains != "" &&
		!strings.Contains(strings.ToLower(v.ChannelName), strings.ToLower(c.ChannelNameContains)) {
		return false
	}
	if c.KeywordExactMatch != "" &&
		!strings.EqualFold(c.KeywordExactMatch, v.MatchedKeyword) {
		return false
	}
	return true
}

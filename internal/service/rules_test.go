package service

import (
	"testing"

	"github.com/jzynonet/warner-music-guardian/internal/model"
)

func TestRuleMatches(t *testing.T) {
	video := &model.Video{
		Title:          "Artist - Full Album (2023)",
		ChannelName:    "Free Music Hub",
		MatchedKeyword: "artist leak",
	}

	tests := []struct {
		name       string
		conditions model.RuleConditions
		want       bool
	}{
		{
			name:       "title substring case-insensitive",
			conditions: model.RuleConditions{TitleContains: "FULL ALBUM"},
			want:       true,
		},
		{
			name:       "title substring miss",
			conditions: model.RuleConditions{TitleContains: "bootleg"},
			want:       false,
		},
		{
			name:       "channel substring",
			conditions: model.RuleConditions{ChannelNameContains: "free music"},
			want:       true,
		},
		{
			name:       "keyword exact match",
			conditions: model.RuleConditions{KeywordExactMatch: "Artist Leak"},
			want:       true,
		},
		{
			name:       "keyword partial is not exact",
			conditions: model.RuleConditions{KeywordExactMatch: "artist"},
			want:       false,
		},
		{
			name: "all set conditions must hold",
			conditions: model.RuleConditions{
				TitleContains:       "full album",
				ChannelNameContains: "vevo",
			},
			want: false,
		},
		{
			name: "combined conditions all matching",
			conditions: model.RuleConditions{
				TitleContains:       "full album",
				ChannelNameContains: "free music",
				KeywordExactMatch:   "artist leak",
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ruleMatches(tt.conditions, video); got != tt.want {
				t.Errorf("ruleMatches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyRules(t *testing.T) {
	video := &model.Video{
		Title:       "Artist - Full Album Download",
		ChannelName: "uploader123",
		Priority:    model.PriorityMedium,
	}

	rules := []model.AutoFlagRule{
		{
			Conditions: model.RuleConditions{TitleContains: "full album"},
			Action:     model.RuleActionFlag,
		},
		{
			Conditions: model.RuleConditions{TitleContains: "download"},
			Action:     model.RuleActionHighPriority,
		},
		{
			Conditions: model.RuleConditions{ChannelNameContains: "vevo"},
			Action:     model.RuleActionCritical,
		},
	}

	flag, priority := applyRules(rules, video)
	if !flag {
		t.Error("expected flag from matching flag rule")
	}
	if priority != model.PriorityHigh {
		t.Errorf("priority = %q, want %q", priority, model.PriorityHigh)
	}
}

func TestApplyRulesCriticalEscalation(t *testing.T) {
	video := &model.Video{
		Title:    "Leaked Tracks",
		Priority: model.PriorityLow,
	}
	rules := []model.AutoFlagRule{
		{
			Conditions: model.RuleConditions{TitleContains: "leaked"},
			Action:     model.RuleActionCritical,
		},
	}

	flag, priority := applyRules(rules, video)
	if !flag || priority != model.PriorityCritical {
		t.Errorf("got flag=%v priority=%q, want flag=true priority=%q", flag, priority, model.PriorityCritical)
	}
}

func TestApplyRulesNoMatchKeepsPriority(t *testing.T) {
	video := &model.Video{
		Title:    "Holiday Photos",
		Priority: model.PriorityMedium,
	}
	rules := []model.AutoFlagRule{
		{
			Conditions: model.RuleConditions{TitleContains: "full album"},
			Action:     model.RuleActionCritical,
		},
	}

	flag, priority := applyRules(rules, video)
	if flag || priority != model.PriorityMedium {
		t.Errorf("got flag=%v priority=%q, want flag=false priority=%q", flag, priority, model.PriorityMedium)
	}
}

package service

import "testing"

func TestDetectorAnalyze(t *testing.T) {
	d := NewDetector()

	tests := []struct {
		name        string
		title       string
		channel     string
		description string
		durationSec int
		wantScore   int
		wantLevel   string
		wantFlag    bool
	}{
		{
			name:      "trusted label channel short-circuits",
			title:     "Full Album 2023",
			channel:   "Warner Records",
			wantScore: 0,
			wantLevel: RiskLow,
		},
		{
			name:      "auto-generated topic channel is trusted",
			title:     "Entire Concert",
			channel:   "Some Artist - Topic",
			wantScore: 0,
			wantLevel: RiskLow,
		},
		{
			name:      "clean upload scores zero",
			title:     "Morning Vlog",
			channel:   "Jane Doe",
			wantScore: 0,
			wantLevel: RiskLow,
		},
		{
			name:      "full album with suspicious uploader is medium",
			title:     "Full Album - Greatest Hits",
			channel:   "uploader123",
			wantScore: 40,
			wantLevel: RiskMedium,
		},
		{
			name:      "two medium-strength title hits land medium",
			title:     "Unreleased Remastered Session",
			channel:   "Random Channel",
			wantScore: 35,
			wantLevel: RiskMedium,
		},
		{
			name:      "two strong title hits flag as high",
			title:     "Unreleased Bootleg Recording",
			channel:   "Random Channel",
			wantScore: 50,
			wantLevel: RiskHigh,
			wantFlag:  true,
		},
		{
			name:        "stacked indicators cap at one hundred",
			title:       "Artist Discography Free Download 320kbps",
			channel:     "Free Music Paradise",
			description: "grab the download link at mega.nz",
			wantScore:   100,
			wantLevel:   RiskCritical,
			wantFlag:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.Analyze(tt.title, tt.channel, tt.description, tt.durationSec)
			if got.RiskScore != tt.wantScore {
				t.Errorf("RiskScore = %d, want %d (indicators: %v)", got.RiskScore, tt.wantScore, got.Indicators)
			}
			if got.RiskLevel != tt.wantLevel {
				t.Errorf("RiskLevel = %q, want %q", got.RiskLevel, tt.wantLevel)
			}
			if got.ShouldFlag != tt.wantFlag {
				t.Errorf("ShouldFlag = %v, want %v", got.ShouldFlag, tt.wantFlag)
			}
		})
	}
}

func TestDetectorOfficialAudio(t *testing.T) {
	d := NewDetector()

	got := d.Analyze("Artist - Song (Official Audio)", "randomguy", "", 0)
	if got.RiskScore != 10 {
		t.Errorf("official audio without marker: score = %d, want 10", got.RiskScore)
	}

	got = d.Analyze("Artist Music - Song (Official Audio)", "randomguy", "", 0)
	if got.RiskScore != 0 {
		t.Errorf("official audio with legit marker: score = %d, want 0", got.RiskScore)
	}
}

func TestDetectorLongDuration(t *testing.T) {
	d := NewDetector()

	got := d.Analyze("Concert Mix", "Random Channel", "", 7200)
	if got.RiskScore != 10 {
		t.Errorf("score = %d, want 10", got.RiskScore)
	}
	if got.RiskLevel != RiskLow {
		t.Errorf("level = %q, want %q", got.RiskLevel, RiskLow)
	}
}

func TestRecommendedRules(t *testing.T) {
	rules := NewDetector().RecommendedRules()
	if len(rules) != 8 {
		t.Fatalf("len = %d, want 8", len(rules))
	}
	seen := map[string]bool{}
	for _, r := range rules {
		if r.Name == "" {
			t.Error("rule with empty name")
		}
		if seen[r.Name] {
			t.Errorf("duplicate rule name %q", r.Name)
		}
		seen[r.Name] = true
		if r.Conditions.Empty() {
			t.Errorf("rule %q has no conditions", r.Name)
		}
		if !validRuleAction(r.Action) {
			t.Errorf("rule %q has invalid action %q", r.Name, r.Action)
		}
	}
}

func validRuleAction(a string) bool {
	return a == "flag" || a == "high_priority" || a == "critical"
}

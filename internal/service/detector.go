package service

import (
	"fmt"
	"regexp"

	"github.com/jzynonet/warner-music-guardian/internal/model"
)

// Risk levels assigned by the detector.
const (
	RiskLow      = "low"
	RiskMedium   = "medium"
	RiskHigh     = "high"
	RiskCritical = "critical"
)

// Analysis is the detector verdict for one video.
type Analysis struct {
	RiskScore  int      `json:"risk_score"`
	RiskLevel  string   `json:"risk_level"`
	ShouldFlag bool     `json:"should_flag"`
	Indicators []string `json:"indicators"`
	Reason     string   `json:"reason"`
}

var highRiskTitle = compileAll(
	`\b(full\s+album)\b`,
	`\b(complete\s+album)\b`,
	`\b(entire\s+album)\b`,
	`\b(all\s+songs)\b`,
	`\b(discography)\b`,
	`\b(mp3\s+download)\b`,
	`\b(free\s+download)\b`,
	`\b(download\s+free)\b`,
	`\b(flac\s+download)\b`,
	`\b(320kbps)\b`,
	`\b(high\s+quality\s+audio)\b`,
	`\b(leaked\s+album)\b`,
	`\b(unreleased)\b`,
	`\b(bootleg)\b`,
	`\b(pirated)\b`,
	`\b(unofficial\s+release)\b`,
	`\b(ripped\s+from)\b`,
	`\(\d{4}\)\s*full`,
	`full\s+concert\s+recording`,
	`entire\s+concert`,
	`complete\s+concert`,
)

var highRiskChannel = compileAll(
	`\b(free\s*music)\b`,
	`\b(mp3\s*downloads?)\b`,
	`\b(music\s*pirate)\b`,
	`\b(bootleg)\b`,
	`\b(leaked\s*music)\b`,
	`\b(unofficial)\b`,
	`\b(album\s*uploads?)\b`,
	`\b(full\s*albums?)\b`,
	`pirat[ae]`,
	`\b(torrent)\b`,
	`\b(rip(ped)?)\b`,
)

var highRiskDescription = compileAll(
	`\b(download\s+link)\b`,
	`\b(mega\.nz)\b`,
	`\b(mediafire)\b`,
	`\b(dropbox\.com/s/)\b`,
	`\b(bit\.ly/)\b`,
	`\b(free\s+mp3)\b`,
	`\b(tracklist):?\s*\n`,
	`\b(320\s*kbps)\b`,
	`\b(flac)\b`,
	`\b(wav\s+file)\b`,
)

var mediumRiskTitle = compileAll(
	`\b(live\s+concert)\b`,
	`\b(live\s+performance)\b`,
	`\b(live\s+at)\b`,
	`\b(concert\s+\d{4})\b`,
	`\b(tour\s+\d{4})\b`,
	`\b(remastered)\b`,
	`\b(extended\s+version)\b`,
	`\b(full\s+version)\b`,
	`\b(original\s+version)\b`,
	`\b(audio\s+only)\b`,
	`\b(lyrics?\s+video)\b`,
)

// "official audio" only counts when no legitimate marker appears alongside,
// since RE2 has no lookahead.
var officialAudio = regexp.MustCompile(`(?i)\b(official\s+audio)\b`)
var legitMarker = regexp.MustCompile(`(?i)\b(vevo|records?|music)\b`)

var mediumRiskChannel = compileAll(
	`\b(music\s+archive)\b`,
	`\b(rare\s+music)\b`,
	`\b(old\s+music)\b`,
	`\b(classic\s+songs?)\b`,
	`\b(audio\s+collection)\b`,
	`\b(full\s+songs?)\b`,
)

var trustedChannel = compileAll(
	`\bvevo\b`,
	`\bofficial\s+artist\s+channel\b`,
	`\brecords?\b`,
	`\bentertainment\b`,
	`\bmusic\s+group\b`,
	`\b(warner|sony|universal)\b`,
	`\b(atlantic|columbia|republic)\b`,
	`\btopic\b$`,
)

var suspiciousChannel = compileAll(
	`^\d+[a-z]+\d+$`,
	`^[a-z]+\d{4,}$`,
	`\b(uploads?|uploader)\d+\b`,
	`\b(music|songs?|audio)\s*\d{2,}\b`,
)

func compileAll(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(`(?i)` + p)
	}
	return out
}

// Detector scores video metadata for piracy indicators.
type Detector struct{}

func NewDetector() *Detector {
	return &Detector{}
}

// Analyze scores one video. Trusted channels short-circuit to zero risk.
func (d *Detector) Analyze(title, channelName, description string, durationSec int) Analysis {
	if matchAny(trustedChannel, channelName) {
		return Analysis{
			RiskScore:  0,
			RiskLevel:  RiskLow,
			ShouldFlag: false,
			Indicators: []string{"Trusted channel (VEVO/Official)"},
			Reason:     "Trusted official source",
		}
	}

	var (
		score      int
		indicators []string
	)
	hit := func(points int, label string) {
		score += points
		indicators = append(indicators, label)
	}

	for _, re := range highRiskTitle {
		if m := re.FindString(title); m != "" {
			hit(25, fmt.Sprintf("High-risk title: %q", m))
		}
	}
	for _, re := range highRiskChannel {
		if m := re.FindString(channelName); m != "" {
			hit(30, fmt.Sprintf("High-risk channel: %q", m))
		}
	}
	if description != "" {
		for _, re := range highRiskDescription {
			if m := re.FindString(description); m != "" {
				hit(20, fmt.Sprintf("High-risk description: %q", m))
			}
		}
	}
	for _, re := range mediumRiskTitle {
		if m := re.FindString(title); m != "" {
			hit(10, fmt.Sprintf("Medium-risk title: %q", m))
		}
	}
	if m := officialAudio.FindString(title); m != "" && !legitMarker.MatchString(title) {
		hit(10, fmt.Sprintf("Medium-risk title: %q", m))
	}
	for _, re := range mediumRiskChannel {
		if m := re.FindString(channelName); m != "" {
			hit(15, fmt.Sprintf("Medium-risk channel: %q", m))
		}
	}
	if matchAny(suspiciousChannel, channelName) {
		hit(15, "Suspicious channel name pattern")
	}
	if durationSec > 3600 {
		hit(10, fmt.Sprintf("Long duration (%d minutes)", durationSec/60))
	}
	if len(indicators) >= 3 {
		hit(20, "Multiple violation indicators")
	}
	if score > 100 {
		score = 100
	}

	a := Analysis{RiskScore: score, Indicators: indicators}
	switch {
	case score >= 70:
		a.RiskLevel = RiskCritical
		a.ShouldFlag = true
		a.Reason = "Critical: Multiple strong piracy indicators"
	case score >= 50:
		a.RiskLevel = RiskHigh
		a.ShouldFlag = true
		a.Reason = "High risk: Strong piracy indicators"
	case score >= 30:
		a.RiskLevel = RiskMedium
		a.Reason = "Medium risk: Some piracy indicators"
	default:
		a.RiskLevel = RiskLow
		a.Reason = "Low risk: Minimal indicators"
	}
	return a
}

func matchAny(res []*regexp.Regexp, s string) bool {
	for _, re := range res {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// RecommendedRules returns the pre-built auto-flag rule set offered by the
// smart-scan endpoint.
func (d *Detector) RecommendedRules() []model.RuleRequest {
	return []model.RuleRequest{
		{
			Name:        "Full Album Uploads",
			Description: "Auto-detect full album uploads (very high piracy indicator)",
			Conditions:  model.RuleConditions{TitleContains: "full album"},
			Action:      model.RuleActionCritical,
		},
		{
			Name:        "Download Links in Description",
			Description: "Detect videos offering MP3/FLAC downloads",
			Conditions:  model.RuleConditions{TitleContains: "download"},
			Action:      model.RuleActionCritical,
		},
		{
			Name:        "Bootleg Concert Recordings",
			Description: "Unauthorized live concert recordings",
			Conditions:  model.RuleConditions{TitleContains: "bootleg"},
			Action:      model.RuleActionFlag,
		},
		{
			Name:        "Pirate Music Channels",
			Description: "Channels known for uploading unauthorized music",
			Conditions:  model.RuleConditions{ChannelNameContains: "free music"},
			Action:      model.RuleActionCritical,
		},
		{
			Name:        "Leaked/Unreleased Content",
			Description: "Pre-release or leaked music",
			Conditions:  model.RuleConditions{TitleContains: "leaked"},
			Action:      model.RuleActionCritical,
		},
		{
			Name:        "Complete Discography",
			Description: "Full artist discography uploads",
			Conditions:  model.RuleConditions{TitleContains: "discography"},
			Action:      model.RuleActionFlag,
		},
		{
			Name:        "High Quality Rips",
			Description: "Videos advertising HQ audio rips (320kbps, FLAC)",
			Conditions:  model.RuleConditions{TitleContains: "320kbps"},
			Action:      model.RuleActionFlag,
		},
		{
			Name:        "Unofficial Music Archives",
			Description: "Channels acting as unauthorized music libraries",
			Conditions:  model.RuleConditions{ChannelNameContains: "music archive"},
			Action:      model.RuleActionHighPriority,
		},
	}
}

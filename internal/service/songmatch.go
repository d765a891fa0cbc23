package service

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jzynonet/warner-music-guardian/internal/model"
)

// SongHit is one scored candidate from a song search.
type SongHit struct {
	Video    model.FoundVideo
	Score    int
	Priority string
}

var isoDuration = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// parseISODuration converts an ISO 8601 duration like PT3M45S to seconds.
func parseISODuration(s string) int {
	m := isoDuration.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	total := 0
	for i, unit := range []int{3600, 60, 1} {
		if m[i+1] != "" {
			n, _ := strconv.Atoi(m[i+1])
			total += n * unit
		}
	}
	return total
}

// Titles carrying any of these are derivative or commentary content, not
// re-uploads worth tracking.
var unwantedTitleTerms = []string{
	"cover", "remix", "instrumental", "karaoke",
	"lyrics only", "lyric video", "lyrics video",
	"reaction", "reacting to", "react to", "review",
	"slowed", "reverb", "sped up", "nightcore",
	"8d audio", "bass boosted", "speed up", "boosted",
	"tutorial", "how to play", "dance video",
	"choreography", "dance practice", "lesson",
	"amapiano", "mashup", "vs", "versus",
}

func hasUnwantedTerm(titleLower string) bool {
	for _, term := range unwantedTitleTerms {
		if strings.Contains(titleLower, term) {
			return true
		}
	}
	return false
}

// isOfficialChannel filters out the artist's own channels. Violations come
// from third-party uploaders.
func isOfficialChannel(channelLower, artistLower string) bool {
	if strings.Contains(channelLower, artistLower) {
		return true
	}
	if strings.Contains(channelLower, "vevo") {
		return true
	}
	if strings.Contains(channelLower, "official") {
		for _, word := range strings.Fields(artistLower) {
			if strings.Contains(channelLower, word) {
				return true
			}
		}
	}
	return false
}

var collabSeparator = regexp.MustCompile(`\s+&\s+|\s+and\s+|\s+x\s+|\s+vs\.?\s+|\s+feat\.?\s+|\s+ft\.?\s+`)

// isFeaturedNotMain reports whether the artist appears only as a featured
// guest in the title. Main-artist uploads are the ones to keep.
func isFeaturedNotMain(title, artistName string) bool {
	titleLower := strings.ToLower(title)
	artistLower := strings.ToLower(artistName)

	if !strings.Contains(titleLower, artistLower) {
		return false
	}
	if strings.HasPrefix(strings.TrimSpace(titleLower), artistLower) {
		return false
	}

	quoted := regexp.QuoteMeta(artistLower)
	if regexp.MustCompile(`(feat\.|ft\.|feat|ft|featuring)\s+` + quoted).MatchString(titleLower) {
		return true
	}
	if regexp.MustCompile(`[()\[\]]\s*(feat\.|ft\.|featuring)\s+` + quoted).MatchString(titleLower) {
		return true
	}

	// Split on collaboration separators, keeping them so the one preceding
	// the artist can be inspected.
	sepIdx := collabSeparator.FindAllStringIndex(titleLower, -1)
	var parts, seps []string
	prev := 0
	for _, loc := range sepIdx {
		parts = append(parts, titleLower[prev:loc[0]])
		seps = append(seps, titleLower[loc[0]:loc[1]])
		prev = loc[1]
	}
	parts = append(parts, titleLower[prev:])

	artistPart := -1
	for i, part := range parts {
		if strings.Contains(part, artistLower) {
			artistPart = i
			break
		}
	}
	if artistPart <= 0 {
		return false
	}

	sep := strings.TrimSpace(seps[artistPart-1])
	for _, word := range []string{"feat", "ft", "featuring"} {
		if strings.Contains(sep, word) {
			return true
		}
	}
	if strings.ContainsAny(sep, "x&") {
		// "Song - Artist" keeps the artist as main even in second position.
		if dash := strings.Split(titleLower, "-"); len(dash) == 2 && strings.Contains(dash[1], artistLower) {
			return false
		}
		return true
	}
	return false
}

var officialMarkers = []string{
	"official audio", "official video", "official music video", "official lyric video",
}

var scoredUnwantedTerms = []string{
	"cover", "remix", "instrumental", "karaoke", "live", "acoustic",
	"lyrics", "lyric video", "reaction", "react", "tutorial", "how to",
	"slowed", "reverb", "sped up", "nightcore", "8d audio", "bass boosted",
	"behind the scenes", "making of", "dance video", "choreography",
	"mashup", "vs", "versus", "parody",
}

// matchScore rates how likely a candidate is the given song re-uploaded by a
// third party. 0-100, higher is more likely. origDurationSec of 0 means the
// catalog duration is unknown.
func matchScore(title, songName, artistName string, videoDurationSec, origDurationSec int) int {
	score := 0
	titleLower := strings.ToLower(title)
	songLower := strings.ToLower(songName)
	artistLower := strings.ToLower(artistName)

	if origDurationSec > 0 {
		diff := videoDurationSec - origDurationSec
		if diff < 0 {
			diff = -diff
		}
		switch {
		case diff == 0:
			score += 40
		case diff <= 2:
			score += 35
		case diff <= 5:
			score += 30
		case diff <= 10:
			score += 20
		case diff <= 30:
			score += 10
		}
	}

	if wordMatch(titleLower, songLower) {
		score += 35
	} else if strings.Contains(titleLower, songLower) {
		score += 20
	}

	if wordMatch(titleLower, artistLower) {
		score += 30
	} else if strings.Contains(titleLower, artistLower) {
		score += 15
	}

	for _, marker := range officialMarkers {
		if strings.Contains(titleLower, marker) {
			score -= 20
			break
		}
	}

	if strings.HasPrefix(strings.TrimSpace(titleLower), artistLower) {
		score += 5
	}

	for _, term := range scoredUnwantedTerms {
		if strings.Contains(titleLower, term) {
			score -= 50
			break
		}
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func wordMatch(haystackLower, needleLower string) bool {
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(needleLower) + `\b`)
	return re.MatchString(haystackLower)
}

func priorityForScore(score int) string {
	switch {
	case score >= 90:
		return model.PriorityCritical
	case score >= 75:
		return model.PriorityHigh
	case score >= 50:
		return model.PriorityMedium
	default:
		return model.PriorityLow
	}
}

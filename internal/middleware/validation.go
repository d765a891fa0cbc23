package middleware

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/jzynonet/warner-music-guardian/internal/model"
)

// Field length limits matching database expectations.
const (
	MaxKeywordLen = 200
	MaxNameLen    = 200
	MaxVideoIDLen = 16
)

// videoIDRe matches YouTube video IDs: alphanumeric, dash, underscore.
var videoIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateStatus checks a review status against the allowed set. Empty is
// allowed for partial updates.
func ValidateStatus(status string) (string, string) {
	if status == "" {
		return "", ""
	}
	if !model.ValidStatuses[status] {
		return "", "status must be Pending, Reviewed or Flagged for Takedown"
	}
	return status, ""
}

// ValidatePriority checks a priority against the allowed set. Empty is
// allowed for partial updates.
func ValidatePriority(priority string) (string, string) {
	if priority == "" {
		return "", ""
	}
	if !model.ValidPriorities[priority] {
		return "", "priority must be Low, Medium, High or Critical"
	}
	return priority, ""
}

// ValidateFrequency checks an auto-update frequency.
func ValidateFrequency(frequency string) (string, string) {
	if frequency == "" {
		return "", ""
	}
	if !model.ValidFrequencies[frequency] {
		return "", "frequency must be daily, weekly or monthly"
	}
	return frequency, ""
}

// ValidateSource checks a catalog source.
func ValidateSource(source string) (string, string) {
	if source == "" {
		return "", ""
	}
	if !model.ValidSources[source] {
		return "", "source must be spotify or musicbrainz"
	}
	return source, ""
}

// ValidateVideoID checks that a YouTube video ID is well-formed.
func ValidateVideoID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "videoId is required"
	}
	if len(id) > MaxVideoIDLen {
		return "", "videoId must be at most 16 characters"
	}
	if !videoIDRe.MatchString(id) {
		return "", "videoId contains invalid characters"
	}
	return id, ""
}

// ValidateName trims a required name-like field and enforces the length cap.
func ValidateName(name, field string) (string, string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", field + " is required"
	}
	if len(name) > MaxNameLen {
		return "", field + " is too long"
	}
	return name, ""
}

package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/jzynonet/warner-music-guardian/internal/middleware"
	"github.com/jzynonet/warner-music-guardian/internal/model"
)

// parseID reads the :id route parameter as a positive integer.
func parseID(c fiber.Ctx) (int64, string) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, "id must be a positive integer"
	}
	return id, ""
}

// parseVideoFilters reads the shared video list query parameters used by the
// video list and both export endpoints.
func parseVideoFilters(c fiber.Ctx) (model.VideoFilters, string) {
	var f model.VideoFilters

	f.Keyword = fiber.Query[string](c, "keyword")
	f.DateFrom = fiber.Query[string](c, "date_from")
	f.DateTo = fiber.Query[string](c, "date_to")

	status, errMsg := middleware.ValidateStatus(fiber.Query[string](c, "status"))
	if errMsg != "" {
		return f, errMsg
	}
	f.Status = status

	priority, errMsg := middleware.ValidatePriority(fiber.Query[string](c, "priority"))
	if errMsg != "" {
		return f, errMsg
	}
	f.Priority = priority

	if raw := fiber.Query[string](c, "artist_id"); raw != "" {
		artistID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || artistID <= 0 {
			return f, "artist_id must be a positive integer"
		}
		f.ArtistID = artistID
	}

	// Tri-state: absent means unfiltered.
	switch fiber.Query[string](c, "auto_flagged") {
	case "":
	case "true":
		v := true
		f.AutoFlagged = &v
	case "false":
		v := false
		f.AutoFlagged = &v
	default:
		return f, "auto_flagged must be true or false"
	}

	return f, ""
}

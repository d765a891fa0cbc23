package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/jzynonet/warner-music-guardian/internal/middleware"
	"github.com/jzynonet/warner-music-guardian/internal/model"
	"github.com/jzynonet/warner-music-guardian/internal/service"
)

type SearchHandler struct {
	svc *service.SearchService
}

func NewSearchHandler(svc *service.SearchService) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// SearchKeywords handles POST /api/search
func (h *SearchHandler) SearchKeywords(c fiber.Ctx) error {
	var req model.KeywordSearchRequest
	if len(c.Body()) > 0 {
		if err := c.Bind().JSON(&req); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		}
	}

	resp, err := h.svc.SearchKeywords(c.Context(), req)
	if err != nil {
		return searchError(c, err)
	}
	Metrics.SearchesTotal.WithLabelValues("keyword").Inc()
	return c.JSON(resp)
}

// SearchSongs handles POST /api/search/songs
func (h *SearchHandler) SearchSongs(c fiber.Ctx) error {
	var req model.SongSearchRequest
	if len(c.Body()) > 0 {
		if err := c.Bind().JSON(&req); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		}
	}

	resp, err := h.svc.SearchSongs(c.Context(), req)
	if err != nil {
		return searchError(c, err)
	}
	Metrics.SearchesTotal.WithLabelValues("song").Inc()
	return c.JSON(resp)
}

type analyzeRequest struct {
	VideoID string `json:"video_id"`
}

// AnalyzeVideo handles POST /api/analyze-video. The verdict is returned
// without persisting anything.
func (h *SearchHandler) AnalyzeVideo(c fiber.Ctx) error {
	var req analyzeRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	videoID, errMsg := middleware.ValidateVideoID(req.VideoID)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	analysis, err := h.svc.AnalyzeVideoByID(c.Context(), videoID)
	if err != nil {
		return searchError(c, err)
	}
	if analysis == nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Video not found on YouTube")
	}
	return c.JSON(analysis)
}

// SmartScan handles POST /api/smart-scan. Re-runs the detector and rules over
// every pending video.
func (h *SearchHandler) SmartScan(c fiber.Ctx) error {
	scanned, flagged, err := h.svc.RescanPending(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to rescan pending videos")
	}
	return c.JSON(fiber.Map{"success": true, "scanned": scanned, "flagged": flagged})
}

// Logs handles GET /api/logs
func (h *SearchHandler) Logs(c fiber.Ctx) error {
	limit := 0
	if raw := fiber.Query[string](c, "limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", "limit must be a positive integer")
		}
		limit = n
	}

	logs, err := h.svc.Logs(c.Context(), limit)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list search logs")
	}
	if logs == nil {
		logs = []model.SearchLog{}
	}
	return c.JSON(logs)
}

func searchError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrYouTubeDisabled):
		return middleware.ErrorResponse(c, fiber.StatusServiceUnavailable, "YOUTUBE_DISABLED", "YouTube API key is not configured")
	case errors.Is(err, service.ErrQuotaExceeded):
		return middleware.ErrorResponse(c, fiber.StatusTooManyRequests, "QUOTA_EXCEEDED", "YouTube API quota exceeded")
	case errors.Is(err, service.ErrInvalidAPIKey):
		return middleware.ErrorResponse(c, fiber.StatusServiceUnavailable, "INVALID_API_KEY", "YouTube API key is invalid")
	default:
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Search failed")
	}
}

package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/jzynonet/warner-music-guardian/internal/middleware"
	"github.com/jzynonet/warner-music-guardian/internal/model"
	"github.com/jzynonet/warner-music-guardian/internal/service"
)

type VideoHandler struct {
	svc *service.VideoService
}

func NewVideoHandler(svc *service.VideoService) *VideoHandler {
	return &VideoHandler{svc: svc}
}

// List handles GET /api/videos
func (h *VideoHandler) List(c fiber.Ctx) error {
	filters, errMsg := parseVideoFilters(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	videos, err := h.svc.List(c.Context(), filters)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list videos")
	}
	if videos == nil {
		videos = []model.Video{}
	}
	return c.JSON(videos)
}

// Update handles PUT /api/videos/:id
func (h *VideoHandler) Update(c fiber.Ctx) error {
	id, errMsg := parseID(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	var req model.VideoUpdateRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	if errMsg := validateStatusPriority(req.Status, req.Priority); errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	if err := h.svc.Update(c.Context(), id, req); err != nil {
		switch {
		case errors.Is(err, service.ErrNothingToDo):
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_FIELDS", "status or priority is required")
		case errors.Is(err, service.ErrVideoNotFound):
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Video not found")
		default:
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update video")
		}
	}
	return c.JSON(fiber.Map{"success": true})
}

// Delete handles DELETE /api/videos/:id
func (h *VideoHandler) Delete(c fiber.Ctx) error {
	id, errMsg := parseID(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Video not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete video")
	}
	return c.JSON(fiber.Map{"success": true})
}

// BatchUpdate handles POST /api/videos/batch-update
func (h *VideoHandler) BatchUpdate(c fiber.Ctx) error {
	var req model.BatchUpdateRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	if errMsg := validateStatusPriority(req.Status, req.Priority); errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	if req.Status == "" && req.Priority == "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_FIELDS", "status or priority is required")
	}

	updated, err := h.svc.BatchUpdate(c.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrNothingToDo) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_FIELDS", "video_ids is required")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update videos")
	}
	return c.JSON(fiber.Map{"success": true, "updated": updated})
}

// BatchDelete handles POST /api/videos/batch-delete
func (h *VideoHandler) BatchDelete(c fiber.Ctx) error {
	var req model.BatchDeleteRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	deleted, err := h.svc.BatchDelete(c.Context(), req.VideoIDs)
	if err != nil {
		if errors.Is(err, service.ErrNothingToDo) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_FIELDS", "video_ids is required")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete videos")
	}
	return c.JSON(fiber.Map{"success": true, "deleted": deleted})
}

// ClearAll handles POST /api/videos/clear-all
func (h *VideoHandler) ClearAll(c fiber.Ctx) error {
	deleted, err := h.svc.ClearAll(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to clear videos")
	}
	return c.JSON(fiber.Map{"success": true, "deleted": deleted})
}

func validateStatusPriority(status, priority string) string {
	if _, errMsg := middleware.ValidateStatus(status); errMsg != "" {
		return errMsg
	}
	if _, errMsg := middleware.ValidatePriority(priority); errMsg != "" {
		return errMsg
	}
	return ""
}

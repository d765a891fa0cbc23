package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/jzynonet/warner-music-guardian/internal/middleware"
	"github.com/jzynonet/warner-music-guardian/internal/model"
	"github.com/jzynonet/warner-music-guardian/internal/service"
)

type ScheduleHandler struct {
	svc *service.ScheduleService
}

func NewScheduleHandler(svc *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{svc: svc}
}

// Get handles GET /api/schedule
func (h *ScheduleHandler) Get(c fiber.Ctx) error {
	cfg, err := h.svc.Get(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch schedule")
	}
	return c.JSON(cfg)
}

// Set handles POST /api/schedule
func (h *ScheduleHandler) Set(c fiber.Ctx) error {
	var req model.ScheduleRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	cfg, err := h.svc.Set(c.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrBadInterval) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", "interval_hours must be between 1 and 168")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update schedule")
	}
	return c.JSON(cfg)
}

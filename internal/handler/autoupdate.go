package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5"

	"github.com/jzynonet/warner-music-guardian/internal/middleware"
	"github.com/jzynonet/warner-music-guardian/internal/model"
	"github.com/jzynonet/warner-music-guardian/internal/service"
)

type AutoUpdateHandler struct {
	svc *service.AutoUpdateService
}

func NewAutoUpdateHandler(svc *service.AutoUpdateService) *AutoUpdateHandler {
	return &AutoUpdateHandler{svc: svc}
}

// Status handles GET /api/auto-update/status
func (h *AutoUpdateHandler) Status(c fiber.Ctx) error {
	status, err := h.svc.Status(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch auto-update status")
	}
	if status.Artists == nil {
		status.Artists = []model.AutoUpdateConfig{}
	}
	return c.JSON(status)
}

// Enable handles POST /api/auto-update/enable/:id
func (h *AutoUpdateHandler) Enable(c fiber.Ctx) error {
	id, errMsg := parseID(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	var req model.AutoUpdateEnableRequest
	if len(c.Body()) > 0 {
		if err := c.Bind().JSON(&req); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		}
	}
	if _, errMsg := middleware.ValidateFrequency(req.Frequency); errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	if _, errMsg := middleware.ValidateSource(req.Source); errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	if err := h.svc.Enable(c.Context(), id, req); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Artist not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to enable auto-update")
	}
	return c.JSON(fiber.Map{"success": true})
}

// Disable handles POST /api/auto-update/disable/:id
func (h *AutoUpdateHandler) Disable(c fiber.Ctx) error {
	id, errMsg := parseID(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	ok, err := h.svc.Disable(c.Context(), id)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to disable auto-update")
	}
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "No auto-update config for that artist")
	}
	return c.JSON(fiber.Map{"success": true})
}

// Run handles POST /api/auto-update/run/:id
func (h *AutoUpdateHandler) Run(c fiber.Ctx) error {
	id, errMsg := parseID(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	result := h.svc.RunArtist(c.Context(), id)
	if !result.Success {
		status := fiber.StatusBadGateway
		if result.Error == "artist not found" {
			status = fiber.StatusNotFound
		}
		return c.Status(status).JSON(result)
	}
	return c.JSON(result)
}

// RunAll handles POST /api/auto-update/run-all
func (h *AutoUpdateHandler) RunAll(c fiber.Ctx) error {
	resp, err := h.svc.RunAll(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to run auto-update")
	}
	if resp.Updates == nil {
		resp.Updates = []model.AutoUpdateResult{}
	}
	return c.JSON(resp)
}

package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/jzynonet/warner-music-guardian/internal/middleware"
	"github.com/jzynonet/warner-music-guardian/internal/model"
	"github.com/jzynonet/warner-music-guardian/internal/service"
)

type RuleHandler struct {
	svc      *service.RuleService
	detector *service.Detector
}

func NewRuleHandler(svc *service.RuleService, detector *service.Detector) *RuleHandler {
	return &RuleHandler{svc: svc, detector: detector}
}

// List handles GET /api/auto-flag-rules
func (h *RuleHandler) List(c fiber.Ctx) error {
	rules, err := h.svc.List(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list rules")
	}
	if rules == nil {
		rules = []model.AutoFlagRule{}
	}
	return c.JSON(rules)
}

// Create handles POST /api/auto-flag-rules
func (h *RuleHandler) Create(c fiber.Ctx) error {
	var req model.RuleRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	id, err := h.svc.Create(c.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRuleInvalid):
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", err.Error())
		case errors.Is(err, service.ErrInvalidAction):
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", err.Error())
		case errors.Is(err, service.ErrRuleExists):
			return middleware.ErrorResponse(c, fiber.StatusConflict, "ALREADY_EXISTS", err.Error())
		default:
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create rule")
		}
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "id": id})
}

// Update handles PUT /api/auto-flag-rules/:id
func (h *RuleHandler) Update(c fiber.Ctx) error {
	id, errMsg := parseID(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	var req model.RuleUpdateRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	if req.Active == nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_FIELDS", "active is required")
	}

	if err := h.svc.Update(c.Context(), id, req); err != nil {
		if errors.Is(err, service.ErrRuleNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Rule not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update rule")
	}
	return c.JSON(fiber.Map{"success": true})
}

// Delete handles DELETE /api/auto-flag-rules/:id
func (h *RuleHandler) Delete(c fiber.Ctx) error {
	id, errMsg := parseID(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrRuleNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Rule not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete rule")
	}
	return c.JSON(fiber.Map{"success": true})
}

// Recommended handles GET /api/auto-flag-rules/recommended
func (h *RuleHandler) Recommended(c fiber.Ctx) error {
	return c.JSON(h.detector.RecommendedRules())
}

// InstallRecommended handles POST /api/auto-flag-rules/install-recommended
func (h *RuleHandler) InstallRecommended(c fiber.Ctx) error {
	added, err := h.svc.InstallRecommended(c.Context(), h.detector.RecommendedRules())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to install recommended rules")
	}
	return c.JSON(fiber.Map{"success": true, "added": added})
}

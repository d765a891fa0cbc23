package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/jzynonet/warner-music-guardian/internal/middleware"
	"github.com/jzynonet/warner-music-guardian/internal/service"
)

type ExportHandler struct {
	svc *service.ExportService
}

func NewExportHandler(svc *service.ExportService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

// CSV handles GET /api/export/csv
func (h *ExportHandler) CSV(c fiber.Ctx) error {
	filters, errMsg := parseVideoFilters(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	data, err := h.svc.CSV(c.Context(), filters)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to export videos")
	}

	Metrics.ExportsTotal.WithLabelValues("csv").Inc()
	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", "attachment; filename="+service.Filename("csv", time.Now()))
	return c.Send(data)
}

// Excel handles GET /api/export/excel
func (h *ExportHandler) Excel(c fiber.Ctx) error {
	filters, errMsg := parseVideoFilters(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	data, err := h.svc.Excel(c.Context(), filters)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to export videos")
	}

	Metrics.ExportsTotal.WithLabelValues("xlsx").Inc()
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", "attachment; filename="+service.Filename("xlsx", time.Now()))
	return c.Send(data)
}

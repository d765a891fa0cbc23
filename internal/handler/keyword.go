package handler

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/jzynonet/warner-music-guardian/internal/middleware"
	"github.com/jzynonet/warner-music-guardian/internal/model"
	"github.com/jzynonet/warner-music-guardian/internal/repository"
	"github.com/jzynonet/warner-music-guardian/internal/service"
)

type KeywordHandler struct {
	keywords *repository.KeywordRepo
	artists  *repository.ArtistRepo
}

func NewKeywordHandler(keywords *repository.KeywordRepo, artists *repository.ArtistRepo) *KeywordHandler {
	return &KeywordHandler{keywords: keywords, artists: artists}
}

// List handles GET /api/keywords
func (h *KeywordHandler) List(c fiber.Ctx) error {
	keywords, err := h.keywords.List(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list keywords")
	}
	if keywords == nil {
		keywords = []model.Keyword{}
	}
	return c.JSON(keywords)
}

// Create handles POST /api/keywords
func (h *KeywordHandler) Create(c fiber.Ctx) error {
	var req model.KeywordRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	keyword, errMsg := middleware.ValidateName(req.Keyword, "keyword")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.Keyword = keyword

	if _, errMsg := middleware.ValidatePriority(req.Priority); errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	id, err := h.keywords.Create(c.Context(), req)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create keyword")
	}
	if id == 0 {
		return middleware.ErrorResponse(c, fiber.StatusConflict, "ALREADY_EXISTS", "That keyword already exists")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "id": id})
}

// Update handles PUT /api/keywords/:id
func (h *KeywordHandler) Update(c fiber.Ctx) error {
	id, errMsg := parseID(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	var req model.KeywordUpdateRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	if req.Priority != nil {
		if _, errMsg := middleware.ValidatePriority(*req.Priority); errMsg != "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
		}
	}

	ok, err := h.keywords.Update(c.Context(), id, req)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update keyword")
	}
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Keyword not found")
	}
	return c.JSON(fiber.Map{"success": true})
}

// Delete handles DELETE /api/keywords/:id
func (h *KeywordHandler) Delete(c fiber.Ctx) error {
	id, errMsg := parseID(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	ok, err := h.keywords.Delete(c.Context(), id)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete keyword")
	}
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Keyword not found")
	}
	return c.JSON(fiber.Map{"success": true})
}

// Clear handles DELETE /api/keywords/clear
func (h *KeywordHandler) Clear(c fiber.Ctx) error {
	var artistID int64
	if raw := fiber.Query[string](c, "artist_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", "artist_id must be a positive integer")
		}
		artistID = id
	}

	deleted, err := h.keywords.Clear(c.Context(), artistID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to clear keywords")
	}
	return c.JSON(fiber.Map{"success": true, "deleted": deleted})
}

// BulkImport handles POST /api/keywords/bulk-import (multipart file upload).
// Accepts CSV and XLSX files with columns keyword,artist_name,auto_flag,priority.
func (h *KeywordHandler) BulkImport(c fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_FIELDS", "file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Failed to read uploaded file")
	}
	defer file.Close()

	var rows []model.KeywordImportRow
	switch strings.ToLower(filepath.Ext(fileHeader.Filename)) {
	case ".xlsx":
		rows, err = service.ParseKeywordXLSX(file)
	default:
		rows, err = service.ParseKeywordCSV(file)
	}
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Failed to parse file: "+err.Error())
	}
	for _, row := range rows {
		if !model.ValidPriorities[row.Priority] {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD",
				"invalid priority "+row.Priority+" for keyword "+row.Keyword)
		}
	}

	// Rows naming an unknown artist import without the artist link.
	resolveArtist := func(name string) *int64 {
		artist, err := h.artists.FindByName(c.Context(), name)
		if err != nil {
			return nil
		}
		return &artist.ID
	}

	result, err := h.keywords.BulkCreate(c.Context(), rows, resolveArtist)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to import keywords")
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"imported": result.Added,
		"skipped":  result.Skipped,
		"errors":   result.Errors,
	})
}

// Template handles GET /api/keywords/template
func (h *KeywordHandler) Template(c fiber.Ctx) error {
	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", "attachment; filename=keyword_import_template.csv")
	return c.Send(service.KeywordTemplateCSV())
}

package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5"

	"github.com/jzynonet/warner-music-guardian/internal/middleware"
	"github.com/jzynonet/warner-music-guardian/internal/model"
	"github.com/jzynonet/warner-music-guardian/internal/repository"
)

type ArtistHandler struct {
	artists *repository.ArtistRepo
}

func NewArtistHandler(artists *repository.ArtistRepo) *ArtistHandler {
	return &ArtistHandler{artists: artists}
}

// List handles GET /api/artists
func (h *ArtistHandler) List(c fiber.Ctx) error {
	artists, err := h.artists.List(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list artists")
	}
	if artists == nil {
		artists = []model.Artist{}
	}
	return c.JSON(artists)
}

// Get handles GET /api/artists/:id
func (h *ArtistHandler) Get(c fiber.Ctx) error {
	id, errMsg := parseID(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	artist, err := h.artists.Find(c.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Artist not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch artist")
	}
	return c.JSON(artist)
}

// Create handles POST /api/artists
func (h *ArtistHandler) Create(c fiber.Ctx) error {
	var req model.ArtistRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	name, errMsg := middleware.ValidateName(req.Name, "name")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.Name = name

	id, err := h.artists.Create(c.Context(), req)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create artist")
	}
	if id == 0 {
		return middleware.ErrorResponse(c, fiber.StatusConflict, "ALREADY_EXISTS", "An artist with that name already exists")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "id": id})
}

// Update handles PUT /api/artists/:id
func (h *ArtistHandler) Update(c fiber.Ctx) error {
	id, errMsg := parseID(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	var req model.ArtistRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	ok, err := h.artists.Update(c.Context(), id, req)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update artist")
	}
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Artist not found")
	}
	return c.JSON(fiber.Map{"success": true})
}

// Delete handles DELETE /api/artists/:id
func (h *ArtistHandler) Delete(c fiber.Ctx) error {
	id, errMsg := parseID(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	ok, err := h.artists.Delete(c.Context(), id)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete artist")
	}
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Artist not found")
	}
	return c.JSON(fiber.Map{"success": true})
}

package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/jzynonet/warner-music-guardian/internal/middleware"
	"github.com/jzynonet/warner-music-guardian/internal/model"
	"github.com/jzynonet/warner-music-guardian/internal/repository"
	"github.com/jzynonet/warner-music-guardian/internal/service"
)

type SongHandler struct {
	songs    *repository.SongRepo
	importer *service.ImportService
}

func NewSongHandler(songs *repository.SongRepo, importer *service.ImportService) *SongHandler {
	return &SongHandler{songs: songs, importer: importer}
}

// List handles GET /api/songs
func (h *SongHandler) List(c fiber.Ctx) error {
	var artistID int64
	if raw := fiber.Query[string](c, "artist_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", "artist_id must be a positive integer")
		}
		artistID = id
	}

	songs, err := h.songs.List(c.Context(), artistID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list songs")
	}
	if songs == nil {
		songs = []model.Song{}
	}
	return c.JSON(songs)
}

// Create handles POST /api/songs
func (h *SongHandler) Create(c fiber.Ctx) error {
	var req model.SongRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	songName, errMsg := middleware.ValidateName(req.SongName, "song_name")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.SongName = songName

	artistName, errMsg := middleware.ValidateName(req.ArtistName, "artist_name")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.ArtistName = artistName

	if _, errMsg := middleware.ValidatePriority(req.Priority); errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	id, err := h.songs.Create(c.Context(), req)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create song")
	}
	if id == 0 {
		return middleware.ErrorResponse(c, fiber.StatusConflict, "ALREADY_EXISTS", "That song is already tracked for this artist")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "id": id})
}

// Update handles PUT /api/songs/:id
func (h *SongHandler) Update(c fiber.Ctx) error {
	id, errMsg := parseID(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	var req model.SongUpdateRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	if req.Priority != nil {
		if _, errMsg := middleware.ValidatePriority(*req.Priority); errMsg != "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
		}
	}

	ok, err := h.songs.Update(c.Context(), id, req)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update song")
	}
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Song not found")
	}
	return c.JSON(fiber.Map{"success": true})
}

// Delete handles DELETE /api/songs/:id
func (h *SongHandler) Delete(c fiber.Ctx) error {
	id, errMsg := parseID(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	ok, err := h.songs.Delete(c.Context(), id)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete song")
	}
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Song not found")
	}
	return c.JSON(fiber.Map{"success": true})
}

// Clear handles DELETE /api/songs/clear
func (h *SongHandler) Clear(c fiber.Ctx) error {
	var artistID int64
	if raw := fiber.Query[string](c, "artist_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", "artist_id must be a positive integer")
		}
		artistID = id
	}

	deleted, err := h.songs.Clear(c.Context(), artistID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to clear songs")
	}
	return c.JSON(fiber.Map{"success": true, "deleted": deleted})
}

type songBulkRequest struct {
	Songs []model.SongRequest `json:"songs"`
}

// BulkImport handles POST /api/songs/bulk-import
func (h *SongHandler) BulkImport(c fiber.Ctx) error {
	var req songBulkRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	if len(req.Songs) == 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_FIELDS", "songs is required")
	}
	for _, song := range req.Songs {
		if song.SongName == "" || song.ArtistName == "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", "every song needs song_name and artist_name")
		}
	}

	result, err := h.songs.BulkCreate(c.Context(), req.Songs)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to import songs")
	}
	return c.JSON(result)
}

type previewRequest struct {
	SpotifyURL string `json:"spotify_url"`
}

// PreviewFromSpotify handles POST /api/songs/preview-from-spotify
func (h *SongHandler) PreviewFromSpotify(c fiber.Ctx) error {
	var req previewRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	if req.SpotifyURL == "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_FIELDS", "spotify_url is required")
	}

	preview, err := h.importer.Preview(c.Context(), req.SpotifyURL)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSpotifyDisabled):
			return middleware.ErrorResponse(c, fiber.StatusServiceUnavailable, "SPOTIFY_DISABLED", "Spotify credentials are not configured")
		case errors.Is(err, service.ErrBadArtistURL):
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", "spotify_url is not a valid artist URL")
		case errors.Is(err, service.ErrArtistNotFound):
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Artist not found on Spotify")
		default:
			return middleware.ErrorResponse(c, fiber.StatusBadGateway, "UPSTREAM_ERROR", "Failed to fetch catalog from Spotify")
		}
	}
	return c.JSON(preview)
}

// ImportFromSpotify handles POST /api/songs/import-from-spotify
func (h *SongHandler) ImportFromSpotify(c fiber.Ctx) error {
	var req model.ImportRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	if req.ArtistInfo.Name == "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_FIELDS", "artist_info.name is required")
	}
	if _, errMsg := middleware.ValidatePriority(req.Priority); errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	resp, err := h.importer.Import(c.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrNoSongsSelected) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_FIELDS", "selected_songs is required")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to import songs")
	}
	return c.JSON(resp)
}

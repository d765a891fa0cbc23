package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/jzynonet/warner-music-guardian/internal/middleware"
	"github.com/jzynonet/warner-music-guardian/internal/service"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type loginRequest struct {
	Password string `json:"password"`
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	token, expires, err := h.svc.Login(req.Password)
	if err != nil {
		if errors.Is(err, service.ErrBadCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Invalid password",
			})
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to issue session token")
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"token":      token,
		"expires_at": expires.Format(time.RFC3339),
	})
}

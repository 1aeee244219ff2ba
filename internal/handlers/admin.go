package handlers

import (
	"errors"

	"insights/internal/config"
	"insights/internal/services/auth"
	"insights/internal/services/ingest"
	"insights/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler serves the operator-facing endpoints: login and CSV
// reload. Reload is behind the auth middleware.
type AdminHandler struct {
	authService   auth.Service
	ingestService ingest.Service
}

func NewAdminHandler(authService auth.Service, ingestService ingest.Service) *AdminHandler {
	return &AdminHandler{
		authService:   authService,
		ingestService: ingestService,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges admin credentials for a Bearer token.
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return response.BadRequest(c, "Email and password are required")
	}

	token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return response.Unauthorized(c, "Invalid credentials")
		}
		return response.ServerError(c, "Failed to log in")
	}

	return c.JSON(fiber.Map{"token": token})
}

// Reload re-ingests the CSV export and swaps the snapshot.
func (h *AdminHandler) Reload(c *fiber.Ctx) error {
	result, err := h.ingestService.LoadFromFile(c.Context(), config.DataFilePath())
	if err != nil {
		if errors.Is(err, ingest.ErrDataFileMissing) {
			return response.Error(c, fiber.StatusNotFound, err.Error())
		}
		return response.ServerError(c, "Failed to reload data")
	}

	return response.Success(c, "Snapshot reloaded", result)
}

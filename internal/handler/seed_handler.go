package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"psisite/internal/seed"
)

// SeedHandler handles seed data endpoints.
type SeedHandler struct {
	seeder  *seed.Seeder
	content *seed.Content
}

// NewSeedHandler creates a new seed handler applying content.
func NewSeedHandler(seeder *seed.Seeder, content *seed.Content) *SeedHandler {
	return &SeedHandler{seeder: seeder, content: content}
}

// SeedResponse represents the seed response.
type SeedResponse struct {
	Message string      `json:"message"`
	Created seed.Result `json:"created"`
}

// SeedDefaults godoc
// @Summary Fill missing config keys and empty content lists with defaults
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SeedResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/seed [post]
func (h *SeedHandler) SeedDefaults(c echo.Context) error {
	result, err := h.seeder.Apply(c.Request().Context(), h.content)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, SeedResponse{
		Message: "Defaults seeded successfully",
		Created: result,
	})
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio/internal/db"
	"portfolio/internal/service"
)

// SeedHandler handles seed data endpoints.
type SeedHandler struct {
	seedService service.SeedService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(seedService service.SeedService) *SeedHandler {
	return &SeedHandler{seedService: seedService}
}

// SeedResponse represents the seed response.
type SeedResponse struct {
	Message string        `json:"message"`
	Result  db.SeedResult `json:"result"`
}

// Seed godoc
// @Summary Seed empty content tables from the bundled snapshot
// @Description Tables that already hold rows are left untouched.
// @Tags seed
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SeedResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /seed [post]
func (h *SeedHandler) Seed(c echo.Context) error {
	res, err := h.seedService.Seed(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, SeedResponse{Message: "Données initialisées", Result: res})
}

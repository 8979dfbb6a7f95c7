package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Pinger is implemented by the store and the cache.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports dependency status.
type HealthHandler struct {
	store Pinger
	cache Pinger
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(store, cache Pinger) *HealthHandler {
	return &HealthHandler{store: store, cache: cache}
}

// HealthResponse is the health check payload. Status is "degraded" when the database is
// down: reads are then served from the snapshot.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func (h *HealthHandler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	resp := HealthResponse{Status: "ok", Database: "up", Cache: "up"}
	if err := h.store.Ping(ctx); err != nil {
		resp.Status = "degraded"
		resp.Database = "down"
	}
	if err := h.cache.Ping(ctx); err != nil {
		resp.Cache = "down"
	}
	return c.JSON(http.StatusOK, resp)
}

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SwatiP012/Momo-Muffin-backend/internal/server/http/dto"
)

type HealthHandler struct {
	facade HealthFacade
	logger *slog.Logger
}

func NewHealthHandler(facade HealthFacade, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{facade: facade, logger: logger}
}

// Check handles GET /healthz.
func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.facade.HealthCheck(c.Request.Context()); err != nil {
		h.logger.Warn("health check failed", slog.Any("error", err))
		c.JSON(http.StatusServiceUnavailable, dto.Fail("storage unavailable"))
		return
	}
	c.JSON(http.StatusOK, dto.OK(gin.H{"status": "ok"}))
}

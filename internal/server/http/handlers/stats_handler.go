package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SwatiP012/Momo-Muffin-backend/internal/server/http/dto"
)

// StatsHandler serves dashboard and reporting endpoints.
type StatsHandler struct {
	facade StatsFacade
	logger *slog.Logger
}

func NewStatsHandler(facade StatsFacade, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{facade: facade, logger: logger}
}

// Dashboard handles GET /api/admin/stats.
func (h *StatsHandler) Dashboard(c *gin.Context) {
	stats, err := h.facade.Dashboard(c.Request.Context(), CurrentActor(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.NewDashboardResponse(stats)))
}

// Inventory handles GET /api/admin/inventory-status.
func (h *StatsHandler) Inventory(c *gin.Context) {
	inventory, err := h.facade.InventoryStatus(c.Request.Context(), CurrentActor(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.NewInventoryResponse(inventory)))
}

// Insights handles GET /api/admin/business-insights.
func (h *StatsHandler) Insights(c *gin.Context) {
	insights, err := h.facade.BusinessInsights(c.Request.Context(), CurrentActor(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.NewInsightsResponse(insights)))
}

// Platform handles GET /api/superadmin/stats.
func (h *StatsHandler) Platform(c *gin.Context) {
	stats, err := h.facade.PlatformStats(c.Request.Context(), CurrentActor(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.NewPlatformStatsResponse(stats)))
}

// AdminSummary handles GET /api/superadmin/admins/:id/stats.
func (h *StatsHandler) AdminSummary(c *gin.Context) {
	adminID, ok := pathID(c, "id")
	if !ok {
		return
	}

	summary, err := h.facade.AdminSummary(c.Request.Context(), CurrentActor(c), adminID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.NewAdminSummaryResponse(summary)))
}

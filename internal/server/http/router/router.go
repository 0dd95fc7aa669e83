package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/SwatiP012/Momo-Muffin-backend/internal/domain/model"
	"github.com/SwatiP012/Momo-Muffin-backend/internal/metrics"
	"github.com/SwatiP012/Momo-Muffin-backend/internal/server/http/handlers"
	"github.com/SwatiP012/Momo-Muffin-backend/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StorefrontFacade, m *metrics.Metrics, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(m.Middleware())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade, logger)
	orderHandler := handlers.NewOrderHandler(facade, logger)
	statsHandler := handlers.NewStatsHandler(facade, logger)
	storeHandler := handlers.NewStoreHandler(facade, logger)
	healthHandler := handlers.NewHealthHandler(facade, logger)

	engine.GET("/healthz", healthHandler.Check)
	engine.GET("/metrics", gin.WrapH(m.Handler()))

	api := engine.Group("/api")
	api.POST("/auth/login", authHandler.Login)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(facade), middleware.RequireRole(model.RoleAdmin, model.RoleSuperAdmin))
	admin.GET("/orders", orderHandler.List)
	admin.GET("/orders/:id", orderHandler.Get)
	admin.PUT("/orders/:id", orderHandler.UpdateStatus)
	admin.GET("/stats", statsHandler.Dashboard)
	admin.GET("/inventory-status", statsHandler.Inventory)
	admin.GET("/business-insights", statsHandler.Insights)

	super := api.Group("/superadmin")
	super.Use(middleware.AuthRequired(facade), middleware.RequireRole(model.RoleSuperAdmin))
	super.GET("/stores", storeHandler.List)
	super.PUT("/stores/:id/approve", storeHandler.Approve)
	super.PUT("/stores/:id/reject", storeHandler.Reject)
	super.GET("/stats", statsHandler.Platform)
	super.GET("/admins/:id/stats", statsHandler.AdminSummary)

	return engine
}

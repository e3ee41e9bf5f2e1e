package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"github.com/charangentem-coder/rental-price-predictor/internal/handler"
	"github.com/charangentem-coder/rental-price-predictor/internal/middleware"
)

// Setup registers all routes.
func Setup(
	h *server.Hertz,
	predictHandler *handler.PredictHandler,
	metricsHandler *handler.MetricsHandler,
	historyHandler *handler.HistoryHandler,
	healthHandler *handler.HealthHandler,
) {
	// Global middleware
	h.Use(middleware.Recovery())
	h.Use(middleware.Logger())
	h.Use(middleware.CORS())

	// Health check routes
	h.GET("/ping", healthHandler.Ping)
	h.GET("/health/live", healthHandler.Liveness)
	h.GET("/health/ready", healthHandler.Readiness)

	// Form UI
	h.GET("/", predictHandler.Home)
	h.POST("/predict", predictHandler.PredictForm)

	// JSON API
	apiV1 := h.Group("/api/v1")
	{
		apiV1.POST("/predict", predictHandler.PredictAPI)
		apiV1.GET("/metrics", metricsHandler.Get)
		apiV1.GET("/history", historyHandler.List)
	}
}

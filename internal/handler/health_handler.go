package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/charangentem-coder/rental-price-predictor/internal/storage"
)

// HealthHandler reports process and dependency health.
type HealthHandler struct {
	trained bool
	history *storage.HistoryStore
}

// NewHealthHandler wires the handler.
func NewHealthHandler(trained bool, history *storage.HistoryStore) *HealthHandler {
	return &HealthHandler{trained: trained, history: history}
}

// Ping is the basic reachability check.
func (h *HealthHandler) Ping(ctx context.Context, c *app.RequestContext) {
	c.JSON(consts.StatusOK, utils.H{"status": "ok", "message": "pong"})
}

// Liveness reports that the process is running.
func (h *HealthHandler) Liveness(ctx context.Context, c *app.RequestContext) {
	c.JSON(consts.StatusOK, utils.H{"status": "alive"})
}

// Readiness reports whether the service can serve predictions. An untrained
// model is reported but does not make the service unready; the UI still
// serves the "train first" guidance.
func (h *HealthHandler) Readiness(ctx context.Context, c *app.RequestContext) {
	model := "trained"
	if !h.trained {
		model = "not_trained"
	}
	if h.history != nil {
		if err := h.history.Ping(); err != nil {
			c.JSON(consts.StatusServiceUnavailable, utils.H{
				"status":   "not_ready",
				"model":    model,
				"database": "unhealthy",
				"error":    err.Error(),
			})
			return
		}
	}
	c.JSON(consts.StatusOK, utils.H{
		"status":   "ready",
		"model":    model,
		"database": "healthy",
	})
}

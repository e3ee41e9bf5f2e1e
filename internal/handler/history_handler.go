package handler

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/charangentem-coder/rental-price-predictor/internal/storage"
)

// HistoryHandler lists recently served predictions.
type HistoryHandler struct {
	history *storage.HistoryStore
	log     *slog.Logger
}

// NewHistoryHandler wires the handler.
func NewHistoryHandler(history *storage.HistoryStore, log *slog.Logger) *HistoryHandler {
	return &HistoryHandler{history: history, log: log}
}

// List returns the newest predictions, up to ?limit (default 20, max 100).
func (h *HistoryHandler) List(ctx context.Context, c *app.RequestContext) {
	if h.history == nil {
		SuccessResponse(c, map[string]interface{}{
			"items":      []storage.Prediction{},
			"totalCount": 0,
		})
		return
	}
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			BadRequestResponse(c, "limit must be a positive integer")
			return
		}
		if n > 100 {
			n = 100
		}
		limit = n
	}

	items, err := h.history.Recent(limit)
	if err != nil {
		h.log.Error("failed to list prediction history", "error", err)
		InternalErrorResponse(c)
		return
	}
	SuccessResponse(c, map[string]interface{}{
		"items":      items,
		"totalCount": len(items),
	})
}

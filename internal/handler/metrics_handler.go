package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/charangentem-coder/rental-price-predictor/pkg/pipeline"
)

// MetricsHandler exposes the evaluation metrics stored with the artifact.
type MetricsHandler struct {
	pipe *pipeline.Pipeline
}

// NewMetricsHandler wires the handler; pipe may be nil when untrained.
func NewMetricsHandler(pipe *pipeline.Pipeline) *MetricsHandler {
	return &MetricsHandler{pipe: pipe}
}

// Get returns the held-out MAE, RMSE and R2 from training time.
func (h *MetricsHandler) Get(ctx context.Context, c *app.RequestContext) {
	if h.pipe == nil {
		NotTrainedResponse(c)
		return
	}
	SuccessResponse(c, map[string]interface{}{
		"mae":        h.pipe.Metrics.MAE,
		"rmse":       h.pipe.Metrics.RMSE,
		"r2":         h.pipe.Metrics.R2,
		"trained_at": h.pipe.TrainedAt,
	})
}

package handler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/charangentem-coder/rental-price-predictor/internal/storage"
	"github.com/charangentem-coder/rental-price-predictor/pkg/pipeline"
)

// PredictHandler serves the form UI and the prediction endpoints. The
// pipeline is loaded once at startup and read-only afterwards; a nil
// pipeline means no artifact existed, and every prediction answers with the
// "train first" condition instead of failing.
type PredictHandler struct {
	pipe    *pipeline.Pipeline
	history *storage.HistoryStore
	log     *slog.Logger
}

// NewPredictHandler wires the handler. pipe may be nil when no artifact has
// been trained yet; history may be nil when the store is unavailable.
func NewPredictHandler(pipe *pipeline.Pipeline, history *storage.HistoryStore, log *slog.Logger) *PredictHandler {
	return &PredictHandler{pipe: pipe, history: history, log: log}
}

// Trained reports whether a fitted pipeline is loaded.
func (h *PredictHandler) Trained() bool { return h.pipe != nil }

type pageData struct {
	Trained     bool
	Metrics     pipeline.Metrics
	Cities      []string
	Furnishings []string
	Recent      []storage.Prediction
}

// Home renders the prediction form with the fitted category lists and the
// stored evaluation metrics.
func (h *PredictHandler) Home(ctx context.Context, c *app.RequestContext) {
	data := pageData{Trained: h.Trained()}
	if h.Trained() {
		data.Metrics = h.pipe.Metrics
		data.Cities = h.pipe.Vectorizer.CategoryValues("City")
		data.Furnishings = h.pipe.Vectorizer.CategoryValues("Furnishing")
	}
	if h.history != nil {
		if recent, err := h.history.Recent(10); err == nil {
			data.Recent = recent
		} else {
			h.log.Warn("failed to load prediction history", "error", err)
		}
	}
	c.HTML(consts.StatusOK, "index.html", data)
}

type resultData struct {
	Request PredictRequest
	Rent    string
}

// PredictForm handles the form submission and renders the result page.
func (h *PredictHandler) PredictForm(ctx context.Context, c *app.RequestContext) {
	if !h.Trained() {
		c.HTML(consts.StatusServiceUnavailable, "error.html",
			"No trained model is available. Run the trainer first.")
		return
	}
	var req PredictRequest
	if err := c.Bind(&req); err != nil {
		c.HTML(consts.StatusBadRequest, "error.html", "The submitted form could not be read.")
		return
	}
	if err := req.Validate(); err != nil {
		c.HTML(consts.StatusBadRequest, "error.html", err.Error())
		return
	}

	rent := h.predict(req)
	c.HTML(consts.StatusOK, "result.html", resultData{
		Request: req,
		Rent:    fmt.Sprintf("%.0f", rent),
	})
}

// PredictAPI is the JSON variant of PredictForm.
func (h *PredictHandler) PredictAPI(ctx context.Context, c *app.RequestContext) {
	if !h.Trained() {
		NotTrainedResponse(c)
		return
	}
	var req PredictRequest
	if err := c.Bind(&req); err != nil {
		BadRequestResponse(c, "request body could not be parsed")
		return
	}
	if err := req.Validate(); err != nil {
		BadRequestResponse(c, err.Error())
		return
	}

	rent := h.predict(req)
	SuccessResponse(c, map[string]interface{}{
		"predicted_rent": rent,
	})
}

// predict runs the pipeline and records the prediction, logging but never
// surfacing history failures.
func (h *PredictHandler) predict(req PredictRequest) float64 {
	listing := req.Listing()
	rent := h.pipe.Predict(listing)
	if h.history != nil {
		if _, err := h.history.Record(listing, rent); err != nil {
			h.log.Warn("failed to record prediction", "error", err)
		}
	}
	return rent
}

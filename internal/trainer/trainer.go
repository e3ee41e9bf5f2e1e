// Package trainer runs the one-shot training job: it fits the preprocessing
// stage and the forest on the training split, evaluates on the held-out
// split and persists the resulting pipeline. Training always persists;
// metrics are reported, never used as a quality gate.
package trainer

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/charangentem-coder/rental-price-predictor/internal/config"
	"github.com/charangentem-coder/rental-price-predictor/pkg/dataset"
	"github.com/charangentem-coder/rental-price-predictor/pkg/mlmodel"
	"github.com/charangentem-coder/rental-price-predictor/pkg/pipeline"
	"github.com/charangentem-coder/rental-price-predictor/pkg/preprocess"
)

// Trainer orchestrates one training run.
type Trainer struct {
	cfg *config.Config
	log *slog.Logger
}

// New returns a trainer using the given configuration.
func New(cfg *config.Config, log *slog.Logger) *Trainer {
	return &Trainer{cfg: cfg, log: log}
}

// Run executes the full training job and returns the persisted pipeline.
func (t *Trainer) Run() (*pipeline.Pipeline, error) {
	tc := t.cfg.Training

	t.log.Info("loading dataset", "path", tc.DatasetPath)
	ds, err := dataset.LoadCSV(tc.DatasetPath)
	if err != nil {
		return nil, err
	}
	t.log.Info("dataset loaded", "records", ds.Len())

	train, test := dataset.TrainTestSplit(ds, tc.TestRatio, tc.Seed)
	if train.Len() == 0 || test.Len() == 0 {
		return nil, fmt.Errorf("trainer: dataset of %d records is too small for a %g test split", ds.Len(), tc.TestRatio)
	}
	t.log.Info("dataset split", "train", train.Len(), "test", test.Len(), "seed", tc.Seed)

	// Fit on the training split only; the same fitted stage is reused for
	// the held-out split and persisted for inference.
	vectorizer, err := preprocess.NewFeatureVectorizer().Fit(train.Listings)
	if err != nil {
		return nil, err
	}
	t.log.Info("vectorizer fitted", "vector_width", vectorizer.Width())

	forest := mlmodel.NewRandomForestRegressor(
		mlmodel.WithNEstimators(tc.NEstimators),
		mlmodel.WithForestMaxDepth(tc.MaxDepth),
		mlmodel.WithForestMinSamplesSplit(tc.MinSamplesSplit),
		mlmodel.WithForestMinSamplesLeaf(tc.MinSamplesLeaf),
		mlmodel.WithForestMaxFeatures(tc.MaxFeatures),
		mlmodel.WithSeed(tc.Seed),
	)
	t.log.Info("training random forest",
		"n_estimators", tc.NEstimators,
		"max_depth", tc.MaxDepth,
		"min_samples_split", tc.MinSamplesSplit,
		"min_samples_leaf", tc.MinSamplesLeaf,
	)
	start := time.Now()
	if err := forest.Fit(vectorizer.TransformAll(train.Listings), train.Rents); err != nil {
		return nil, err
	}
	t.log.Info("training finished", "elapsed", time.Since(start).String())

	predicted := forest.Predict(vectorizer.TransformAll(test.Listings))
	metrics := pipeline.Metrics{
		MAE:  mlmodel.MAE(test.Rents, predicted),
		RMSE: mlmodel.RMSE(test.Rents, predicted),
		R2:   mlmodel.R2(test.Rents, predicted),
	}
	t.log.Info("held-out evaluation",
		"mae", metrics.MAE,
		"rmse", metrics.RMSE,
		"r2", metrics.R2,
	)

	pipe := &pipeline.Pipeline{
		Vectorizer: vectorizer,
		Forest:     forest,
		Metrics:    metrics,
		TrainedAt:  time.Now(),
	}

	if err := os.MkdirAll(filepath.Dir(t.cfg.Model.ArtifactPath), 0o755); err != nil {
		return nil, fmt.Errorf("trainer: create artifact directory: %w", err)
	}
	if err := pipe.Save(t.cfg.Model.ArtifactPath); err != nil {
		return nil, err
	}
	t.log.Info("model artifact saved", "path", t.cfg.Model.ArtifactPath)

	if t.cfg.Model.MetricsPath != "" {
		if err := writeMetricsFile(t.cfg.Model.MetricsPath, metrics); err != nil {
			return nil, err
		}
		t.log.Info("metrics summary saved", "path", t.cfg.Model.MetricsPath)
	}

	if tc.PlotPath != "" {
		if err := savePredictionPlot(tc.PlotPath, test.Rents, predicted); err != nil {
			// The plot is a diagnostic; a failure should not fail the run.
			t.log.Warn("failed to save prediction plot", "error", err)
		} else {
			t.log.Info("prediction plot saved", "path", tc.PlotPath)
		}
	}

	return pipe, nil
}

func writeMetricsFile(path string, m pipeline.Metrics) error {
	content := fmt.Sprintf(
		"Model Evaluation Metrics\n"+
			"==============================\n"+
			"Mean Absolute Error (MAE): %.2f\n"+
			"Root Mean Squared Error (RMSE): %.2f\n"+
			"R2 Score: %.4f\n",
		m.MAE, m.RMSE, m.R2,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("trainer: write metrics file: %w", err)
	}
	return nil
}

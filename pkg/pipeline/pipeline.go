// Package pipeline defines the fitted pipeline artifact: the trained
// vectorizer, the trained forest and the held-out metrics, persisted as one
// blob and treated as read-only after training.
package pipeline

import (
	"encoding/gob"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charangentem-coder/rental-price-predictor/pkg/dataset"
	"github.com/charangentem-coder/rental-price-predictor/pkg/mlmodel"
	"github.com/charangentem-coder/rental-price-predictor/pkg/preprocess"
)

// ErrNotTrained reports that no usable model artifact exists. Callers should
// instruct the user to run training rather than treat it as an I/O failure.
var ErrNotTrained = errors.New("pipeline: no trained model artifact, run the trainer first")

// Metrics are the held-out evaluation scores computed once at training time.
type Metrics struct {
	MAE  float64
	RMSE float64
	R2   float64
}

// Pipeline is the deployable unit: preprocessing and model fitted on the
// same training split, never refitted afterwards.
type Pipeline struct {
	Vectorizer *preprocess.FittedVectorizer
	Forest     *mlmodel.RandomForestRegressor
	Metrics    Metrics
	TrainedAt  time.Time
}

// Predict transforms one listing through the fitted vectorizer and averages
// the forest. The result is clamped at zero; a negative rent is meaningless.
func (p *Pipeline) Predict(l dataset.Listing) float64 {
	pred := p.Forest.PredictOne(p.Vectorizer.Transform(l))
	if pred < 0 {
		return 0
	}
	return pred
}

// Save writes the whole artifact to path as a single gob blob.
func (p *Pipeline) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pipeline: create %s: %w", path, err)
	}
	defer f.Close()
	if err := gob.NewEncoder(f).Encode(p); err != nil {
		return fmt.Errorf("pipeline: encode artifact: %w", err)
	}
	return nil
}

// Load reads a previously saved artifact. A missing or undecodable file
// yields ErrNotTrained so serving code can distinguish "train first" from
// unrelated failures.
func Load(path string) (*Pipeline, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w (no artifact at %s)", ErrNotTrained, path)
		}
		return nil, fmt.Errorf("pipeline: open %s: %w", path, err)
	}
	defer f.Close()

	var p Pipeline
	if err := gob.NewDecoder(f).Decode(&p); err != nil {
		return nil, fmt.Errorf("%w (artifact at %s is unreadable: %v)", ErrNotTrained, path, err)
	}
	if p.Vectorizer == nil || p.Forest == nil {
		return nil, fmt.Errorf("%w (artifact at %s is incomplete)", ErrNotTrained, path)
	}
	return &p, nil
}

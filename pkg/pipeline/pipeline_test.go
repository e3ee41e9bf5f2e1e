package pipeline

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charangentem-coder/rental-price-predictor/pkg/dataset"
	"github.com/charangentem-coder/rental-price-predictor/pkg/mlmodel"
	"github.com/charangentem-coder/rental-price-predictor/pkg/preprocess"
)

// syntheticDataset builds n listings whose rent is 20*sqft plus noise, so a
// fitted model has a known relationship to recover.
func syntheticDataset(n int, seed int64) *dataset.Dataset {
	rnd := rand.New(rand.NewSource(seed))
	cities := []string{"A", "B"}
	locations := []string{"North", "South", "East", "West"}
	furnishings := []string{"Furnished", "Semi-Furnished", "Unfurnished"}

	ds := &dataset.Dataset{}
	for i := 0; i < n; i++ {
		sqft := 500 + rnd.Float64()*1000
		l := dataset.Listing{
			City:        cities[rnd.Intn(len(cities))],
			Location:    locations[rnd.Intn(len(locations))],
			BHK:         1 + rnd.Intn(4),
			SizeSqft:    sqft,
			Bathrooms:   1 + rnd.Intn(3),
			Floor:       rnd.Intn(10),
			TotalFloors: 10,
			Furnishing:  furnishings[rnd.Intn(len(furnishings))],
			PropertyAge: float64(rnd.Intn(20)),
			Parking:     rnd.Intn(3),
		}
		ds.Listings = append(ds.Listings, l)
		ds.Rents = append(ds.Rents, 20*sqft+rnd.NormFloat64()*500)
	}
	return ds
}

func trainPipeline(t *testing.T, ds *dataset.Dataset) *Pipeline {
	t.Helper()
	vectorizer, err := preprocess.NewFeatureVectorizer().Fit(ds.Listings)
	require.NoError(t, err)

	forest := mlmodel.NewRandomForestRegressor(
		mlmodel.WithNEstimators(30),
		mlmodel.WithForestMaxDepth(12),
		mlmodel.WithForestMinSamplesSplit(5),
		mlmodel.WithForestMinSamplesLeaf(2),
		mlmodel.WithSeed(42),
	)
	require.NoError(t, forest.Fit(vectorizer.TransformAll(ds.Listings), ds.Rents))

	predicted := forest.Predict(vectorizer.TransformAll(ds.Listings))
	return &Pipeline{
		Vectorizer: vectorizer,
		Forest:     forest,
		Metrics: Metrics{
			MAE:  mlmodel.MAE(ds.Rents, predicted),
			RMSE: mlmodel.RMSE(ds.Rents, predicted),
			R2:   mlmodel.R2(ds.Rents, predicted),
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ds := syntheticDataset(120, 5)
	pipe := trainPipeline(t, ds)

	path := filepath.Join(t.TempDir(), "model.gob")
	require.NoError(t, pipe.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)

	// A fixed set of probes must predict identically after the round trip.
	probes := ds.Listings[:5]
	for _, l := range probes {
		assert.InDelta(t, pipe.Predict(l), loaded.Predict(l), 1e-9)
	}
	assert.InDelta(t, pipe.Metrics.R2, loaded.Metrics.R2, 1e-12)
}

func TestLoadMissingArtifactIsNotTrained(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.gob"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotTrained)
}

func TestLoadCorruptArtifactIsNotTrained(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.gob")
	require.NoError(t, os.WriteFile(path, []byte("not a gob blob"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotTrained)
}

func TestPredictionIsNonNegative(t *testing.T) {
	ds := syntheticDataset(80, 9)
	// Force negative targets; the clamp keeps the reported rent at zero.
	for i := range ds.Rents {
		ds.Rents[i] = -1000
	}
	pipe := trainPipeline(t, ds)
	assert.Equal(t, 0.0, pipe.Predict(ds.Listings[0]))
}

func TestEndToEndLinearRelationship(t *testing.T) {
	ds := syntheticDataset(200, 42)
	pipe := trainPipeline(t, ds)

	query := dataset.Listing{
		City:        "A",
		Location:    "North",
		BHK:         2,
		SizeSqft:    1000,
		Bathrooms:   2,
		Floor:       3,
		TotalFloors: 10,
		Furnishing:  "Furnished",
		PropertyAge: 5,
		Parking:     1,
	}
	// The generator prices 1000 sqft at 20000; the forest should land in a
	// generous band around it despite the noise.
	predicted := pipe.Predict(query)
	assert.InDelta(t, 20000, predicted, 3000)
}

package preprocess

import (
	"errors"
	"math"
	"sort"

	"github.com/charangentem-coder/rental-price-predictor/pkg/dataset"
)

// Numeric features in vector order, followed by one indicator block per
// categorical feature. The same order is used at training and inference
// time; changing it invalidates every persisted artifact.
var (
	numericNames     = []string{"BHK", "Size_sqft", "Bathrooms", "Floor", "Total_Floors", "Property_Age", "Parking"}
	categoricalNames = []string{"City", "Location", "Furnishing"}
)

// FeatureVectorizer is the unfitted preprocessing stage. It carries no
// learned state; calling Fit produces an immutable FittedVectorizer.
// Keeping Transform off this type makes refitting-then-transforming the
// only way to use fresh statistics, so inference code holding a
// *FittedVectorizer cannot accidentally refit it.
type FeatureVectorizer struct{}

// NewFeatureVectorizer returns an unfitted vectorizer for the listing schema.
func NewFeatureVectorizer() *FeatureVectorizer { return &FeatureVectorizer{} }

// FittedVectorizer holds the category lists and scaling statistics learned
// from one training split. It is read-only after Fit.
type FittedVectorizer struct {
	// Categories[i] lists the observed values of categoricalNames[i] in
	// sorted order; each value owns one indicator column.
	Categories [][]string

	// Mean and Std are per-numeric-feature, aligned with numericNames.
	Mean []float64
	Std  []float64
}

// Fit learns category sets and per-feature mean/std from the training
// listings and returns the fitted stage.
func (v *FeatureVectorizer) Fit(listings []dataset.Listing) (*FittedVectorizer, error) {
	if len(listings) == 0 {
		return nil, errors.New("preprocess: cannot fit on an empty training set")
	}

	fitted := &FittedVectorizer{
		Categories: make([][]string, len(categoricalNames)),
		Mean:       make([]float64, len(numericNames)),
		Std:        make([]float64, len(numericNames)),
	}

	for ci := range categoricalNames {
		seen := map[string]struct{}{}
		for _, l := range listings {
			seen[categoricalValue(l, ci)] = struct{}{}
		}
		values := make([]string, 0, len(seen))
		for val := range seen {
			values = append(values, val)
		}
		sort.Strings(values)
		fitted.Categories[ci] = values
	}

	n := float64(len(listings))
	for ni := range numericNames {
		sum := 0.0
		for _, l := range listings {
			sum += numericValue(l, ni)
		}
		mean := sum / n
		varSum := 0.0
		for _, l := range listings {
			d := numericValue(l, ni) - mean
			varSum += d * d
		}
		fitted.Mean[ni] = mean
		fitted.Std[ni] = math.Sqrt(varSum / n)
		if fitted.Std[ni] == 0 {
			fitted.Std[ni] = 1
		}
	}
	return fitted, nil
}

// Width returns the length of every vector this stage produces.
func (f *FittedVectorizer) Width() int {
	w := len(numericNames)
	for _, values := range f.Categories {
		w += len(values)
	}
	return w
}

// Transform maps one listing to its fixed-length feature vector: scaled
// numeric block first, then one indicator block per categorical feature.
// A category not seen at fit time yields an all-zero block.
func (f *FittedVectorizer) Transform(l dataset.Listing) []float64 {
	out := make([]float64, 0, f.Width())
	for ni := range numericNames {
		out = append(out, (numericValue(l, ni)-f.Mean[ni])/f.Std[ni])
	}
	for ci, values := range f.Categories {
		block := make([]float64, len(values))
		if j, ok := indexOf(values, categoricalValue(l, ci)); ok {
			block[j] = 1
		}
		out = append(out, block...)
	}
	return out
}

// TransformAll maps a slice of listings to a row-per-listing matrix.
func (f *FittedVectorizer) TransformAll(listings []dataset.Listing) [][]float64 {
	X := make([][]float64, len(listings))
	for i, l := range listings {
		X[i] = f.Transform(l)
	}
	return X
}

// CategoryValues returns the fitted categories for a feature name, used by
// the UI to populate dropdowns. Returns nil for unknown feature names.
func (f *FittedVectorizer) CategoryValues(feature string) []string {
	for ci, name := range categoricalNames {
		if name == feature {
			return f.Categories[ci]
		}
	}
	return nil
}

// indexOf binary-searches values (sorted at fit time) for val.
func indexOf(values []string, val string) (int, bool) {
	i := sort.SearchStrings(values, val)
	if i < len(values) && values[i] == val {
		return i, true
	}
	return 0, false
}

func numericValue(l dataset.Listing, i int) float64 {
	switch i {
	case 0:
		return float64(l.BHK)
	case 1:
		return l.SizeSqft
	case 2:
		return float64(l.Bathrooms)
	case 3:
		return float64(l.Floor)
	case 4:
		return float64(l.TotalFloors)
	case 5:
		return l.PropertyAge
	default:
		return float64(l.Parking)
	}
}

func categoricalValue(l dataset.Listing, i int) string {
	switch i {
	case 0:
		return l.City
	case 1:
		return l.Location
	default:
		return l.Furnishing
	}
}

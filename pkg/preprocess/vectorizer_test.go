package preprocess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charangentem-coder/rental-price-predictor/pkg/dataset"
)

func sampleListings() []dataset.Listing {
	return []dataset.Listing{
		{City: "Pune", Location: "Baner", BHK: 2, SizeSqft: 100, Bathrooms: 1, Floor: 1, TotalFloors: 4, Furnishing: "Furnished", PropertyAge: 5, Parking: 1},
		{City: "Mumbai", Location: "Andheri", BHK: 3, SizeSqft: 300, Bathrooms: 2, Floor: 2, TotalFloors: 8, Furnishing: "Unfurnished", PropertyAge: 10, Parking: 0},
	}
}

func TestFitRejectsEmptyTrainingSet(t *testing.T) {
	_, err := NewFeatureVectorizer().Fit(nil)
	require.Error(t, err)
}

func TestTransformIsDeterministic(t *testing.T) {
	fitted, err := NewFeatureVectorizer().Fit(sampleListings())
	require.NoError(t, err)

	l := sampleListings()[0]
	first := fitted.Transform(l)
	second := fitted.Transform(l)
	assert.Equal(t, first, second)
}

func TestVectorWidthIsFixed(t *testing.T) {
	listings := sampleListings()
	fitted, err := NewFeatureVectorizer().Fit(listings)
	require.NoError(t, err)

	// 7 numeric features + 2 cities + 2 locations + 2 furnishing states.
	assert.Equal(t, 13, fitted.Width())
	for _, l := range listings {
		assert.Len(t, fitted.Transform(l), fitted.Width())
	}
}

func TestScalingRoundTrip(t *testing.T) {
	// Size_sqft values 100 and 300: mean 200, std 100.
	fitted, err := NewFeatureVectorizer().Fit(sampleListings())
	require.NoError(t, err)

	at := func(size float64) float64 {
		l := sampleListings()[0]
		l.SizeSqft = size
		return fitted.Transform(l)[1] // Size_sqft is the second numeric feature
	}
	assert.InDelta(t, 0.0, at(200), 1e-12, "value equal to the mean scales to 0")
	assert.InDelta(t, 1.0, at(300), 1e-12, "value equal to mean+std scales to 1")
}

func TestConstantFeatureScalesToZero(t *testing.T) {
	listings := sampleListings()
	listings[0].Parking = 2
	listings[1].Parking = 2
	fitted, err := NewFeatureVectorizer().Fit(listings)
	require.NoError(t, err)

	// std==0 is replaced by 1 so the scaled value is exactly 0, not NaN.
	vec := fitted.Transform(listings[0])
	assert.Equal(t, 0.0, vec[6])
}

func TestUnknownCategoryYieldsZeroBlock(t *testing.T) {
	fitted, err := NewFeatureVectorizer().Fit(sampleListings())
	require.NoError(t, err)

	known := sampleListings()[0]
	unknown := known
	unknown.City = "Delhi" // never seen at fit time

	knownVec := fitted.Transform(known)
	unknownVec := fitted.Transform(unknown)
	require.Len(t, unknownVec, len(knownVec), "unknown category must not change the vector shape")

	// The city block spans the two columns after the numeric block.
	cityBlock := unknownVec[7:9]
	assert.Equal(t, []float64{0, 0}, cityBlock)

	// Exactly one indicator is set for a known city.
	assert.Equal(t, 1.0, knownVec[7]+knownVec[8])
}

func TestCategoryValues(t *testing.T) {
	fitted, err := NewFeatureVectorizer().Fit(sampleListings())
	require.NoError(t, err)

	assert.Equal(t, []string{"Mumbai", "Pune"}, fitted.CategoryValues("City"))
	assert.Equal(t, []string{"Furnished", "Unfurnished"}, fitted.CategoryValues("Furnishing"))
	assert.Nil(t, fitted.CategoryValues("NoSuchFeature"))
}

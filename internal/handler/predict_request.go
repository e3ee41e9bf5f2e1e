package handler

import (
	"errors"
	"strings"

	"github.com/charangentem-coder/rental-price-predictor/pkg/dataset"
)

// PredictRequest carries one listing's raw feature values from the form or
// the JSON API. Categorical values outside the training set are accepted
// (the vectorizer maps them to all-zero indicators); numeric values outside
// their physical domain are rejected before they reach the model.
type PredictRequest struct {
	City        string  `form:"city" json:"city"`
	Location    string  `form:"location" json:"location"`
	BHK         int     `form:"bhk" json:"bhk"`
	SizeSqft    float64 `form:"size_sqft" json:"size_sqft"`
	Bathrooms   int     `form:"bathrooms" json:"bathrooms"`
	Floor       int     `form:"floor" json:"floor"`
	TotalFloors int     `form:"total_floors" json:"total_floors"`
	Furnishing  string  `form:"furnishing" json:"furnishing"`
	PropertyAge float64 `form:"property_age" json:"property_age"`
	Parking     int     `form:"parking" json:"parking"`
}

// Validate checks the numeric domains from the listing schema and returns
// one error naming every violated field.
func (r *PredictRequest) Validate() error {
	var problems []string
	if strings.TrimSpace(r.City) == "" {
		problems = append(problems, "city is required")
	}
	if strings.TrimSpace(r.Location) == "" {
		problems = append(problems, "location is required")
	}
	if strings.TrimSpace(r.Furnishing) == "" {
		problems = append(problems, "furnishing is required")
	}
	if r.BHK < 0 {
		problems = append(problems, "bhk must not be negative")
	}
	if r.SizeSqft <= 0 {
		problems = append(problems, "size_sqft must be positive")
	}
	if r.Bathrooms < 0 {
		problems = append(problems, "bathrooms must not be negative")
	}
	if r.TotalFloors < 1 {
		problems = append(problems, "total_floors must be at least 1")
	}
	if r.TotalFloors < r.Floor {
		problems = append(problems, "total_floors must not be less than floor")
	}
	if r.PropertyAge < 0 {
		problems = append(problems, "property_age must not be negative")
	}
	if r.Parking < 0 {
		problems = append(problems, "parking must not be negative")
	}
	if len(problems) == 0 {
		return nil
	}
	return errors.New(strings.Join(problems, "; "))
}

// Listing converts the validated request to the pipeline input record.
func (r *PredictRequest) Listing() dataset.Listing {
	return dataset.Listing{
		City:        strings.TrimSpace(r.City),
		Location:    strings.TrimSpace(r.Location),
		BHK:         r.BHK,
		SizeSqft:    r.SizeSqft,
		Bathrooms:   r.Bathrooms,
		Floor:       r.Floor,
		TotalFloors: r.TotalFloors,
		Furnishing:  strings.TrimSpace(r.Furnishing),
		PropertyAge: r.PropertyAge,
		Parking:     r.Parking,
	}
}

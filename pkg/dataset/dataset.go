package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Listing is a single rental property record. Rent is carried separately in
// Dataset because inference inputs have no target.
type Listing struct {
	City        string
	Location    string
	BHK         int
	SizeSqft    float64
	Bathrooms   int
	Floor       int
	TotalFloors int
	Furnishing  string
	PropertyAge float64
	Parking     int
}

// Dataset pairs listings with their observed monthly rents.
type Dataset struct {
	Listings []Listing
	Rents    []float64
}

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.Listings) }

// Required CSV columns. Property_ID may also be present and is ignored.
var requiredColumns = []string{
	"City", "Location", "BHK", "Size_sqft", "Bathrooms",
	"Floor", "Total_Floors", "Furnishing", "Property_Age", "Parking", "Rent",
}

// LoadCSV reads the rental dataset from path. The file must have a header
// row containing every required column; a missing column is a fatal error.
func LoadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("dataset: %s must contain a header row and at least one record", path)
	}

	col := map[string]int{}
	for i, name := range records[0] {
		col[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("dataset: %s is missing required column %q", path, name)
		}
	}

	ds := &Dataset{
		Listings: make([]Listing, 0, len(records)-1),
		Rents:    make([]float64, 0, len(records)-1),
	}
	for i, rec := range records[1:] {
		row := i + 2 // 1-based, counting the header
		l, rent, err := parseRecord(rec, col)
		if err != nil {
			return nil, fmt.Errorf("dataset: %s row %d: %w", path, row, err)
		}
		ds.Listings = append(ds.Listings, l)
		ds.Rents = append(ds.Rents, rent)
	}
	return ds, nil
}

func parseRecord(rec []string, col map[string]int) (Listing, float64, error) {
	field := func(name string) string { return strings.TrimSpace(rec[col[name]]) }

	var l Listing
	var err error
	l.City = field("City")
	l.Location = field("Location")
	l.Furnishing = field("Furnishing")
	if l.BHK, err = parseInt("BHK", field("BHK")); err != nil {
		return l, 0, err
	}
	if l.SizeSqft, err = parseFloat("Size_sqft", field("Size_sqft")); err != nil {
		return l, 0, err
	}
	if l.Bathrooms, err = parseInt("Bathrooms", field("Bathrooms")); err != nil {
		return l, 0, err
	}
	if l.Floor, err = parseInt("Floor", field("Floor")); err != nil {
		return l, 0, err
	}
	if l.TotalFloors, err = parseInt("Total_Floors", field("Total_Floors")); err != nil {
		return l, 0, err
	}
	if l.PropertyAge, err = parseFloat("Property_Age", field("Property_Age")); err != nil {
		return l, 0, err
	}
	if l.Parking, err = parseInt("Parking", field("Parking")); err != nil {
		return l, 0, err
	}
	rent, err := parseFloat("Rent", field("Rent"))
	if err != nil {
		return l, 0, err
	}
	return l, rent, nil
}

func parseInt(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("column %s: cannot parse %q as integer", name, s)
	}
	return v, nil
}

func parseFloat(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("column %s: cannot parse %q as number", name, s)
	}
	return v, nil
}

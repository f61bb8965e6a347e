package model

import "github.com/rotisserie/eris"

// RegionCount is one region's annual point-in-time homeless count.
type RegionCount struct {
	RegionName  string  `csv:"region_name" json:"region_name"`
	RegionCode  string  `csv:"region_code" json:"region_code"`
	Year        int     `csv:"year" json:"year"`
	Unsheltered int     `csv:"unsheltered_count" json:"unsheltered_count"`
	Sheltered   int     `csv:"sheltered_count" json:"sheltered_count"`
	Total       int     `csv:"total_count" json:"total_count"`
	Latitude    float64 `csv:"latitude" json:"latitude"`
	Longitude   float64 `csv:"longitude" json:"longitude"`
	AreaSqMiles float64 `csv:"area_sq_miles" json:"area_sq_miles"`
}

// Validate checks the PIT record invariants, including that the total equals
// the sheltered and unsheltered subtotals.
func (r *RegionCount) Validate() error {
	if r.Unsheltered < 0 || r.Sheltered < 0 || r.Total < 0 {
		return eris.Errorf("model: region %q has negative counts", r.RegionName)
	}
	if r.Total != r.Unsheltered+r.Sheltered {
		return eris.Errorf("model: region %q total %d != unsheltered %d + sheltered %d",
			r.RegionName, r.Total, r.Unsheltered, r.Sheltered)
	}
	if r.AreaSqMiles <= 0 {
		return eris.Errorf("model: region %q has non-positive area %v", r.RegionName, r.AreaSqMiles)
	}
	if err := validateCoords(r.Latitude, r.Longitude); err != nil {
		return eris.Wrapf(err, "model: region %q", r.RegionName)
	}
	return nil
}

// Density returns homeless per square mile, or 0 when the area is 0.
func (r *RegionCount) Density() float64 {
	if r.AreaSqMiles == 0 {
		return 0
	}
	return float64(r.Total) / r.AreaSqMiles
}

// UnshelteredRate returns the unsheltered share of the total as a percentage,
// or 0 when the total is 0.
func (r *RegionCount) UnshelteredRate() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Unsheltered) / float64(r.Total) * 100
}

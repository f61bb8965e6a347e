// Package model defines the three dataset record types and their invariants.
package model

import "github.com/rotisserie/eris"

// Shelter is a single shelter or service-provider location.
type Shelter struct {
	Name      string  `csv:"name" json:"name"`
	Address   string  `csv:"address" json:"address"`
	Latitude  float64 `csv:"latitude" json:"latitude"`
	Longitude float64 `csv:"longitude" json:"longitude"`
	Capacity  int     `csv:"capacity" json:"capacity"` // bed count
	Type      string  `csv:"type" json:"type"`
	Phone     string  `csv:"phone" json:"phone"`
}

// Validate checks the shelter record invariants.
func (s *Shelter) Validate() error {
	if s.Capacity < 0 {
		return eris.Errorf("model: shelter %q has negative capacity %d", s.Name, s.Capacity)
	}
	if err := validateCoords(s.Latitude, s.Longitude); err != nil {
		return eris.Wrapf(err, "model: shelter %q", s.Name)
	}
	return nil
}

// validateCoords checks that a WGS84 coordinate pair is in range.
func validateCoords(lat, lon float64) error {
	if lat < -90 || lat > 90 {
		return eris.Errorf("latitude %v out of range [-90, 90]", lat)
	}
	if lon < -180 || lon > 180 {
		return eris.Errorf("longitude %v out of range [-180, 180]", lon)
	}
	return nil
}

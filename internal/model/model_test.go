package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validShelter() Shelter {
	return Shelter{
		Name:      "San Diego Rescue Mission",
		Address:   "120 Elm St, San Diego, CA 92101",
		Latitude:  32.7143,
		Longitude: -117.1628,
		Capacity:  200,
		Type:      "Emergency Shelter",
		Phone:     "(619) 819-1100",
	}
}

func TestShelterValidate(t *testing.T) {
	s := validShelter()
	require.NoError(t, s.Validate())

	t.Run("negative capacity", func(t *testing.T) {
		s := validShelter()
		s.Capacity = -1
		assert.Error(t, s.Validate())
	})

	t.Run("latitude out of range", func(t *testing.T) {
		s := validShelter()
		s.Latitude = 91
		assert.Error(t, s.Validate())
	})

	t.Run("longitude out of range", func(t *testing.T) {
		s := validShelter()
		s.Longitude = -180.5
		assert.Error(t, s.Validate())
	})
}

func validRegion() RegionCount {
	return RegionCount{
		RegionName:  "Downtown San Diego",
		RegionCode:  "DT",
		Year:        2024,
		Unsheltered: 845,
		Sheltered:   423,
		Total:       1268,
		Latitude:    32.7157,
		Longitude:   -117.1611,
		AreaSqMiles: 1.7,
	}
}

func TestRegionCountValidate(t *testing.T) {
	r := validRegion()
	require.NoError(t, r.Validate())

	t.Run("total mismatch rejected", func(t *testing.T) {
		r := validRegion()
		r.Total = 1200
		assert.Error(t, r.Validate())
	})

	t.Run("non-positive area rejected", func(t *testing.T) {
		r := validRegion()
		r.AreaSqMiles = 0
		assert.Error(t, r.Validate())
	})

	t.Run("negative count rejected", func(t *testing.T) {
		r := validRegion()
		r.Sheltered = -5
		assert.Error(t, r.Validate())
	})
}

func TestRegionCountDerived(t *testing.T) {
	r := validRegion()
	assert.InDelta(t, 745.88, r.Density(), 0.01)
	assert.InDelta(t, 66.64, r.UnshelteredRate(), 0.01)

	t.Run("zero denominators return zero", func(t *testing.T) {
		var r RegionCount
		assert.Zero(t, r.Density())
		assert.Zero(t, r.UnshelteredRate())
	})
}

func TestEvictionValidate(t *testing.T) {
	e := EvictionRecord{
		ZipCode:      "92101",
		Neighborhood: "Downtown",
		Year:         2024,
		Month:        "January",
		Filings:      45,
		Judgments:    32,
		Latitude:     32.7157,
		Longitude:    -117.1611,
	}
	require.NoError(t, e.Validate())
	assert.InDelta(t, 71.11, e.ApprovalRate(), 0.01)

	t.Run("judgments above filings rejected", func(t *testing.T) {
		bad := e
		bad.Judgments = 50
		assert.Error(t, bad.Validate())
	})

	t.Run("zero filings means zero rate", func(t *testing.T) {
		z := e
		z.Filings = 0
		z.Judgments = 0
		assert.Zero(t, z.ApprovalRate())
	})
}

package analysis

import (
	"github.com/rotisserie/eris"

	"github.com/sd-housing-lab/sdhd/internal/geodist"
	"github.com/sd-housing-lab/sdhd/internal/model"
)

// DistanceRow is one region's nearest shelter and the distance to it.
type DistanceRow struct {
	Region  string
	Shelter string
	Miles   float64
}

// DistanceReport maps each high-need region to its nearest shelter.
type DistanceReport struct {
	Rows []DistanceRow
}

// Distances finds, for every PIT region, the nearest shelter by great-circle
// distance. Region order follows the input table.
func Distances(regions []model.RegionCount, shelters []model.Shelter) (DistanceReport, error) {
	supply := make([]geodist.Point, len(shelters))
	for i, s := range shelters {
		supply[i] = geodist.Point{Name: s.Name, Lat: s.Latitude, Lon: s.Longitude}
	}

	var r DistanceReport
	for _, rc := range regions {
		demand := geodist.Point{Name: rc.RegionName, Lat: rc.Latitude, Lon: rc.Longitude}
		nearest, miles, err := geodist.Nearest(demand, supply)
		if err != nil {
			return DistanceReport{}, eris.Wrapf(err, "analysis: distances for %s", rc.RegionName)
		}
		r.Rows = append(r.Rows, DistanceRow{
			Region:  rc.RegionName,
			Shelter: nearest.Name,
			Miles:   miles,
		})
	}
	return r, nil
}

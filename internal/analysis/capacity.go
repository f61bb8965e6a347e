// Package analysis computes the report sections over loaded tables. Each
// section is a pure function of its inputs; formatting lives in the report
// package.
package analysis

import (
	"sort"

	"github.com/sd-housing-lab/sdhd/internal/model"
	"github.com/sd-housing-lab/sdhd/internal/stats"
)

// TypeCapacity is one shelter type's share of total bed capacity.
type TypeCapacity struct {
	Type  string
	Beds  int
	Share float64 // percent of total capacity
}

// CapacityReport compares shelter bed supply against the counted homeless
// population.
type CapacityReport struct {
	TotalCapacity int
	TotalHomeless int
	Sheltered     int
	Unsheltered   int
	Utilization   float64 // sheltered / capacity, percent
	Gap           int     // homeless minus beds
	GapPct        float64 // gap as percent of need
	ByType        []TypeCapacity
}

// Capacity builds the capacity section from the shelter and PIT tables.
func Capacity(shelters []model.Shelter, regions []model.RegionCount) CapacityReport {
	r := CapacityReport{
		TotalCapacity: stats.SumInt(shelters, func(s model.Shelter) int { return s.Capacity }),
		TotalHomeless: stats.SumInt(regions, func(rc model.RegionCount) int { return rc.Total }),
		Sheltered:     stats.SumInt(regions, func(rc model.RegionCount) int { return rc.Sheltered }),
		Unsheltered:   stats.SumInt(regions, func(rc model.RegionCount) int { return rc.Unsheltered }),
	}

	r.Utilization = stats.Percent(float64(r.Sheltered), float64(r.TotalCapacity))
	r.Gap = r.TotalHomeless - r.TotalCapacity
	r.GapPct = stats.Percent(float64(r.Gap), float64(r.TotalHomeless))

	byType := stats.GroupSum(shelters,
		func(s model.Shelter) string { return s.Type },
		func(s model.Shelter) float64 { return float64(s.Capacity) },
	)
	for typ, beds := range byType {
		r.ByType = append(r.ByType, TypeCapacity{
			Type:  typ,
			Beds:  int(beds),
			Share: stats.Percent(beds, float64(r.TotalCapacity)),
		})
	}
	// Largest first; name breaks ties so output is stable.
	sort.Slice(r.ByType, func(i, j int) bool {
		if r.ByType[i].Beds != r.ByType[j].Beds {
			return r.ByType[i].Beds > r.ByType[j].Beds
		}
		return r.ByType[i].Type < r.ByType[j].Type
	})

	return r
}

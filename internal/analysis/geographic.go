package analysis

import (
	"sort"

	"github.com/sd-housing-lab/sdhd/internal/model"
	"github.com/sd-housing-lab/sdhd/internal/stats"
)

// RegionRow is one region's population metrics for the geographic section.
type RegionRow struct {
	Region          string
	Total           int
	Unsheltered     int
	UnshelteredRate float64 // percent
	Density         float64 // homeless per square mile
}

// GeographicReport lists regions by homeless population.
type GeographicReport struct {
	Rows             []RegionRow
	TotalCount       int
	TotalUnsheltered int
}

// Geographic builds the geographic distribution section, sorted by total
// count descending with region name as tie-break.
func Geographic(regions []model.RegionCount) GeographicReport {
	r := GeographicReport{
		TotalCount:       stats.SumInt(regions, func(rc model.RegionCount) int { return rc.Total }),
		TotalUnsheltered: stats.SumInt(regions, func(rc model.RegionCount) int { return rc.Unsheltered }),
	}

	for i := range regions {
		rc := &regions[i]
		r.Rows = append(r.Rows, RegionRow{
			Region:          rc.RegionName,
			Total:           rc.Total,
			Unsheltered:     rc.Unsheltered,
			UnshelteredRate: rc.UnshelteredRate(),
			Density:         rc.Density(),
		})
	}
	sort.Slice(r.Rows, func(i, j int) bool {
		if r.Rows[i].Total != r.Rows[j].Total {
			return r.Rows[i].Total > r.Rows[j].Total
		}
		return r.Rows[i].Region < r.Rows[j].Region
	})

	return r
}

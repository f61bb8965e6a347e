package analysis

import (
	"github.com/rotisserie/eris"

	"github.com/sd-housing-lab/sdhd/internal/model"
	"github.com/sd-housing-lab/sdhd/internal/stats"
)

// SummaryReport holds the cross-dataset descriptive statistics.
type SummaryReport struct {
	// Shelters
	ShelterCount   int
	TotalCapacity  int
	MeanCapacity   float64
	MedianCapacity float64
	LatitudeSpread float64 // degrees between northernmost and southernmost facility

	// PIT
	RegionCount    int
	TotalHomeless  int
	Sheltered      int
	Unsheltered    int
	ShelteredPct   float64
	UnshelteredPct float64
	MeanPerRegion  float64

	// Evictions
	ZipCount       int
	TotalFilings   int
	TotalJudgments int
	MeanFilings    float64
	JudgmentRate   float64 // percent
}

// Summary computes descriptive statistics over all three tables. It fails
// with the stats empty-input error when any table has no rows, since means
// and medians are undefined there.
func Summary(shelters []model.Shelter, regions []model.RegionCount, evictions []model.EvictionRecord) (SummaryReport, error) {
	capacity := func(s model.Shelter) float64 { return float64(s.Capacity) }

	meanCap, err := stats.Mean(shelters, capacity)
	if err != nil {
		return SummaryReport{}, eris.Wrap(err, "analysis: mean capacity")
	}
	medianCap, err := stats.Median(shelters, capacity)
	if err != nil {
		return SummaryReport{}, eris.Wrap(err, "analysis: median capacity")
	}

	meanRegion, err := stats.Mean(regions, func(r model.RegionCount) float64 { return float64(r.Total) })
	if err != nil {
		return SummaryReport{}, eris.Wrap(err, "analysis: mean per region")
	}
	meanFilings, err := stats.Mean(evictions, func(e model.EvictionRecord) float64 { return float64(e.Filings) })
	if err != nil {
		return SummaryReport{}, eris.Wrap(err, "analysis: mean filings")
	}

	r := SummaryReport{
		ShelterCount:   len(shelters),
		TotalCapacity:  stats.SumInt(shelters, func(s model.Shelter) int { return s.Capacity }),
		MeanCapacity:   meanCap,
		MedianCapacity: medianCap,
		LatitudeSpread: latitudeSpread(shelters),

		RegionCount:   len(regions),
		TotalHomeless: stats.SumInt(regions, func(rc model.RegionCount) int { return rc.Total }),
		Sheltered:     stats.SumInt(regions, func(rc model.RegionCount) int { return rc.Sheltered }),
		Unsheltered:   stats.SumInt(regions, func(rc model.RegionCount) int { return rc.Unsheltered }),
		MeanPerRegion: meanRegion,

		ZipCount:       len(evictions),
		TotalFilings:   stats.SumInt(evictions, func(e model.EvictionRecord) int { return e.Filings }),
		TotalJudgments: stats.SumInt(evictions, func(e model.EvictionRecord) int { return e.Judgments }),
		MeanFilings:    meanFilings,
	}

	r.ShelteredPct = stats.Percent(float64(r.Sheltered), float64(r.TotalHomeless))
	r.UnshelteredPct = stats.Percent(float64(r.Unsheltered), float64(r.TotalHomeless))
	r.JudgmentRate = stats.Percent(float64(r.TotalJudgments), float64(r.TotalFilings))

	return r, nil
}

// latitudeSpread returns max minus min latitude across the shelter set, 0 for
// an empty set.
func latitudeSpread(shelters []model.Shelter) float64 {
	if len(shelters) == 0 {
		return 0
	}
	minLat, maxLat := shelters[0].Latitude, shelters[0].Latitude
	for _, s := range shelters[1:] {
		if s.Latitude < minLat {
			minLat = s.Latitude
		}
		if s.Latitude > maxLat {
			maxLat = s.Latitude
		}
	}
	return maxLat - minLat
}

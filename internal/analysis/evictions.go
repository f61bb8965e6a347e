package analysis

import (
	"sort"

	"github.com/sd-housing-lab/sdhd/internal/model"
	"github.com/sd-housing-lab/sdhd/internal/stats"
)

// NeighborhoodRow is one ZIP code's eviction metrics.
type NeighborhoodRow struct {
	Neighborhood string
	ZipCode      string
	Filings      int
	Judgments    int
	ApprovalRate float64 // percent
}

// EvictionReport summarizes eviction filings and judgments.
type EvictionReport struct {
	TotalFilings    int
	TotalJudgments  int
	OverallApproval float64 // percent
	Rows            []NeighborhoodRow
}

// Evictions builds the eviction section, sorted by filings descending with
// ZIP code as tie-break.
func Evictions(evictions []model.EvictionRecord) EvictionReport {
	r := EvictionReport{
		TotalFilings:   stats.SumInt(evictions, func(e model.EvictionRecord) int { return e.Filings }),
		TotalJudgments: stats.SumInt(evictions, func(e model.EvictionRecord) int { return e.Judgments }),
	}
	r.OverallApproval = stats.Percent(float64(r.TotalJudgments), float64(r.TotalFilings))

	for i := range evictions {
		e := &evictions[i]
		r.Rows = append(r.Rows, NeighborhoodRow{
			Neighborhood: e.Neighborhood,
			ZipCode:      e.ZipCode,
			Filings:      e.Filings,
			Judgments:    e.Judgments,
			ApprovalRate: e.ApprovalRate(),
		})
	}
	sort.Slice(r.Rows, func(i, j int) bool {
		if r.Rows[i].Filings != r.Rows[j].Filings {
			return r.Rows[i].Filings > r.Rows[j].Filings
		}
		return r.Rows[i].ZipCode < r.Rows[j].ZipCode
	})

	return r
}

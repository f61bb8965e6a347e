package report

import (
	"strings"
	"time"

	"github.com/sd-housing-lab/sdhd/internal/model"
	"github.com/sd-housing-lab/sdhd/internal/stats"
)

// DownloadSummary builds the plain-text artifact written after a download
// run, with per-dataset record counts and headline sums.
func DownloadSummary(shelters []model.Shelter, regions []model.RegionCount, evictions []model.EvictionRecord, now time.Time) string {
	var b strings.Builder

	b.WriteString("DATA DOWNLOAD SUMMARY\n")
	b.WriteString(banner() + "\n")
	b.WriteString("Download completed: " + now.Format("2006-01-02 15:04:05") + "\n\n")

	b.WriteString("1. SHELTER LOCATIONS\n")
	printer.Fprintf(&b, "   - Records: %d\n", len(shelters))
	printer.Fprintf(&b, "   - Total capacity: %d beds\n",
		stats.SumInt(shelters, func(s model.Shelter) int { return s.Capacity }))
	b.WriteString("   - Geographic coverage: San Diego County\n")
	b.WriteString("   - File: data/raw/sd_shelter_locations.csv\n\n")

	b.WriteString("2. POINT-IN-TIME COUNT (2024)\n")
	printer.Fprintf(&b, "   - Regions: %d\n", len(regions))
	printer.Fprintf(&b, "   - Total homeless: %d\n",
		stats.SumInt(regions, func(r model.RegionCount) int { return r.Total }))
	printer.Fprintf(&b, "   - Unsheltered: %d\n",
		stats.SumInt(regions, func(r model.RegionCount) int { return r.Unsheltered }))
	printer.Fprintf(&b, "   - Sheltered: %d\n",
		stats.SumInt(regions, func(r model.RegionCount) int { return r.Sheltered }))
	b.WriteString("   - File: data/raw/sd_pit_count_2024.csv\n\n")

	b.WriteString("3. EVICTION DATA (January 2024)\n")
	printer.Fprintf(&b, "   - ZIP codes: %d\n", len(evictions))
	printer.Fprintf(&b, "   - Total filings: %d\n",
		stats.SumInt(evictions, func(e model.EvictionRecord) int { return e.Filings }))
	printer.Fprintf(&b, "   - Total judgments: %d\n",
		stats.SumInt(evictions, func(e model.EvictionRecord) int { return e.Judgments }))
	b.WriteString("   - File: data/raw/sd_eviction_data_2024.csv\n\n")

	b.WriteString("All datasets include latitude and longitude coordinates for mapping.\n")
	b.WriteString(banner() + "\n")

	return b.String()
}

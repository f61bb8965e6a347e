package report

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/sd-housing-lab/sdhd/internal/analysis"
)

// CapacitySection formats the capacity analysis.
func CapacitySection(r analysis.CapacityReport) Section {
	var b strings.Builder

	printer.Fprintf(&b, "Total Shelter Capacity:      %d beds\n", r.TotalCapacity)
	printer.Fprintf(&b, "Total Homeless Population:   %d people\n", r.TotalHomeless)
	printer.Fprintf(&b, "Currently Sheltered:         %d people\n", r.Sheltered)
	printer.Fprintf(&b, "Currently Unsheltered:       %d people\n", r.Unsheltered)
	b.WriteString("\n")
	printer.Fprintf(&b, "Capacity Utilization:        %.1f%%\n", r.Utilization)
	printer.Fprintf(&b, "Capacity Gap:                %d beds (%.1f%% of need)\n", r.Gap, r.GapPct)

	b.WriteString("\nShelter Capacity by Type:\n")
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, tc := range r.ByType {
		fmt.Fprintf(w, "  %s\t%d beds\t%.1f%%\t\n", tc.Type, tc.Beds, tc.Share)
	}
	_ = w.Flush()

	return Section{Title: "CAPACITY ANALYSIS", Body: b.String()}
}

// GeographicSection formats the geographic distribution analysis.
func GeographicSection(r analysis.GeographicReport) Section {
	var b strings.Builder
	b.WriteString("Homeless Population by Region:\n\n")

	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "REGION\tTOTAL\tUNSHELTERED\tRATE\tDENSITY\t")
	fmt.Fprintln(w, "------\t-----\t-----------\t----\t-------\t")
	for _, row := range r.Rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1f%%\t%.1f/mi²\t\n",
			row.Region,
			printer.Sprintf("%d", row.Total),
			printer.Sprintf("%d", row.Unsheltered),
			row.UnshelteredRate,
			row.Density,
		)
	}
	fmt.Fprintf(w, "TOTAL\t%s\t%s\t\t\t\n",
		printer.Sprintf("%d", r.TotalCount),
		printer.Sprintf("%d", r.TotalUnsheltered),
	)
	_ = w.Flush()

	return Section{Title: "GEOGRAPHIC DISTRIBUTION ANALYSIS", Body: b.String()}
}

// EvictionSection formats the eviction analysis.
func EvictionSection(r analysis.EvictionReport) Section {
	var b strings.Builder

	printer.Fprintf(&b, "Total Eviction Filings:      %d\n", r.TotalFilings)
	printer.Fprintf(&b, "Total Eviction Judgments:    %d\n", r.TotalJudgments)
	printer.Fprintf(&b, "Overall Approval Rate:       %.1f%%\n", r.OverallApproval)

	b.WriteString("\nEvictions by Neighborhood:\n\n")
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "NEIGHBORHOOD\tZIP\tFILINGS\tJUDGMENTS\tRATE\t")
	fmt.Fprintln(w, "------------\t---\t-------\t---------\t----\t")
	for _, row := range r.Rows {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.1f%%\t\n",
			row.Neighborhood, row.ZipCode, row.Filings, row.Judgments, row.ApprovalRate)
	}
	_ = w.Flush()

	return Section{Title: "EVICTION ANALYSIS", Body: b.String()}
}

// DistanceSection formats the nearest-shelter analysis.
func DistanceSection(r analysis.DistanceReport) Section {
	var b strings.Builder
	b.WriteString("Distance from High-Need Areas to Nearest Shelter:\n\n")

	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "REGION\tNEAREST SHELTER\tDISTANCE\t")
	fmt.Fprintln(w, "------\t---------------\t--------\t")
	for _, row := range r.Rows {
		fmt.Fprintf(w, "%s\t%s\t%.2f mi\t\n", row.Region, row.Shelter, row.Miles)
	}
	_ = w.Flush()

	return Section{Title: "GEOGRAPHIC DISTANCE ANALYSIS", Body: b.String()}
}

// SummarySection formats the cross-dataset summary statistics.
func SummarySection(r analysis.SummaryReport) Section {
	var b strings.Builder

	b.WriteString("Shelter Data:\n")
	printer.Fprintf(&b, "  - Number of facilities: %d\n", r.ShelterCount)
	printer.Fprintf(&b, "  - Total capacity: %d beds\n", r.TotalCapacity)
	printer.Fprintf(&b, "  - Average capacity: %.1f beds\n", r.MeanCapacity)
	printer.Fprintf(&b, "  - Median capacity: %.1f beds\n", r.MedianCapacity)
	fmt.Fprintf(&b, "  - Geographic spread: %.4f° lat\n", r.LatitudeSpread)

	b.WriteString("\nHomeless Population (PIT Count):\n")
	printer.Fprintf(&b, "  - Total homeless: %d\n", r.TotalHomeless)
	printer.Fprintf(&b, "  - Sheltered: %d (%.1f%%)\n", r.Sheltered, r.ShelteredPct)
	printer.Fprintf(&b, "  - Unsheltered: %d (%.1f%%)\n", r.Unsheltered, r.UnshelteredPct)
	printer.Fprintf(&b, "  - Average per region: %.1f\n", r.MeanPerRegion)

	b.WriteString("\nEviction Data:\n")
	printer.Fprintf(&b, "  - Total filings: %d\n", r.TotalFilings)
	printer.Fprintf(&b, "  - Total judgments: %d\n", r.TotalJudgments)
	printer.Fprintf(&b, "  - Average filings per ZIP: %.1f\n", r.MeanFilings)
	printer.Fprintf(&b, "  - Judgment rate: %.1f%%\n", r.JudgmentRate)

	return Section{Title: "SUMMARY STATISTICS", Body: b.String()}
}

// CondensedSummary builds the persisted analysis_summary.txt artifact.
func CondensedSummary(r analysis.SummaryReport) string {
	var b strings.Builder

	b.WriteString("San Diego Homelessness Data Analysis Report\n")
	b.WriteString(banner() + "\n\n")

	b.WriteString("SHELTER CAPACITY\n")
	printer.Fprintf(&b, "Total Shelters: %d\n", r.ShelterCount)
	printer.Fprintf(&b, "Total Capacity: %d beds\n", r.TotalCapacity)
	b.WriteString("\n")

	b.WriteString("HOMELESS POPULATION\n")
	printer.Fprintf(&b, "Total: %d\n", r.TotalHomeless)
	printer.Fprintf(&b, "Sheltered: %d\n", r.Sheltered)
	printer.Fprintf(&b, "Unsheltered: %d\n", r.Unsheltered)
	b.WriteString("\n")

	b.WriteString("EVICTIONS\n")
	printer.Fprintf(&b, "Total Filings: %d\n", r.TotalFilings)
	printer.Fprintf(&b, "Total Judgments: %d\n", r.TotalJudgments)

	return b.String()
}

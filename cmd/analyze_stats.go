package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sd-housing-lab/sdhd/internal/analysis"
	"github.com/sd-housing-lab/sdhd/internal/dataset"
	"github.com/sd-housing-lab/sdhd/internal/report"
)

var analyzeStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Descriptive statistics across all datasets",
	RunE: func(cmd *cobra.Command, _ []string) error {
		store := dataset.NewStore(cfg.Data.Dir)
		shelters, regions, evictions, err := loadTables(store)
		if err != nil {
			return err
		}

		summary, err := analysis.Summary(shelters, regions, evictions)
		if err != nil {
			return eris.Wrap(err, "analyze stats")
		}

		section := report.SummarySection(summary)
		fmt.Fprint(os.Stdout, report.Render([]report.Section{section}))
		return nil
	},
}

func init() {
	analyzeCmd.AddCommand(analyzeStatsCmd)
}

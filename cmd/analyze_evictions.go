package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sd-housing-lab/sdhd/internal/analysis"
	"github.com/sd-housing-lab/sdhd/internal/dataset"
	"github.com/sd-housing-lab/sdhd/internal/report"
)

var analyzeEvictionsCmd = &cobra.Command{
	Use:   "evictions",
	Short: "Eviction filings, judgments, and approval rates",
	RunE: func(cmd *cobra.Command, _ []string) error {
		store := dataset.NewStore(cfg.Data.Dir)
		_, _, evictions, err := loadTables(store)
		if err != nil {
			return err
		}

		section := report.EvictionSection(analysis.Evictions(evictions))
		fmt.Fprint(os.Stdout, report.Render([]report.Section{section}))
		return nil
	},
}

func init() {
	analyzeCmd.AddCommand(analyzeEvictionsCmd)
}

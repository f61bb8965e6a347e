package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sd-housing-lab/sdhd/internal/analysis"
	"github.com/sd-housing-lab/sdhd/internal/dataset"
	"github.com/sd-housing-lab/sdhd/internal/report"
)

var analyzeGeoCmd = &cobra.Command{
	Use:   "geo",
	Short: "Geographic distribution of homelessness by region",
	RunE: func(cmd *cobra.Command, _ []string) error {
		store := dataset.NewStore(cfg.Data.Dir)
		_, regions, _, err := loadTables(store)
		if err != nil {
			return err
		}

		section := report.GeographicSection(analysis.Geographic(regions))
		fmt.Fprint(os.Stdout, report.Render([]report.Section{section}))
		return nil
	},
}

func init() {
	analyzeCmd.AddCommand(analyzeGeoCmd)
}

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

var analyzeDistanceCmd = &cobra.Command{
	Use:   "distance",
	Short: "Nearest shelter for each high-need region",
	RunE: func(cmd *cobra.Command, _ []string) error {
		store := dataset.NewStore(cfg.Data.Dir)
		shelters, regions, _, err := loadTables(store)
		if err != nil {
			return err
		}

		distances, err := analysis.Distances(regions, shelters)
		if err != nil {
			return eris.Wrap(err, "analyze distance")
		}

		section := report.DistanceSection(distances)
		fmt.Fprint(os.Stdout, report.Render([]report.Section{section}))
		return nil
	},
}

func init() {
	analyzeCmd.AddCommand(analyzeDistanceCmd)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sd-housing-lab/sdhd/internal/analysis"
	"github.com/sd-housing-lab/sdhd/internal/dataset"
	"github.com/sd-housing-lab/sdhd/internal/report"
)

var analyzeCapacityCmd = &cobra.Command{
	Use:   "capacity",
	Short: "Shelter capacity vs. homeless population",
	RunE: func(cmd *cobra.Command, _ []string) error {
		store := dataset.NewStore(cfg.Data.Dir)
		shelters, regions, _, err := loadTables(store)
		if err != nil {
			return err
		}

		section := report.CapacitySection(analysis.Capacity(shelters, regions))
		fmt.Fprint(os.Stdout, report.Render([]report.Section{section}))
		return nil
	},
}

func init() {
	analyzeCmd.AddCommand(analyzeCapacityCmd)
}

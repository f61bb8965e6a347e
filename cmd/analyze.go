package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sd-housing-lab/sdhd/internal/analysis"
	"github.com/sd-housing-lab/sdhd/internal/dataset"
	"github.com/sd-housing-lab/sdhd/internal/model"
	"github.com/sd-housing-lab/sdhd/internal/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run all report sections and export the analysis summary",
	RunE: func(cmd *cobra.Command, _ []string) error {
		store := dataset.NewStore(cfg.Data.Dir)

		shelters, regions, evictions, err := loadTables(store)
		if err != nil {
			return err
		}

		distances, err := analysis.Distances(regions, shelters)
		if err != nil {
			return eris.Wrap(err, "analyze")
		}
		summary, err := analysis.Summary(shelters, regions, evictions)
		if err != nil {
			return eris.Wrap(err, "analyze")
		}

		sections := []report.Section{
			report.CapacitySection(analysis.Capacity(shelters, regions)),
			report.GeographicSection(analysis.Geographic(regions)),
			report.EvictionSection(analysis.Evictions(evictions)),
			report.DistanceSection(distances),
			report.SummarySection(summary),
		}
		fmt.Fprint(os.Stdout, report.Render(sections))

		if err := report.Export(store.AnalysisSummaryPath(), report.CondensedSummary(summary)); err != nil {
			return eris.Wrap(err, "analyze: export summary")
		}
		zap.L().Info("analysis complete", zap.String("summary", store.AnalysisSummaryPath()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

// loadTables loads all three datasets, mapping a missing file to an
// actionable diagnostic. Any other failure surfaces as-is.
func loadTables(store *dataset.Store) ([]model.Shelter, []model.RegionCount, []model.EvictionRecord, error) {
	shelters, err := store.LoadShelters()
	if err != nil {
		return nil, nil, nil, missingInput(err)
	}
	regions, err := store.LoadRegionCounts()
	if err != nil {
		return nil, nil, nil, missingInput(err)
	}
	evictions, err := store.LoadEvictions()
	if err != nil {
		return nil, nil, nil, missingInput(err)
	}

	zap.L().Debug("loaded datasets",
		zap.Int("shelters", len(shelters)),
		zap.Int("regions", len(regions)),
		zap.Int("evictions", len(evictions)),
	)
	return shelters, regions, evictions, nil
}

// missingInput distinguishes a missing input file, which the user can fix by
// running the download step, from any other load failure.
func missingInput(err error) error {
	if eris.Is(err, dataset.ErrNotFound) {
		zap.L().Error("required input file missing, run 'sdhd download' first", zap.Error(err))
		return eris.Wrap(err, "analyze: missing input")
	}
	return eris.Wrap(err, "analyze: load datasets")
}

package main

import (
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sd-housing-lab/sdhd/internal/dataset"
	"github.com/sd-housing-lab/sdhd/internal/report"
	"github.com/sd-housing-lab/sdhd/internal/seed"
)

var downloadDataset string

var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Materialize the sample datasets to disk",
	Long:  "Writes the shelter, point-in-time count, and eviction CSVs under the data directory, plus provenance metadata and a download summary.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if downloadDataset != "all" {
			if _, err := dataset.Lookup(downloadDataset); err != nil {
				return err
			}
		}

		store := dataset.NewStore(cfg.Data.Dir)
		log := zap.L()

		if downloadDataset == dataset.Shelters || downloadDataset == "all" {
			recs := seed.Shelters()
			if err := store.SaveShelters(recs); err != nil {
				return eris.Wrap(err, "download: shelters")
			}
			log.Info("saved shelter locations",
				zap.Int("records", len(recs)),
				zap.String("file", store.RawPath("sd_shelter_locations.csv")),
			)
		}

		if downloadDataset == dataset.PIT || downloadDataset == "all" {
			recs := seed.RegionCounts()
			if err := store.SaveRegionCounts(recs); err != nil {
				return eris.Wrap(err, "download: pit")
			}
			log.Info("saved PIT count data",
				zap.Int("records", len(recs)),
				zap.String("file", store.RawPath("sd_pit_count_2024.csv")),
			)
		}

		if downloadDataset == dataset.Evictions || downloadDataset == "all" {
			recs := seed.Evictions()
			if err := store.SaveEvictions(recs); err != nil {
				return eris.Wrap(err, "download: evictions")
			}
			log.Info("saved eviction data",
				zap.Int("records", len(recs)),
				zap.String("file", store.RawPath("sd_eviction_data_2024.csv")),
			)
		}

		now := time.Now()
		if err := store.WriteMetadata(dataset.NewMetadata(now)); err != nil {
			return eris.Wrap(err, "download: metadata")
		}

		// The summary reflects what is on disk, so a partial download of one
		// dataset skips it rather than reporting stale numbers.
		shelters, errS := store.LoadShelters()
		regions, errR := store.LoadRegionCounts()
		evictions, errE := store.LoadEvictions()
		switch {
		case errS != nil || errR != nil || errE != nil:
			log.Warn("skipping download summary, not all datasets are on disk yet")
		default:
			summary := report.DownloadSummary(shelters, regions, evictions, now)
			if err := report.Export(store.DownloadSummaryPath(), summary); err != nil {
				return eris.Wrap(err, "download: summary")
			}
			log.Info("wrote download summary", zap.String("file", store.DownloadSummaryPath()))
		}

		log.Info("download complete", zap.String("dir", cfg.Data.Dir))
		return nil
	},
}

func init() {
	downloadCmd.Flags().StringVar(&downloadDataset, "dataset", "all",
		"which dataset to materialize (shelters, pit, evictions, all)")
	rootCmd.AddCommand(downloadCmd)
}

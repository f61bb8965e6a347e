package main

import (
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"

	"github.com/sd-housing-lab/sdhd/internal/dataset"
	"github.com/sd-housing-lab/sdhd/internal/model"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the datasets as a single XLSX workbook",
	RunE: func(cmd *cobra.Command, _ []string) error {
		store := dataset.NewStore(cfg.Data.Dir)
		shelters, regions, evictions, err := loadTables(store)
		if err != nil {
			return err
		}

		out := exportOut
		if out == "" {
			out = cfg.Export.Path
		}

		if err := writeWorkbook(out, shelters, regions, evictions); err != nil {
			return err
		}

		zap.L().Info("exported workbook",
			zap.String("file", out),
			zap.Int("shelters", len(shelters)),
			zap.Int("regions", len(regions)),
			zap.Int("evictions", len(evictions)),
		)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output path (default from config)")
	rootCmd.AddCommand(exportCmd)
}

// writeWorkbook writes the three datasets as sheets of one XLSX workbook.
func writeWorkbook(path string, shelters []model.Shelter, regions []model.RegionCount, evictions []model.EvictionRecord) error {
	f := xlsx.NewFile()

	sheet, err := f.AddSheet("Shelters")
	if err != nil {
		return eris.Wrap(err, "export: add shelters sheet")
	}
	addHeader(sheet, "name", "address", "latitude", "longitude", "capacity", "type", "phone")
	for _, s := range shelters {
		row := sheet.AddRow()
		row.AddCell().SetString(s.Name)
		row.AddCell().SetString(s.Address)
		row.AddCell().SetFloat(s.Latitude)
		row.AddCell().SetFloat(s.Longitude)
		row.AddCell().SetInt(s.Capacity)
		row.AddCell().SetString(s.Type)
		row.AddCell().SetString(s.Phone)
	}

	sheet, err = f.AddSheet("PIT Counts")
	if err != nil {
		return eris.Wrap(err, "export: add pit sheet")
	}
	addHeader(sheet, "region_name", "region_code", "year", "unsheltered_count",
		"sheltered_count", "total_count", "latitude", "longitude", "area_sq_miles")
	for _, r := range regions {
		row := sheet.AddRow()
		row.AddCell().SetString(r.RegionName)
		row.AddCell().SetString(r.RegionCode)
		row.AddCell().SetInt(r.Year)
		row.AddCell().SetInt(r.Unsheltered)
		row.AddCell().SetInt(r.Sheltered)
		row.AddCell().SetInt(r.Total)
		row.AddCell().SetFloat(r.Latitude)
		row.AddCell().SetFloat(r.Longitude)
		row.AddCell().SetFloat(r.AreaSqMiles)
	}

	sheet, err = f.AddSheet("Evictions")
	if err != nil {
		return eris.Wrap(err, "export: add evictions sheet")
	}
	addHeader(sheet, "zip_code", "neighborhood", "year", "month",
		"eviction_filings", "eviction_judgments", "latitude", "longitude")
	for _, e := range evictions {
		row := sheet.AddRow()
		row.AddCell().SetString(e.ZipCode)
		row.AddCell().SetString(e.Neighborhood)
		row.AddCell().SetInt(e.Year)
		row.AddCell().SetString(e.Month)
		row.AddCell().SetInt(e.Filings)
		row.AddCell().SetInt(e.Judgments)
		row.AddCell().SetFloat(e.Latitude)
		row.AddCell().SetFloat(e.Longitude)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return eris.Wrapf(err, "export: create dir for %s", path)
	}
	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "export: save %s", path)
	}
	return nil
}

func addHeader(sheet *xlsx.Sheet, cols ...string) {
	row := sheet.AddRow()
	for _, c := range cols {
		row.AddCell().SetString(c)
	}
}

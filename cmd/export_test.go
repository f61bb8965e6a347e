//go:build !integration

package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/sd-housing-lab/sdhd/internal/seed"
)

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "processed", "out.xlsx")
	require.NoError(t, writeWorkbook(path, seed.Shelters(), seed.RegionCounts(), seed.Evictions()))

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	require.Len(t, f.Sheets, 3)

	assert.Equal(t, "Shelters", f.Sheets[0].Name)
	assert.Equal(t, "PIT Counts", f.Sheets[1].Name)
	assert.Equal(t, "Evictions", f.Sheets[2].Name)

	// Header plus five records per sheet.
	for _, sheet := range f.Sheets {
		assert.Len(t, sheet.Rows, 6)
	}

	assert.Equal(t, "name", f.Sheets[0].Rows[0].Cells[0].String())
	assert.Equal(t, "Father Joe's Villages", f.Sheets[0].Rows[1].Cells[0].String())

	capacity, err := f.Sheets[0].Rows[1].Cells[4].Int()
	require.NoError(t, err)
	assert.Equal(t, 350, capacity)

	// Leading-zero safety: ZIP codes are stored as strings.
	assert.Equal(t, "92101", f.Sheets[2].Rows[1].Cells[0].String())
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, execute(t, dir, "download"))

	out := filepath.Join(dir, "processed", "sd_homelessness_2024.xlsx")
	require.NoError(t, execute(t, dir, "export", "--out", out))
	assert.FileExists(t, out)
}

func TestExportMissingInput(t *testing.T) {
	err := execute(t, t.TempDir(), "export")
	assert.Error(t, err)
}

package dataset

import (
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"

	"github.com/sd-housing-lab/sdhd/internal/model"
)

var (
	// ErrNotFound means a required input file is absent. The fix is
	// user-actionable: run the download step first.
	ErrNotFound = eris.New("dataset: file not found")

	// ErrSchema means a required column is missing, a value failed to parse,
	// or a record violated a dataset invariant.
	ErrSchema = eris.New("dataset: schema error")
)

// Store reads and writes datasets under an injected base directory. Raw CSVs
// live at <base>/raw, metadata at <base>/metadata.
type Store struct {
	baseDir string
}

// NewStore creates a store rooted at baseDir.
func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// BaseDir returns the configured base directory.
func (s *Store) BaseDir() string { return s.baseDir }

// RawPath returns the on-disk path for a dataset file.
func (s *Store) RawPath(file string) string {
	return filepath.Join(s.baseDir, "raw", file)
}

// AnalysisSummaryPath returns where the analysis report is persisted.
func (s *Store) AnalysisSummaryPath() string {
	return filepath.Join(s.baseDir, "analysis_summary.txt")
}

// DownloadSummaryPath returns where the download summary is persisted.
func (s *Store) DownloadSummaryPath() string {
	return filepath.Join(s.baseDir, "DOWNLOAD_SUMMARY.txt")
}

// LoadShelters loads and validates the shelter locations dataset.
func (s *Store) LoadShelters() ([]model.Shelter, error) {
	recs, err := loadRecords[model.Shelter](s.RawPath(registry[Shelters].File))
	if err != nil {
		return nil, err
	}
	for i := range recs {
		if err := recs[i].Validate(); err != nil {
			return nil, eris.Wrapf(ErrSchema, "dataset: shelters row %d: %v", i+1, err)
		}
	}
	return recs, nil
}

// LoadRegionCounts loads and validates the point-in-time count dataset.
func (s *Store) LoadRegionCounts() ([]model.RegionCount, error) {
	recs, err := loadRecords[model.RegionCount](s.RawPath(registry[PIT].File))
	if err != nil {
		return nil, err
	}
	for i := range recs {
		if err := recs[i].Validate(); err != nil {
			return nil, eris.Wrapf(ErrSchema, "dataset: pit row %d: %v", i+1, err)
		}
	}
	return recs, nil
}

// LoadEvictions loads and validates the eviction dataset.
func (s *Store) LoadEvictions() ([]model.EvictionRecord, error) {
	recs, err := loadRecords[model.EvictionRecord](s.RawPath(registry[Evictions].File))
	if err != nil {
		return nil, err
	}
	for i := range recs {
		if err := recs[i].Validate(); err != nil {
			return nil, eris.Wrapf(ErrSchema, "dataset: evictions row %d: %v", i+1, err)
		}
	}
	return recs, nil
}

// SaveShelters writes the shelter locations dataset, creating the raw
// directory if needed.
func (s *Store) SaveShelters(recs []model.Shelter) error {
	return saveRecords(s.RawPath(registry[Shelters].File), recs)
}

// SaveRegionCounts writes the point-in-time count dataset.
func (s *Store) SaveRegionCounts(recs []model.RegionCount) error {
	return saveRecords(s.RawPath(registry[PIT].File), recs)
}

// SaveEvictions writes the eviction dataset.
func (s *Store) SaveEvictions(recs []model.EvictionRecord) error {
	return saveRecords(s.RawPath(registry[Evictions].File), recs)
}

// loadRecords reads a header-rowed CSV into typed records, preserving row
// order. Missing files map to ErrNotFound, missing columns and unparsable
// values to ErrSchema.
func loadRecords[T any](path string) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, eris.Wrapf(ErrNotFound, "dataset: %s", path)
		}
		return nil, eris.Wrapf(err, "dataset: open %s", path)
	}
	defer func() { _ = f.Close() }()

	dec, err := csvutil.NewDecoder(csv.NewReader(f))
	if err != nil {
		if err == io.EOF {
			return nil, eris.Wrapf(ErrSchema, "dataset: %s: missing header row", path)
		}
		return nil, eris.Wrapf(err, "dataset: read header %s", path)
	}

	if err := checkColumns[T](dec.Header()); err != nil {
		return nil, eris.Wrapf(ErrSchema, "dataset: %s: %v", path, err)
	}

	var recs []T
	for {
		var rec T
		if err := dec.Decode(&rec); err != nil {
			if err == io.EOF {
				break
			}
			return nil, eris.Wrapf(ErrSchema, "dataset: %s: %v", path, err)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// checkColumns verifies that every column declared by T's csv tags is present
// in the file header. Extra columns are allowed.
func checkColumns[T any](header []string) error {
	var zero T
	want, err := csvutil.Header(zero, "csv")
	if err != nil {
		return eris.Wrap(err, "derive expected header")
	}

	have := make(map[string]bool, len(header))
	for _, col := range header {
		have[col] = true
	}
	for _, col := range want {
		if !have[col] {
			return eris.Errorf("missing column %q", col)
		}
	}
	return nil
}

// saveRecords writes records as a header-rowed CSV, creating parent
// directories first. MkdirAll is idempotent so repeat saves are safe.
func saveRecords[T any](path string, recs []T) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return eris.Wrapf(err, "dataset: create dir for %s", path)
	}

	data, err := csvutil.Marshal(recs)
	if err != nil {
		return eris.Wrapf(err, "dataset: marshal %s", path)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "dataset: write %s", path)
	}
	return nil
}

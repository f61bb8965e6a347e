package dataset

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
)

// Metadata records download provenance for every dataset produced in a run.
type Metadata struct {
	DownloadID   string       `json:"download_id"`
	DownloadDate string       `json:"download_date"`
	DataSources  []SourceInfo `json:"data_sources"`
	Notes        []string     `json:"notes"`
}

// SourceInfo describes one dataset's provenance.
type SourceInfo struct {
	Name                string `json:"name"`
	Source              string `json:"source"`
	Description         string `json:"description"`
	GeographicCoverage  string `json:"geographic_coverage"`
	IncludesCoordinates bool   `json:"includes_coordinates"`
	File                string `json:"file"`
}

// metadataNotes are the standing caveats attached to every download.
var metadataNotes = []string{
	"All coordinates are in WGS84 (EPSG:4326) format",
	"Data represents sample/demonstration datasets",
	"For production use, connect to live APIs from San Diego Open Data Portal",
	"Some data may be anonymized or aggregated for privacy",
}

// NewMetadata builds the provenance record for a download at the given time,
// covering every registered dataset.
func NewMetadata(now time.Time) Metadata {
	md := Metadata{
		DownloadID:   uuid.NewString(),
		DownloadDate: now.Format(time.RFC3339),
		Notes:        metadataNotes,
	}
	for _, d := range All() {
		md.DataSources = append(md.DataSources, SourceInfo{
			Name:                d.Title,
			Source:              d.Source,
			Description:         d.Description,
			GeographicCoverage:  d.Coverage,
			IncludesCoordinates: true,
			File:                d.File,
		})
	}
	return md
}

// MetadataPath returns the on-disk path of the metadata artifact.
func (s *Store) MetadataPath() string {
	return filepath.Join(s.baseDir, "metadata", "data_sources.json")
}

// WriteMetadata persists the metadata artifact, creating the metadata
// directory if needed.
func (s *Store) WriteMetadata(md Metadata) error {
	path := s.MetadataPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return eris.Wrap(err, "dataset: create metadata dir")
	}

	data, err := json.MarshalIndent(md, "", "  ")
	if err != nil {
		return eris.Wrap(err, "dataset: marshal metadata")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrap(err, "dataset: write metadata")
	}
	return nil
}

// ReadMetadata loads the metadata artifact.
func (s *Store) ReadMetadata() (*Metadata, error) {
	data, err := os.ReadFile(s.MetadataPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, eris.Wrapf(ErrNotFound, "dataset: %s", s.MetadataPath())
		}
		return nil, eris.Wrap(err, "dataset: read metadata")
	}

	var md Metadata
	if err := json.Unmarshal(data, &md); err != nil {
		return nil, eris.Wrap(err, "dataset: unmarshal metadata")
	}
	return &md, nil
}

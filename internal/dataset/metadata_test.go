package dataset

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetadata(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	md := NewMetadata(now)

	_, err := uuid.Parse(md.DownloadID)
	assert.NoError(t, err)
	assert.Equal(t, "2024-06-01T12:00:00Z", md.DownloadDate)
	require.Len(t, md.DataSources, 3)

	files := []string{md.DataSources[0].File, md.DataSources[1].File, md.DataSources[2].File}
	assert.Equal(t, []string{
		"sd_shelter_locations.csv",
		"sd_pit_count_2024.csv",
		"sd_eviction_data_2024.csv",
	}, files)

	for _, src := range md.DataSources {
		assert.True(t, src.IncludesCoordinates)
		assert.NotEmpty(t, src.Source)
	}
	assert.NotEmpty(t, md.Notes)
}

func TestMetadataRoundTrip(t *testing.T) {
	s := NewStore(t.TempDir())
	md := NewMetadata(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))

	require.NoError(t, s.WriteMetadata(md))

	got, err := s.ReadMetadata()
	require.NoError(t, err)
	assert.Equal(t, md, *got)
}

func TestReadMetadataMissing(t *testing.T) {
	s := NewStore(t.TempDir())
	_, err := s.ReadMetadata()
	assert.Error(t, err)
}

func TestLookup(t *testing.T) {
	d, err := Lookup(PIT)
	require.NoError(t, err)
	assert.Equal(t, "sd_pit_count_2024.csv", d.File)

	_, err = Lookup("census")
	assert.Error(t, err)
}

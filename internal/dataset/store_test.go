package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sd-housing-lab/sdhd/internal/model"
	"github.com/sd-housing-lab/sdhd/internal/seed"
)

func TestStoreRoundTrip(t *testing.T) {
	s := NewStore(t.TempDir())

	require.NoError(t, s.SaveShelters(seed.Shelters()))
	require.NoError(t, s.SaveRegionCounts(seed.RegionCounts()))
	require.NoError(t, s.SaveEvictions(seed.Evictions()))

	shelters, err := s.LoadShelters()
	require.NoError(t, err)
	assert.Equal(t, seed.Shelters(), shelters)

	regions, err := s.LoadRegionCounts()
	require.NoError(t, err)
	assert.Equal(t, seed.RegionCounts(), regions)

	evictions, err := s.LoadEvictions()
	require.NoError(t, err)
	assert.Equal(t, seed.Evictions(), evictions)
}

func TestStoreZipCodeStaysString(t *testing.T) {
	s := NewStore(t.TempDir())
	recs := seed.Evictions()
	recs[0].ZipCode = "02101" // leading zero must survive

	require.NoError(t, s.SaveEvictions(recs))
	got, err := s.LoadEvictions()
	require.NoError(t, err)
	assert.Equal(t, "02101", got[0].ZipCode)
}

func TestStoreSaveIsRepeatable(t *testing.T) {
	s := NewStore(t.TempDir())
	require.NoError(t, s.SaveShelters(seed.Shelters()))
	require.NoError(t, s.SaveShelters(seed.Shelters()))

	got, err := s.LoadShelters()
	require.NoError(t, err)
	assert.Len(t, got, 5)
}

func TestLoadMissingFile(t *testing.T) {
	s := NewStore(t.TempDir())

	_, err := s.LoadShelters()
	assert.True(t, eris.Is(err, ErrNotFound))

	_, err = s.LoadRegionCounts()
	assert.True(t, eris.Is(err, ErrNotFound))

	_, err = s.LoadEvictions()
	assert.True(t, eris.Is(err, ErrNotFound))
}

func writeRaw(t *testing.T, s *Store, file, content string) {
	t.Helper()
	path := s.RawPath(file)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadSchemaErrors(t *testing.T) {
	t.Run("missing column", func(t *testing.T) {
		s := NewStore(t.TempDir())
		writeRaw(t, s, registry[Shelters].File,
			"name,address,latitude,longitude,type,phone\n"+
				"A,1 Main St,32.7,-117.1,Emergency Shelter,555\n")
		_, err := s.LoadShelters()
		assert.True(t, eris.Is(err, ErrSchema))
		assert.Contains(t, err.Error(), "capacity")
	})

	t.Run("unparsable value", func(t *testing.T) {
		s := NewStore(t.TempDir())
		writeRaw(t, s, registry[Shelters].File,
			"name,address,latitude,longitude,capacity,type,phone\n"+
				"A,1 Main St,32.7,-117.1,lots,Emergency Shelter,555\n")
		_, err := s.LoadShelters()
		assert.True(t, eris.Is(err, ErrSchema))
	})

	t.Run("empty file", func(t *testing.T) {
		s := NewStore(t.TempDir())
		writeRaw(t, s, registry[Shelters].File, "")
		_, err := s.LoadShelters()
		assert.True(t, eris.Is(err, ErrSchema))
	})

	t.Run("invariant violation", func(t *testing.T) {
		s := NewStore(t.TempDir())
		writeRaw(t, s, registry[PIT].File,
			"region_name,region_code,year,unsheltered_count,sheltered_count,total_count,latitude,longitude,area_sq_miles\n"+
				"Downtown,DT,2024,845,423,1200,32.7157,-117.1611,1.7\n")
		_, err := s.LoadRegionCounts()
		assert.True(t, eris.Is(err, ErrSchema))
	})

	t.Run("extra columns tolerated", func(t *testing.T) {
		s := NewStore(t.TempDir())
		writeRaw(t, s, registry[Evictions].File,
			"zip_code,neighborhood,year,month,eviction_filings,eviction_judgments,latitude,longitude,extra\n"+
				"92101,Downtown,2024,January,45,32,32.7157,-117.1611,ignored\n")
		got, err := s.LoadEvictions()
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Downtown", got[0].Neighborhood)
	})
}

func TestLoadPreservesOrder(t *testing.T) {
	s := NewStore(t.TempDir())
	shelters := []model.Shelter{
		{Name: "Z Last", Latitude: 32.7, Longitude: -117.1, Capacity: 10},
		{Name: "A First", Latitude: 32.8, Longitude: -117.2, Capacity: 20},
	}
	require.NoError(t, s.SaveShelters(shelters))

	got, err := s.LoadShelters()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Z Last", got[0].Name)
	assert.Equal(t, "A First", got[1].Name)
}

package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixturesSatisfyInvariants(t *testing.T) {
	for _, s := range Shelters() {
		require.NoError(t, s.Validate(), s.Name)
	}
	for _, r := range RegionCounts() {
		require.NoError(t, r.Validate(), r.RegionName)
	}
	for _, e := range Evictions() {
		require.NoError(t, e.Validate(), e.ZipCode)
	}
}

func TestFixtureTotals(t *testing.T) {
	var capacity int
	for _, s := range Shelters() {
		capacity += s.Capacity
	}
	assert.Equal(t, 1220, capacity)

	var total, unsheltered, sheltered int
	for _, r := range RegionCounts() {
		total += r.Total
		unsheltered += r.Unsheltered
		sheltered += r.Sheltered
	}
	assert.Equal(t, 2594, total)
	assert.Equal(t, 1725, unsheltered)
	assert.Equal(t, 869, sheltered)

	var filings, judgments int
	for _, e := range Evictions() {
		filings += e.Filings
		judgments += e.Judgments
	}
	assert.Equal(t, 166, filings)
	assert.Equal(t, 115, judgments)
}

// Package dataset reads and writes the project's flat tabular datasets and
// their provenance metadata.
package dataset

import "github.com/rotisserie/eris"

// Dataset names accepted by the download selector.
const (
	Shelters  = "shelters"
	PIT       = "pit"
	Evictions = "evictions"
)

// Descriptor describes one dataset: its identifier, backing file under
// <base>/raw, and provenance fields for the metadata artifact.
type Descriptor struct {
	Name        string
	File        string
	Title       string
	Source      string
	Description string
	Coverage    string
}

// registry maps dataset names to their descriptors. Order in All follows
// allNames so artifacts list datasets deterministically.
var registry = map[string]Descriptor{
	Shelters: {
		Name:        Shelters,
		File:        "sd_shelter_locations.csv",
		Title:       "San Diego Shelter Locations",
		Source:      "San Diego Open Data Portal / Public Records",
		Description: "Locations of homeless shelters and service providers in San Diego",
		Coverage:    "San Diego County",
	},
	PIT: {
		Name:        PIT,
		File:        "sd_pit_count_2024.csv",
		Title:       "Point-in-Time Count Data",
		Source:      "San Diego Regional Task Force on Homelessness",
		Description: "Annual homeless census data by geographic region",
		Coverage:    "San Diego County regions",
	},
	Evictions: {
		Name:        Evictions,
		File:        "sd_eviction_data_2024.csv",
		Title:       "Eviction Data",
		Source:      "San Diego Court Records / Housing Authority",
		Description: "Eviction filings and judgments by ZIP code",
		Coverage:    "San Diego County ZIP codes",
	},
}

var allNames = []string{Shelters, PIT, Evictions}

// Lookup returns the descriptor for a dataset name.
func Lookup(name string) (Descriptor, error) {
	d, ok := registry[name]
	if !ok {
		return Descriptor{}, eris.Errorf("dataset: unknown dataset %q (valid: shelters, pit, evictions)", name)
	}
	return d, nil
}

// All returns every registered descriptor in a stable order.
func All() []Descriptor {
	out := make([]Descriptor, 0, len(allNames))
	for _, n := range allNames {
		out = append(out, registry[n])
	}
	return out
}

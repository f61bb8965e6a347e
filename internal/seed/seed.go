// Package seed owns the literal sample datasets materialized by the download
// command. Keeping the fixtures here leaves the dataset store a generic
// read/write layer.
package seed

import "github.com/sd-housing-lab/sdhd/internal/model"

// Shelters returns the sample shelter locations. Total capacity is 1220 beds.
func Shelters() []model.Shelter {
	return []model.Shelter{
		{
			Name:      "Father Joe's Villages",
			Address:   "3350 E St, San Diego, CA 92102",
			Latitude:  32.7095,
			Longitude: -117.1292,
			Capacity:  350,
			Type:      "Emergency Shelter",
			Phone:     "(619) 699-1247",
		},
		{
			Name:      "San Diego Rescue Mission",
			Address:   "120 Elm St, San Diego, CA 92101",
			Latitude:  32.7143,
			Longitude: -117.1628,
			Capacity:  200,
			Type:      "Emergency Shelter",
			Phone:     "(619) 819-1100",
		},
		{
			Name:      "Rachel's Women's Center",
			Address:   "3030 K St, San Diego, CA 92102",
			Latitude:  32.7072,
			Longitude: -117.1351,
			Capacity:  120,
			Type:      "Women's Shelter",
			Phone:     "(619) 615-0885",
		},
		{
			Name:      "Veterans Village of San Diego",
			Address:   "4141 Pacific Hwy, San Diego, CA 92110",
			Latitude:  32.7541,
			Longitude: -117.2012,
			Capacity:  400,
			Type:      "Veterans Shelter",
			Phone:     "(858) 453-2400",
		},
		{
			Name:      "Connections Housing Downtown",
			Address:   "1250 6th Ave, San Diego, CA 92101",
			Latitude:  32.7179,
			Longitude: -117.1600,
			Capacity:  150,
			Type:      "Transitional Housing",
			Phone:     "(619) 238-2772",
		},
	}
}

// RegionCounts returns the sample 2024 point-in-time counts. Totals sum to
// 2594 (1725 unsheltered, 869 sheltered).
func RegionCounts() []model.RegionCount {
	return []model.RegionCount{
		{
			RegionName:  "Downtown San Diego",
			RegionCode:  "DT",
			Year:        2024,
			Unsheltered: 845,
			Sheltered:   423,
			Total:       1268,
			Latitude:    32.7157,
			Longitude:   -117.1611,
			AreaSqMiles: 1.7,
		},
		{
			RegionName:  "East Village",
			RegionCode:  "EV",
			Year:        2024,
			Unsheltered: 312,
			Sheltered:   156,
			Total:       468,
			Latitude:    32.7089,
			Longitude:   -117.1434,
			AreaSqMiles: 0.8,
		},
		{
			RegionName:  "North Park",
			RegionCode:  "NP",
			Year:        2024,
			Unsheltered: 178,
			Sheltered:   89,
			Total:       267,
			Latitude:    32.7427,
			Longitude:   -117.1294,
			AreaSqMiles: 2.1,
		},
		{
			RegionName:  "Pacific Beach",
			RegionCode:  "PB",
			Year:        2024,
			Unsheltered: 156,
			Sheltered:   34,
			Total:       190,
			Latitude:    32.7942,
			Longitude:   -117.2324,
			AreaSqMiles: 2.8,
		},
		{
			RegionName:  "Midway District",
			RegionCode:  "MD",
			Year:        2024,
			Unsheltered: 234,
			Sheltered:   167,
			Total:       401,
			Latitude:    32.7533,
			Longitude:   -117.2069,
			AreaSqMiles: 3.2,
		},
	}
}

// Evictions returns the sample January 2024 eviction records. Filings sum to
// 166, judgments to 115.
func Evictions() []model.EvictionRecord {
	return []model.EvictionRecord{
		{
			ZipCode:      "92101",
			Neighborhood: "Downtown",
			Year:         2024,
			Month:        "January",
			Filings:      45,
			Judgments:    32,
			Latitude:     32.7157,
			Longitude:    -117.1611,
		},
		{
			ZipCode:      "92102",
			Neighborhood: "Golden Hill",
			Year:         2024,
			Month:        "January",
			Filings:      28,
			Judgments:    19,
			Latitude:     32.7178,
			Longitude:    -117.1292,
		},
		{
			ZipCode:      "92103",
			Neighborhood: "Hillcrest",
			Year:         2024,
			Month:        "January",
			Filings:      31,
			Judgments:    22,
			Latitude:     32.7496,
			Longitude:    -117.1645,
		},
		{
			ZipCode:      "92104",
			Neighborhood: "North Park",
			Year:         2024,
			Month:        "January",
			Filings:      38,
			Judgments:    27,
			Latitude:     32.7427,
			Longitude:    -117.1294,
		},
		{
			ZipCode:      "92109",
			Neighborhood: "Pacific Beach",
			Year:         2024,
			Month:        "January",
			Filings:      24,
			Judgments:    15,
			Latitude:     32.7942,
			Longitude:    -117.2324,
		},
	}
}

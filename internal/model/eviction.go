package model

import "github.com/rotisserie/eris"

// EvictionRecord is one ZIP code's eviction filings and judgments for a month.
// ZipCode stays a string so leading zeros survive the CSV round-trip.
type EvictionRecord struct {
	ZipCode      string  `csv:"zip_code" json:"zip_code"`
	Neighborhood string  `csv:"neighborhood" json:"neighborhood"`
	Year         int     `csv:"year" json:"year"`
	Month        string  `csv:"month" json:"month"`
	Filings      int     `csv:"eviction_filings" json:"eviction_filings"`
	Judgments    int     `csv:"eviction_judgments" json:"eviction_judgments"`
	Latitude     float64 `csv:"latitude" json:"latitude"`
	Longitude    float64 `csv:"longitude" json:"longitude"`
}

// Validate checks the eviction record invariants, including that judgments
// never exceed filings.
func (e *EvictionRecord) Validate() error {
	if e.Filings < 0 || e.Judgments < 0 {
		return eris.Errorf("model: eviction %s has negative counts", e.ZipCode)
	}
	if e.Judgments > e.Filings {
		return eris.Errorf("model: eviction %s judgments %d exceed filings %d",
			e.ZipCode, e.Judgments, e.Filings)
	}
	if err := validateCoords(e.Latitude, e.Longitude); err != nil {
		return eris.Wrapf(err, "model: eviction %s", e.ZipCode)
	}
	return nil
}

// ApprovalRate returns judgments as a percentage of filings, or 0 when there
// are no filings.
func (e *EvictionRecord) ApprovalRate() float64 {
	if e.Filings == 0 {
		return 0
	}
	return float64(e.Judgments) / float64(e.Filings) * 100
}

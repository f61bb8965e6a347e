// Package stats provides pure aggregation helpers over loaded tables.
package stats

import (
	"sort"

	"github.com/rotisserie/eris"
)

// ErrEmptyInput is returned when an aggregate that is undefined on zero
// records is asked for one.
var ErrEmptyInput = eris.New("stats: empty input")

// Sum returns the sum of the extracted field. Empty input yields 0.
func Sum[T any](records []T, field func(T) float64) float64 {
	var total float64
	for _, r := range records {
		total += field(r)
	}
	return total
}

// SumInt returns the integer sum of the extracted field. Empty input yields 0.
func SumInt[T any](records []T, field func(T) int) int {
	var total int
	for _, r := range records {
		total += field(r)
	}
	return total
}

// Mean returns the arithmetic mean of the extracted field.
func Mean[T any](records []T, field func(T) float64) (float64, error) {
	if len(records) == 0 {
		return 0, eris.Wrap(ErrEmptyInput, "stats: mean")
	}
	return Sum(records, field) / float64(len(records)), nil
}

// Median returns the median of the extracted field. For an even number of
// records it averages the two middle values.
func Median[T any](records []T, field func(T) float64) (float64, error) {
	if len(records) == 0 {
		return 0, eris.Wrap(ErrEmptyInput, "stats: median")
	}
	vals := make([]float64, len(records))
	for i, r := range records {
		vals[i] = field(r)
	}
	sort.Float64s(vals)

	mid := len(vals) / 2
	if len(vals)%2 == 1 {
		return vals[mid], nil
	}
	return (vals[mid-1] + vals[mid]) / 2, nil
}

// GroupSum groups records by key and sums the extracted value per group.
func GroupSum[T any](records []T, key func(T) string, value func(T) float64) map[string]float64 {
	groups := make(map[string]float64)
	for _, r := range records {
		groups[key(r)] += value(r)
	}
	return groups
}

// Ratio returns num/den, or 0 when den is 0. A zero-need region reports a 0%
// gap instead of crashing downstream formatting.
func Ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// Percent returns num/den as a percentage, with the same zero-denominator
// policy as Ratio.
func Percent(num, den float64) float64 {
	return Ratio(num, den) * 100
}

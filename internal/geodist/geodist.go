// Package geodist computes great-circle distances between WGS84 coordinates
// and nearest-neighbor matches between two point sets.
package geodist

import (
	"math"

	"github.com/rotisserie/eris"
)

// earthRadiusMiles is Earth's mean radius in statute miles.
const earthRadiusMiles = 3959

// ErrEmptySupply is returned when a nearest-neighbor match is requested
// against an empty supply set.
var ErrEmptySupply = eris.New("geodist: empty supply set")

// Point is a named WGS84 coordinate.
type Point struct {
	Name string
	Lat  float64
	Lon  float64
}

// HaversineMiles returns the great-circle distance in statute miles between
// two coordinate pairs given in decimal degrees. The result is non-negative,
// symmetric, and zero for coincident points.
func HaversineMiles(lat1, lon1, lat2, lon2 float64) float64 {
	lat1r := lat1 * math.Pi / 180
	lon1r := lon1 * math.Pi / 180
	lat2r := lat2 * math.Pi / 180
	lon2r := lon2 * math.Pi / 180

	dlat := lat2r - lat1r
	dlon := lon2r - lon1r

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1r)*math.Cos(lat2r)*math.Sin(dlon/2)*math.Sin(dlon/2)

	// Floating-point rounding can push the intermediate term slightly
	// outside [0, 1]; clamp so the square roots stay defined.
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMiles * c
}

// Nearest returns the supply point closest to demand and its distance in
// miles. Ties go to the first supply point at the minimum distance in input
// order, so results are deterministic for a fixed input order. The scan is a
// deliberate brute-force O(n) pass; both sets are tens of records at most and
// no spatial index is warranted.
func Nearest(demand Point, supply []Point) (Point, float64, error) {
	if len(supply) == 0 {
		return Point{}, 0, eris.Wrap(ErrEmptySupply, "geodist: nearest")
	}

	best := supply[0]
	bestDist := HaversineMiles(demand.Lat, demand.Lon, best.Lat, best.Lon)
	for _, p := range supply[1:] {
		if d := HaversineMiles(demand.Lat, demand.Lon, p.Lat, p.Lon); d < bestDist {
			best = p
			bestDist = d
		}
	}
	return best, bestDist, nil
}

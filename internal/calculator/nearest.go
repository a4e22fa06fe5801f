package calculator

import (
	"errors"

	"airport-finder/internal/models"
)

// ErrEmptyAirports is returned when a nearest search is attempted against an
// empty reference set.
var ErrEmptyAirports = errors.New("empty airport set")

// FindNearest scans the reference set and returns the airport closest to the
// query point along with its distance in kilometers.
//
// The scan uses strict less-than, so when two airports are equidistant the one
// appearing first in the slice wins. The result therefore depends on the order
// of the reference set.
func FindNearest(lat, lon float64, set []models.Airport) (models.Airport, float64, error) {
	if len(set) == 0 {
		return models.Airport{}, 0, ErrEmptyAirports
	}

	nearestIdx := 0
	minDist := Haversine(lat, lon, set[0].Loc.Lat, set[0].Loc.Lon)

	for i := 1; i < len(set); i++ {
		d := Haversine(lat, lon, set[i].Loc.Lat, set[i].Loc.Lon)
		if d < minDist {
			minDist = d
			nearestIdx = i
		}
	}

	return set[nearestIdx], minDist, nil
}

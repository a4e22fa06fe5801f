package models

import "fmt"

type Coordinate struct {
	Lat float64
	Lon float64
}

// Validate range-checks the coordinate. Only the interactive lookup path
// calls this; batch rows are accepted as long as they parse numerically.
func (c Coordinate) Validate() error {
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]", c.Lat)
	}
	if c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]", c.Lon)
	}
	return nil
}

// Airport is one entry of the reference set. Codes are assumed unique
// within a set.
type Airport struct {
	Code string
	Name string
	Loc  Coordinate
}

// BatchRecord is one untyped input row from a batch source. A nil pointer
// marks a field absent from the source row, as opposed to present but empty.
type BatchRecord struct {
	Label     string
	Latitude  *string
	Longitude *string
}

func (r BatchRecord) String() string {
	return fmt.Sprintf("{label=%q latitude=%s longitude=%s}",
		r.Label, fieldOrMissing(r.Latitude), fieldOrMissing(r.Longitude))
}

func fieldOrMissing(s *string) string {
	if s == nil {
		return "<missing>"
	}
	return fmt.Sprintf("%q", *s)
}

type BatchResult struct {
	Label      string
	Loc        Coordinate
	Airport    Airport
	DistanceKm float64 // rounded to 2 decimals
}

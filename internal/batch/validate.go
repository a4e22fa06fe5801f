package batch

import (
	"fmt"
	"strconv"
	"strings"

	"airport-finder/internal/models"
)

type RejectReason string

const (
	ReasonMissingField    RejectReason = "missing field"
	ReasonMalformedNumber RejectReason = "malformed number"
)

// Rejection explains why a batch record was skipped.
type Rejection struct {
	Field  string
	Reason RejectReason
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("%s: %s", r.Reason, r.Field)
}

// unknownLabel substitutes for rows that carry no label of their own.
const unknownLabel = "Unknown"

func parseCoord(val string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(val), 64)
}

// Validate parses and classifies one raw record. A field absent from the
// source row rejects with ReasonMissingField; a field that does not parse as
// a number rejects with ReasonMalformedNumber. Coordinates are not
// range-checked here: batch rows with out-of-range lat/lon pass through,
// unlike the interactive lookup path.
func Validate(raw models.BatchRecord) (string, models.Coordinate, *Rejection) {
	label := raw.Label
	if strings.TrimSpace(label) == "" {
		label = unknownLabel
	}

	if raw.Latitude == nil {
		return "", models.Coordinate{}, &Rejection{Field: "latitude", Reason: ReasonMissingField}
	}
	if raw.Longitude == nil {
		return "", models.Coordinate{}, &Rejection{Field: "longitude", Reason: ReasonMissingField}
	}

	lat, err := parseCoord(*raw.Latitude)
	if err != nil {
		return "", models.Coordinate{}, &Rejection{Field: "latitude", Reason: ReasonMalformedNumber}
	}
	lon, err := parseCoord(*raw.Longitude)
	if err != nil {
		return "", models.Coordinate{}, &Rejection{Field: "longitude", Reason: ReasonMalformedNumber}
	}

	return label, models.Coordinate{Lat: lat, Lon: lon}, nil
}

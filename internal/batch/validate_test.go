package batch

import (
	"testing"

	"airport-finder/internal/models"
)

func strp(s string) *string { return &s }

func TestValidateGoodRecord(t *testing.T) {
	label, loc, rej := Validate(models.BatchRecord{
		Label:     "New York",
		Latitude:  strp("40.7128"),
		Longitude: strp("-74.0060"),
	})
	if rej != nil {
		t.Fatalf("unexpected rejection: %v", rej)
	}
	if label != "New York" {
		t.Fatalf("label = %q, want New York", label)
	}
	if loc.Lat != 40.7128 || loc.Lon != -74.0060 {
		t.Fatalf("coordinate = %+v", loc)
	}
}

func TestValidateMissingLabelDefaultsToUnknown(t *testing.T) {
	label, _, rej := Validate(models.BatchRecord{
		Latitude:  strp("1"),
		Longitude: strp("2"),
	})
	if rej != nil {
		t.Fatalf("unexpected rejection: %v", rej)
	}
	if label != "Unknown" {
		t.Fatalf("label = %q, want Unknown", label)
	}
}

func TestValidateMissingField(t *testing.T) {
	_, _, rej := Validate(models.BatchRecord{Label: "x", Longitude: strp("2")})
	if rej == nil || rej.Reason != ReasonMissingField || rej.Field != "latitude" {
		t.Fatalf("rejection = %v, want missing latitude", rej)
	}

	_, _, rej = Validate(models.BatchRecord{Label: "x", Latitude: strp("1")})
	if rej == nil || rej.Reason != ReasonMissingField || rej.Field != "longitude" {
		t.Fatalf("rejection = %v, want missing longitude", rej)
	}
}

func TestValidateMalformedNumber(t *testing.T) {
	_, _, rej := Validate(models.BatchRecord{
		Label:     "x",
		Latitude:  strp("not_a_number"),
		Longitude: strp("-74.0060"),
	})
	if rej == nil || rej.Reason != ReasonMalformedNumber || rej.Field != "latitude" {
		t.Fatalf("rejection = %v, want malformed latitude", rej)
	}

	_, _, rej = Validate(models.BatchRecord{
		Label:     "x",
		Latitude:  strp("1"),
		Longitude: strp(""),
	})
	if rej == nil || rej.Reason != ReasonMalformedNumber || rej.Field != "longitude" {
		t.Fatalf("rejection = %v, want malformed longitude", rej)
	}
}

// Batch rows are not range-checked: only numeric parse failures reject.
// Range enforcement belongs to the interactive path.
func TestValidateAcceptsOutOfRangeCoordinates(t *testing.T) {
	_, loc, rej := Validate(models.BatchRecord{
		Label:     "x",
		Latitude:  strp("123.0"),
		Longitude: strp("-999.5"),
	})
	if rej != nil {
		t.Fatalf("unexpected rejection: %v", rej)
	}
	if loc.Lat != 123.0 || loc.Lon != -999.5 {
		t.Fatalf("coordinate = %+v", loc)
	}
}

package airports

import (
	"testing"

	"airport-finder/internal/calculator"
)

func TestReferenceNotEmpty(t *testing.T) {
	if len(Reference) == 0 {
		t.Fatal("reference set is empty")
	}
}

func TestReferenceCodesUnique(t *testing.T) {
	seen := make(map[string]bool, len(Reference))
	for _, a := range Reference {
		if seen[a.Code] {
			t.Errorf("duplicate airport code %q", a.Code)
		}
		seen[a.Code] = true
	}
}

func TestReferenceCoordinatesInRange(t *testing.T) {
	for _, a := range Reference {
		if err := a.Loc.Validate(); err != nil {
			t.Errorf("airport %s: %v", a.Code, err)
		}
	}
}

func TestReferenceLookups(t *testing.T) {
	cases := []struct {
		name     string
		lat, lon float64
		want     string
	}{
		{"downtown LA", 34.0522, -118.2437, "LAX"},
		{"central London", 51.5074, -0.1278, "LHR"},
		{"Tokyo", 35.6762, 139.6503, "NRT"},
	}

	for _, tc := range cases {
		airport, dist, err := calculator.FindNearest(tc.lat, tc.lon, Reference)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if airport.Code != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, airport.Code, tc.want)
		}
		if dist <= 0 {
			t.Errorf("%s: distance = %v, want > 0", tc.name, dist)
		}
	}
}

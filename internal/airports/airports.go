package airports

import "airport-finder/internal/models"

// Reference is the built-in airport set, initialized once and never mutated.
// Callers must treat it as read-only. Slice order matters: nearest searches
// resolve ties in favor of the earlier entry.
var Reference = []models.Airport{
	{Code: "JFK", Name: "John F. Kennedy International Airport", Loc: models.Coordinate{Lat: 40.6413, Lon: -73.7781}},
	{Code: "LAX", Name: "Los Angeles International Airport", Loc: models.Coordinate{Lat: 33.9425, Lon: -118.4081}},
	{Code: "ORD", Name: "O'Hare International Airport", Loc: models.Coordinate{Lat: 41.9742, Lon: -87.9073}},
	{Code: "DFW", Name: "Dallas/Fort Worth International Airport", Loc: models.Coordinate{Lat: 32.8998, Lon: -97.0403}},
	{Code: "DEN", Name: "Denver International Airport", Loc: models.Coordinate{Lat: 39.8561, Lon: -104.6737}},
	{Code: "SFO", Name: "San Francisco International Airport", Loc: models.Coordinate{Lat: 37.6213, Lon: -122.3790}},
	{Code: "SEA", Name: "Seattle-Tacoma International Airport", Loc: models.Coordinate{Lat: 47.4502, Lon: -122.3088}},
	{Code: "ATL", Name: "Hartsfield-Jackson Atlanta International Airport", Loc: models.Coordinate{Lat: 33.6407, Lon: -84.4277}},
	{Code: "BOS", Name: "Boston Logan International Airport", Loc: models.Coordinate{Lat: 42.3656, Lon: -71.0096}},
	{Code: "MIA", Name: "Miami International Airport", Loc: models.Coordinate{Lat: 25.7959, Lon: -80.2870}},
	{Code: "LHR", Name: "London Heathrow Airport", Loc: models.Coordinate{Lat: 51.4700, Lon: -0.4543}},
	{Code: "CDG", Name: "Paris Charles de Gaulle Airport", Loc: models.Coordinate{Lat: 49.0097, Lon: 2.5479}},
	{Code: "NRT", Name: "Tokyo Narita International Airport", Loc: models.Coordinate{Lat: 35.7720, Lon: 140.3929}},
	{Code: "SYD", Name: "Sydney Kingsford Smith Airport", Loc: models.Coordinate{Lat: -33.9399, Lon: 151.1753}},
	{Code: "DXB", Name: "Dubai International Airport", Loc: models.Coordinate{Lat: 25.2532, Lon: 55.3657}},
}

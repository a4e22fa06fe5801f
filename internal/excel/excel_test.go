package excel

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"airport-finder/internal/models"
)

func TestWriteResultsThenReadRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")

	results := []models.BatchResult{
		{
			Label:      "New York",
			Loc:        models.Coordinate{Lat: 40.7128, Lon: -74.0060},
			Airport:    models.Airport{Code: "JFK", Name: "John F. Kennedy International Airport", Loc: models.Coordinate{Lat: 40.6413, Lon: -73.7781}},
			DistanceKm: 21.23,
		},
	}

	if err := WriteResults(path, results, "Results"); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	rows, err := ReadRows(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("expected header + 1 row, got %d rows", len(rows))
	}
	if rows[0][0] != "Name" {
		t.Fatalf("header[0] = %q, want Name", rows[0][0])
	}
	if rows[1][0] != "New York" || rows[1][3] != "JFK" {
		t.Fatalf("data row = %v", rows[1])
	}
}

func TestReadRowsFirstSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetList()[0]
	header := []interface{}{"name", "latitude", "longitude"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		t.Fatal(err)
	}
	row := []interface{}{"Somewhere", "1.0"}
	if err := f.SetSheetRow(sheet, "A2", &row); err != nil {
		t.Fatal(err)
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}

	rows, err := ReadRows(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	// The short data row stays short; missing cells are the caller's problem.
	if len(rows[1]) > 2 {
		t.Fatalf("expected short row, got %v", rows[1])
	}
}

package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"airport-finder/internal/models"
)

// ReadRows returns the raw cell rows of the first sheet in the workbook,
// header included. Trailing empty cells are dropped by the reader, so rows
// may be shorter than the header.
func ReadRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %q has no sheets", path)
	}
	return f.GetRows(sheets[0])
}

// WriteResults writes batch results to a new workbook at path.
func WriteResults(path string, results []models.BatchResult, sheetName string) error {
	f := excelize.NewFile()
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}

	// Use Stream Writer for performance
	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return err
	}

	headers := []interface{}{
		"Name", "Latitude", "Longitude",
		"Airport Code", "Airport Name", "Airport Lat", "Airport Lon",
		"Distance (km)",
	}
	if err := sw.SetRow("A1", headers); err != nil {
		return err
	}

	for i, r := range results {
		rowNum := i + 2
		cell, _ := excelize.CoordinatesToCellName(1, rowNum)
		row := []interface{}{
			r.Label, r.Loc.Lat, r.Loc.Lon,
			r.Airport.Code, r.Airport.Name, r.Airport.Loc.Lat, r.Airport.Loc.Lon,
			r.DistanceKm,
		}
		if err := sw.SetRow(cell, row); err != nil {
			return err
		}
	}

	if err := sw.Flush(); err != nil {
		return err
	}

	f.SetActiveSheet(index)
	// Delete default sheet if exists
	if sheetName != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	return f.SaveAs(path)
}

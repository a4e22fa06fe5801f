package batch

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"airport-finder/internal/calculator"
	"airport-finder/internal/excel"
	"airport-finder/internal/models"
)

// Column headers expected in batch sources. Matching is case-insensitive.
const (
	colLabel     = "name"
	colLatitude  = "latitude"
	colLongitude = "longitude"
)

type LoggerFunc func(msg string)

// Process validates every record in input order and looks up the nearest
// airport for each one that passes. Rejected rows are reported through logf
// and omitted from the output; the second return value counts them. Rejection
// never aborts the batch. The only error is an empty reference set, which is
// fatal to the whole call.
func Process(records []models.BatchRecord, set []models.Airport, logf LoggerFunc) ([]models.BatchResult, int, error) {
	results := make([]models.BatchResult, 0, len(records))
	skipped := 0

	for _, raw := range records {
		label, loc, rej := Validate(raw)
		if rej != nil {
			skipped++
			if logf != nil {
				logf(fmt.Sprintf("Skipping invalid row %s: %v", raw, rej))
			}
			continue
		}

		airport, dist, err := calculator.FindNearest(loc.Lat, loc.Lon, set)
		if err != nil {
			return nil, 0, fmt.Errorf("process batch: %w", err)
		}

		results = append(results, models.BatchResult{
			Label:      label,
			Loc:        loc,
			Airport:    airport,
			DistanceKm: math.Round(dist*100) / 100,
		})
	}

	return results, skipped, nil
}

// ProcessFile reads a batch source and runs Process over its rows. The file
// type is chosen by extension: .xlsx is read as a workbook, anything else as
// CSV. A missing or unreadable source is the only error propagated besides
// the empty-reference-set case; check it with errors.Is(err, fs.ErrNotExist).
func ProcessFile(path string, set []models.Airport, logf LoggerFunc) ([]models.BatchResult, int, error) {
	var rows [][]string
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		rows, err = excel.ReadRows(path)
	default:
		rows, err = readCSVRows(path)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("read batch source %q: %w", path, err)
	}

	return Process(recordsFromRows(rows), set, logf)
}

func readCSVRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows surface as missing fields, not errors
	return r.ReadAll()
}

// recordsFromRows maps header-addressed rows onto raw records. The first row
// names the columns; cells absent from a row (or columns absent from the
// header) become nil fields.
func recordsFromRows(rows [][]string) []models.BatchRecord {
	if len(rows) == 0 {
		return nil
	}

	header := rows[0]
	labelIdx := headerIndex(header, colLabel)
	latIdx := headerIndex(header, colLatitude)
	lonIdx := headerIndex(header, colLongitude)

	records := make([]models.BatchRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := models.BatchRecord{
			Latitude:  cell(row, latIdx),
			Longitude: cell(row, lonIdx),
		}
		if v := cell(row, labelIdx); v != nil {
			rec.Label = *v
		}
		records = append(records, rec)
	}
	return records
}

func headerIndex(header []string, name string) int {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

func cell(row []string, idx int) *string {
	if idx < 0 || idx >= len(row) {
		return nil
	}
	v := row[idx]
	return &v
}

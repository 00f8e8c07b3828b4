package feed

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// LoadSeriesCSV reads a series from a CSV file, taking the last field of
// each record as the value. A non-numeric first row is treated as a header
// and skipped.
func LoadSeriesCSV(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open series csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read series csv: %w", err)
	}

	values := make([]float64, 0, len(records))
	for i, rec := range records {
		if len(rec) == 0 {
			continue
		}
		v, err := strconv.ParseFloat(rec[len(rec)-1], 64)
		if err != nil {
			if i == 0 {
				continue // header row
			}
			return nil, fmt.Errorf("parse series csv line %d: %w", i+1, err)
		}
		values = append(values, v)
	}
	return values, nil
}

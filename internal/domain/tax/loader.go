package tax

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

// LoadCSV reads a withholding table from (min, max, value) rows. An empty
// max column marks the open-ended top bracket. A leading header row is
// skipped when its first field is not numeric.
func LoadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 3
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read withholding csv: %w", err)
	}

	var brackets []Bracket
	for i, row := range rows {
		min, err := decimal.NewFromString(strings.TrimSpace(row[0]))
		if err != nil {
			if i == 0 {
				continue // header row
			}
			return nil, fmt.Errorf("withholding csv row %d: bad min %q: %w", i+1, row[0], err)
		}

		b := Bracket{Min: min}

		maxField := strings.TrimSpace(row[1])
		if maxField == "" {
			b.Open = true
		} else {
			b.Max, err = decimal.NewFromString(maxField)
			if err != nil {
				return nil, fmt.Errorf("withholding csv row %d: bad max %q: %w", i+1, row[1], err)
			}
		}

		b.Value, err = decimal.NewFromString(strings.TrimSpace(row[2]))
		if err != nil {
			return nil, fmt.Errorf("withholding csv row %d: bad value %q: %w", i+1, row[2], err)
		}

		brackets = append(brackets, b)
	}

	return NewTable(brackets)
}

// LoadCSVFile loads the withholding table from a file path.
func LoadCSVFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open withholding csv: %w", err)
	}
	defer f.Close()
	return LoadCSV(f)
}

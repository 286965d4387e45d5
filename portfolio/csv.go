package portfolio

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// HoldingRow is one line of a holdings file with header major,minor,value.
type HoldingRow struct {
	Major string `csv:"major"`
	Minor string `csv:"minor"`
	Value string `csv:"value"`
}

// LoadCSV reads a holdings file into form rows. Majors go through
// ParseCategoryName; a blank major column falls back to defaultMajor.
func LoadCSV(r io.Reader, defaultMajor Category) ([]FormRow, error) {
	var holdings []HoldingRow
	if err := gocsv.Unmarshal(r, &holdings); err != nil {
		return nil, fmt.Errorf("reading holdings csv: %w", err)
	}

	rows := make([]FormRow, 0, len(holdings))
	for _, h := range holdings {
		major := defaultMajor
		if h.Major != "" {
			major = ParseCategoryName(h.Major)
		}
		rows = append(rows, FormRow{Major: major, Minor: h.Minor, Value: h.Value})
	}
	return rows, nil
}

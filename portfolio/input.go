package portfolio

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// UnknownMinor labels rows whose minor category was left empty.
const UnknownMinor = "（不明）"

var (
	// ErrNoCategory is returned when a bulk paste has no major category.
	ErrNoCategory = errors.New("no major category selected for bulk input")
	// ErrEmptyPaste is returned when the bulk paste text is blank.
	ErrEmptyPaste = errors.New("no data to paste")
	// ErrNoAssets is returned in percentage mode when no row has a positive value.
	ErrNoAssets = errors.New("no valid asset data")
	// ErrPercentTotal is matched by errors.Is for *PercentTotalError.
	ErrPercentTotal = errors.New("percentages do not sum to 100")
)

// PercentTotalError carries the actual total of a rejected percentage input.
type PercentTotalError struct {
	Total float64
}

func (e *PercentTotalError) Error() string {
	return fmt.Sprintf("percentages must sum to 100%% (current: %.1f%%)", e.Total)
}

func (e *PercentTotalError) Is(target error) bool {
	return target == ErrPercentTotal
}

// FormRow is one unvalidated input row as typed or pasted.
type FormRow struct {
	Major Category
	Minor string
	Value string
}

var fieldSep = regexp.MustCompile(`[\t,]`)

// BulkCategory resolves the bulk-input selector. Unlike FromSelection it
// refuses an empty custom name instead of falling back to OtherLabel.
func BulkCategory(selected, customText string) (Category, error) {
	if selected == OtherLabel {
		if strings.TrimSpace(customText) == "" {
			return Category{}, ErrNoCategory
		}
		return ParseCategory(customText), nil
	}
	if strings.TrimSpace(selected) == "" {
		return Category{}, ErrNoCategory
	}
	return ParseCategory(selected), nil
}

// ParseBulk splits pasted spreadsheet rows into form rows under one major
// category. Each non-blank line is split on tab or comma; the first two
// fields are the minor label and the value. Lines with fewer than two
// fields are skipped.
func ParseBulk(major Category, text string) ([]FormRow, error) {
	if major.String() == "" {
		return nil, ErrNoCategory
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyPaste
	}

	var rows []FormRow
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := fieldSep.Split(line, -1)
		if len(parts) < 2 {
			continue
		}
		rows = append(rows, FormRow{
			Major: major,
			Minor: strings.TrimSpace(parts[0]),
			Value: strings.TrimSpace(parts[1]),
		})
	}
	return rows, nil
}

// Collect converts form rows into records. An empty minor label becomes
// UnknownMinor, an unparsable value counts as zero, and rows without a
// positive value are dropped.
func Collect(rows []FormRow) []AssetRecord {
	records := make([]AssetRecord, 0, len(rows))
	for _, row := range rows {
		value := parseValue(row.Value)
		if !(value > 0) {
			continue
		}
		minor := strings.TrimSpace(row.Minor)
		if minor == "" {
			minor = UnknownMinor
		}
		records = append(records, AssetRecord{Major: row.Major, Minor: minor, Value: value})
	}
	return records
}

// parseValue reads the leading number of s the way a lenient number field
// does: "1200円" reads as 1200 and "1,200" as 1.
func parseValue(s string) float64 {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsInf(v, 0) {
			return 0
		}
		return v
	}
	end := 0
	for end < len(s) {
		c := s[end]
		if (c >= '0' && c <= '9') || c == '.' || ((c == '-' || c == '+') && end == 0) {
			end++
			continue
		}
		break
	}
	for end > 0 {
		if v, err := strconv.ParseFloat(s[:end], 64); err == nil {
			return v
		}
		end--
	}
	return 0
}

// CheckPercentTotal verifies that percentage-mode records sum to 100
// within tolerance.
func CheckPercentTotal(records []AssetRecord, tolerance float64) error {
	var total float64
	for _, r := range records {
		total += r.Value
	}
	if math.Abs(total-100) > tolerance {
		return &PercentTotalError{Total: total}
	}
	return nil
}

// Prepare collects rows and applies the mode's input checks. An amount-mode
// input with no positive rows is valid and yields no records.
func Prepare(rows []FormRow, mode Mode, tolerance float64) ([]AssetRecord, error) {
	records := Collect(rows)
	if len(records) == 0 {
		if mode == ModePercentage {
			return nil, ErrNoAssets
		}
		return nil, nil
	}
	if mode == ModePercentage {
		if err := CheckPercentTotal(records, tolerance); err != nil {
			return nil, err
		}
	}
	return records, nil
}

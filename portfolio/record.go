package portfolio

import "fmt"

// Mode says how record values are read.
type Mode uint8

const (
	ModeAmount     Mode = iota // Values are currency amounts
	ModePercentage             // Values are percentages of the whole
)

func (m Mode) String() string {
	switch m {
	case ModeAmount:
		return "amount"
	case ModePercentage:
		return "percentage"
	}
	return fmt.Sprintf("Mode(%d)", m)
}

// ParseMode parses "amount" or "percentage".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "amount", "":
		return ModeAmount, nil
	case "percentage", "percent":
		return ModePercentage, nil
	}
	return ModeAmount, fmt.Errorf("unknown input mode %q", s)
}

// AssetRecord is one holding. Value is strictly positive once collected.
type AssetRecord struct {
	Major Category
	Minor string
	Value float64
}

// Child is a record placed in a group, with its share and palette color.
type Child struct {
	AssetRecord
	Percent float64
	Color   uint32
}

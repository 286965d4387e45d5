package scene

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// TooltipLine is one entry of a tooltip list. Color is 0xRRGGBB when
// HasColor is set.
type TooltipLine struct {
	Text     string
	Color    uint32
	HasColor bool
}

// Tooltip is a category header and a list of lines. Name is the header
// in ASCII for fonts without CJK glyphs.
type Tooltip struct {
	Header string
	Name   string
	Lines  []TooltipLine
}

// NewTooltip formats a sphere's metadata for display.
func NewTooltip(m *Meta, display DisplayMode) Tooltip {
	if m.IsSun {
		return Tooltip{
			Header: m.Major,
			Name:   m.Name,
			Lines:  []TooltipLine{{Text: FormatYen(m.Value)}},
		}
	}

	tt := Tooltip{Header: m.Major, Name: m.Name, Lines: make([]TooltipLine, 0, len(m.Children))}
	for _, c := range m.Children {
		value := FormatPercent(c.Percent)
		if display == DisplayAmountPercent {
			value = fmt.Sprintf("%s (%s)", FormatYen(c.Value), value)
		}
		tt.Lines = append(tt.Lines, TooltipLine{
			Text:     c.Minor + ": " + value,
			Color:    c.Color,
			HasColor: true,
		})
	}
	return tt
}

// String renders the tooltip as plain text, one line per entry.
func (t Tooltip) String() string {
	var sb strings.Builder
	sb.WriteString(t.Header)
	for _, l := range t.Lines {
		sb.WriteString("\n")
		sb.WriteString(l.Text)
	}
	return sb.String()
}

// FormatYen writes an amount with thousands separators and at most three
// decimals, e.g. ¥1,234,567.
func FormatYen(v float64) string {
	return "¥" + humanize.Commaf(math.Round(v*1000)/1000)
}

// FormatPercent writes a percentage with one decimal, e.g. 60.0%.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}
